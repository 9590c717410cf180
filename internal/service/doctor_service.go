package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clinicflow/clinicflow/internal/domain/doctor"
	"github.com/clinicflow/clinicflow/pkg/metrics"
)

type DoctorService struct {
	repo     doctor.Repository
	auditSvc *AuditService
	metrics  *metrics.Collector
	log      *zap.Logger
}

func NewDoctorService(repo doctor.Repository, auditSvc *AuditService, m *metrics.Collector, log *zap.Logger) *DoctorService {
	return &DoctorService{repo: repo, auditSvc: auditSvc, metrics: m, log: log}
}

func (s *DoctorService) CreateDoctor(ctx context.Context, cmd *doctor.CreateDoctorCommand, ip string) (*doctor.Doctor, error) {
	if cmd.FirstName == "" || cmd.LastName == "" {
		return nil, doctor.ErrInvalidName
	}

	d := &doctor.Doctor{
		ID:            uuid.New(),
		FirstName:     cmd.FirstName,
		LastName:      cmd.LastName,
		Specialty:     cmd.Specialty,
		LicenseNumber: cmd.LicenseNumber,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		s.log.Error("failed to create doctor", zap.Error(err))
		return nil, fmt.Errorf("creating doctor: %w", err)
	}

	if s.metrics != nil {
		s.metrics.DoctorsCreatedTotal.Inc()
	}
	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action: "create", ResourceType: "doctor", ResourceID: d.ID.String(), IPAddress: ip,
	})

	return d, nil
}

func (s *DoctorService) GetDoctor(ctx context.Context, id uuid.UUID) (*doctor.Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DoctorService) ListDoctors(ctx context.Context, q *doctor.ListDoctorsQuery) (*doctor.PagedDoctors, error) {
	if q.PageSize <= 0 || q.PageSize > 100 {
		q.PageSize = 20
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	return s.repo.List(ctx, q)
}
