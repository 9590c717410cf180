package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clinicflow/clinicflow/internal/domain/patient"
	"github.com/clinicflow/clinicflow/pkg/clock"
	"github.com/clinicflow/clinicflow/pkg/metrics"
)

type PatientService struct {
	repo     patient.Repository
	clk      clock.Clock
	auditSvc *AuditService
	metrics  *metrics.Collector
	log      *zap.Logger
}

func NewPatientService(repo patient.Repository, clk clock.Clock, auditSvc *AuditService, m *metrics.Collector, log *zap.Logger) *PatientService {
	return &PatientService{repo: repo, clk: clk, auditSvc: auditSvc, metrics: m, log: log}
}

func (s *PatientService) CreatePatient(ctx context.Context, cmd *patient.CreatePatientCommand, ip string) (*patient.Patient, error) {
	if cmd.FirstName == "" || cmd.LastName == "" {
		return nil, patient.ErrInvalidName
	}
	if cmd.DateOfBirth.After(s.clk.Now()) {
		return nil, patient.ErrInvalidDateOfBirth
	}

	p := &patient.Patient{
		ID:          uuid.New(),
		FirstName:   cmd.FirstName,
		LastName:    cmd.LastName,
		DateOfBirth: cmd.DateOfBirth,
		Phone:       cmd.Phone,
		Email:       cmd.Email,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.log.Error("failed to create patient", zap.Error(err))
		return nil, fmt.Errorf("creating patient: %w", err)
	}

	if s.metrics != nil {
		s.metrics.PatientsCreatedTotal.Inc()
	}
	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action: "create", ResourceType: "patient", ResourceID: p.ID.String(), IPAddress: ip,
	})

	return p, nil
}

func (s *PatientService) GetPatient(ctx context.Context, id uuid.UUID) (*patient.Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PatientService) ListPatients(ctx context.Context, q *patient.ListPatientsQuery) (*patient.PagedPatients, error) {
	if q.PageSize <= 0 || q.PageSize > 100 {
		q.PageSize = 20
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	return s.repo.List(ctx, q)
}
