package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clinicflow/clinicflow/internal/domain/appointment"
	"github.com/clinicflow/clinicflow/internal/domain/doctor"
	"github.com/clinicflow/clinicflow/internal/domain/patient"
	"github.com/clinicflow/clinicflow/pkg/clock"
	"github.com/clinicflow/clinicflow/pkg/metrics"
)

// SchedulingService orchestrates the appointment use cases: it confirms the
// referenced doctor and patient exist, consults the conflict checker, asks
// the clock for "now", and lets the aggregate validate its own slot and
// status transitions. Domain errors propagate to the caller unchanged.
type SchedulingService struct {
	repo        appointment.Repository
	doctorRepo  doctor.Repository
	patientRepo patient.Repository
	conflicts   *ConflictChecker
	clk         clock.Clock
	auditSvc    *AuditService
	metrics     *metrics.Collector
	log         *zap.Logger
}

func NewSchedulingService(
	repo appointment.Repository,
	doctorRepo doctor.Repository,
	patientRepo patient.Repository,
	conflicts *ConflictChecker,
	clk clock.Clock,
	auditSvc *AuditService,
	m *metrics.Collector,
	log *zap.Logger,
) *SchedulingService {
	return &SchedulingService{
		repo:        repo,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
		conflicts:   conflicts,
		clk:         clk,
		auditSvc:    auditSvc,
		metrics:     m,
		log:         log,
	}
}

// CreateAppointment books a new appointment. Doctor checks (existence, then
// conflict) run fully before any patient check, and nothing is persisted
// unless all four checks plus slot validation pass.
func (s *SchedulingService) CreateAppointment(ctx context.Context, cmd *appointment.CreateAppointmentCommand, ip string) (uuid.UUID, error) {
	if _, err := s.doctorRepo.GetByID(ctx, cmd.DoctorID); err != nil {
		return uuid.Nil, fmt.Errorf("verifying doctor: %w", err)
	}
	if err := s.conflicts.EnsureDoctorFree(ctx, cmd.DoctorID, cmd.ScheduledAt); err != nil {
		return uuid.Nil, err
	}

	if _, err := s.patientRepo.GetByID(ctx, cmd.PatientID); err != nil {
		return uuid.Nil, fmt.Errorf("verifying patient: %w", err)
	}
	if err := s.conflicts.EnsurePatientFree(ctx, cmd.PatientID, cmd.ScheduledAt); err != nil {
		return uuid.Nil, err
	}

	slot, err := appointment.NewSlot(cmd.ScheduledAt, s.clk.Now())
	if err != nil {
		return uuid.Nil, err
	}

	a, err := appointment.New(uuid.New(), cmd.DoctorID, cmd.PatientID, slot)
	if err != nil {
		return uuid.Nil, err
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.log.Error("failed to create appointment", zap.Error(err))
		return uuid.Nil, fmt.Errorf("creating appointment: %w", err)
	}

	if s.metrics != nil {
		s.metrics.AppointmentsTotal.WithLabelValues(string(appointment.StatusScheduled)).Inc()
	}
	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "create",
		ResourceType: "appointment",
		ResourceID:   a.ID.String(),
		IPAddress:    ip,
	})

	return a.ID, nil
}

// GetAppointment loads an appointment together with its prescriptions.
func (s *SchedulingService) GetAppointment(ctx context.Context, id uuid.UUID, ip string) (*appointment.Appointment, error) {
	a, err := s.repo.GetWithPrescriptions(ctx, id)
	if err != nil {
		return nil, err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action: "read", ResourceType: "appointment", ResourceID: id.String(), IPAddress: ip,
	})

	return a, nil
}

func (s *SchedulingService) ListAppointments(ctx context.Context, q *appointment.ListAppointmentsQuery) (*appointment.PagedAppointments, error) {
	if q.PageSize <= 0 || q.PageSize > 100 {
		q.PageSize = 20
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	return s.repo.List(ctx, q)
}

// RescheduleAppointment moves a scheduled appointment to a new instant. The
// conflict checks run against the new instant with the same doctor-first
// ordering as creation; the original slot stays untouched on any failure.
func (s *SchedulingService) RescheduleAppointment(ctx context.Context, id uuid.UUID, cmd *appointment.RescheduleAppointmentCommand, ip string) (*appointment.Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.conflicts.EnsureDoctorFree(ctx, a.DoctorID, cmd.NewScheduledAt); err != nil {
		return nil, err
	}
	if err := s.conflicts.EnsurePatientFree(ctx, a.PatientID, cmd.NewScheduledAt); err != nil {
		return nil, err
	}

	slot, err := appointment.NewSlot(cmd.NewScheduledAt, s.clk.Now())
	if err != nil {
		return nil, err
	}

	if err := a.Reschedule(slot); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("updating appointment: %w", err)
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action: "update", ResourceType: "appointment", ResourceID: id.String(), IPAddress: ip,
		Changes: fmt.Sprintf(`{"action":"reschedule","scheduled_at":%q}`, slot.Start),
	})

	return a, nil
}

// CancelAppointment cancels a scheduled appointment. No conflict re-check is
// performed; the aggregate enforces the 24-hour notice rule.
func (s *SchedulingService) CancelAppointment(ctx context.Context, id uuid.UUID, ip string) (*appointment.Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := a.Cancel(s.clk.Now()); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("updating appointment status: %w", err)
	}

	if s.metrics != nil {
		s.metrics.AppointmentsTotal.WithLabelValues(string(appointment.StatusCancelled)).Inc()
	}
	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action: "update", ResourceType: "appointment", ResourceID: id.String(), IPAddress: ip,
		Changes: `{"status":"cancelled"}`,
	})

	return a, nil
}

// CompleteAppointment marks a scheduled appointment as completed once its
// session has fully elapsed.
func (s *SchedulingService) CompleteAppointment(ctx context.Context, id uuid.UUID, ip string) (*appointment.Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := a.Complete(s.clk.Now()); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("updating appointment status: %w", err)
	}

	if s.metrics != nil {
		s.metrics.AppointmentsTotal.WithLabelValues(string(appointment.StatusCompleted)).Inc()
	}
	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action: "update", ResourceType: "appointment", ResourceID: id.String(), IPAddress: ip,
		Changes: `{"status":"completed"}`,
	})

	return a, nil
}

// AddPrescription attaches a new prescription to a scheduled appointment and
// returns the prescription id.
func (s *SchedulingService) AddPrescription(ctx context.Context, appointmentID uuid.UUID, cmd *appointment.AddPrescriptionCommand, ip string) (uuid.UUID, error) {
	a, err := s.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return uuid.Nil, err
	}

	p, err := appointment.NewPrescription(uuid.New(), a.ID, cmd.Medication, cmd.Dosage, cmd.Duration, cmd.Instructions)
	if err != nil {
		return uuid.Nil, err
	}

	if err := a.AddPrescription(p); err != nil {
		return uuid.Nil, err
	}

	if err := s.repo.AddPrescription(ctx, p); err != nil {
		return uuid.Nil, fmt.Errorf("adding prescription: %w", err)
	}

	if s.metrics != nil {
		s.metrics.PrescriptionsIssued.Inc()
	}
	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action: "create", ResourceType: "prescription", ResourceID: p.ID.String(), IPAddress: ip,
	})

	return p.ID, nil
}

// UpdatePrescription updates an owned prescription in place through the
// aggregate, re-validating every field.
func (s *SchedulingService) UpdatePrescription(ctx context.Context, appointmentID uuid.UUID, cmd *appointment.UpdatePrescriptionCommand, ip string) error {
	a, err := s.repo.GetWithPrescriptions(ctx, appointmentID)
	if err != nil {
		return err
	}

	if err := a.UpdatePrescription(cmd.PrescriptionID, cmd.Medication, cmd.Dosage, cmd.Duration, cmd.Instructions); err != nil {
		return err
	}

	updated, ok := a.PrescriptionByID(cmd.PrescriptionID)
	if !ok {
		return appointment.ErrPrescriptionNotFound
	}

	if err := s.repo.UpdatePrescription(ctx, &updated); err != nil {
		return fmt.Errorf("updating prescription: %w", err)
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action: "update", ResourceType: "prescription", ResourceID: cmd.PrescriptionID.String(), IPAddress: ip,
	})

	return nil
}
