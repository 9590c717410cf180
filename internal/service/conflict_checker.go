package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clinicflow/clinicflow/internal/domain/appointment"
)

// ConflictChecker answers whether a doctor or patient already has a
// scheduled appointment overlapping a candidate slot. The overlap predicate
// is half-open interval intersection: an appointment ending exactly when the
// candidate starts does not conflict. It is a pure query; the repository
// decides how the interval test is evaluated against storage.
type ConflictChecker struct {
	repo appointment.Repository
}

func NewConflictChecker(repo appointment.Repository) *ConflictChecker {
	return &ConflictChecker{repo: repo}
}

func (c *ConflictChecker) HasDoctorConflict(ctx context.Context, doctorID uuid.UUID, start time.Time) (bool, error) {
	return c.repo.HasDoctorOverlap(ctx, doctorID, start)
}

func (c *ConflictChecker) HasPatientConflict(ctx context.Context, patientID uuid.UUID, start time.Time) (bool, error) {
	return c.repo.HasPatientOverlap(ctx, patientID, start)
}

// EnsureDoctorFree returns ErrDoctorConflict when the doctor has an
// overlapping scheduled appointment.
func (c *ConflictChecker) EnsureDoctorFree(ctx context.Context, doctorID uuid.UUID, start time.Time) error {
	conflict, err := c.HasDoctorConflict(ctx, doctorID, start)
	if err != nil {
		return fmt.Errorf("checking doctor conflicts: %w", err)
	}
	if conflict {
		return appointment.ErrDoctorConflict
	}
	return nil
}

// EnsurePatientFree returns ErrPatientConflict when the patient has an
// overlapping scheduled appointment.
func (c *ConflictChecker) EnsurePatientFree(ctx context.Context, patientID uuid.UUID, start time.Time) error {
	conflict, err := c.HasPatientConflict(ctx, patientID, start)
	if err != nil {
		return fmt.Errorf("checking patient conflicts: %w", err)
	}
	if conflict {
		return appointment.ErrPatientConflict
	}
	return nil
}
