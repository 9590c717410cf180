package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)

	// GetWithPrescriptions loads the appointment together with its owned
	// prescriptions.
	GetWithPrescriptions(ctx context.Context, id uuid.UUID) (*Appointment, error)

	// Update persists the aggregate's own fields (slot, status); owned
	// prescriptions are persisted through AddPrescription/UpdatePrescription.
	Update(ctx context.Context, a *Appointment) error

	AddPrescription(ctx context.Context, p *Prescription) error
	UpdatePrescription(ctx context.Context, p *Prescription) error

	List(ctx context.Context, q *ListAppointmentsQuery) (*PagedAppointments, error)

	// HasDoctorOverlap reports whether the doctor has a scheduled appointment
	// whose half-open interval overlaps [start, start+30m). Cancelled and
	// completed appointments never count.
	HasDoctorOverlap(ctx context.Context, doctorID uuid.UUID, start time.Time) (bool, error)

	// HasPatientOverlap is the patient analogue of HasDoctorOverlap.
	HasPatientOverlap(ctx context.Context, patientID uuid.UUID, start time.Time) (bool, error)
}

type CreateAppointmentCommand struct {
	DoctorID    uuid.UUID
	PatientID   uuid.UUID
	ScheduledAt time.Time
}

type RescheduleAppointmentCommand struct {
	NewScheduledAt time.Time
}

type AddPrescriptionCommand struct {
	Medication   string
	Dosage       string
	Duration     string
	Instructions string
}

type UpdatePrescriptionCommand struct {
	PrescriptionID uuid.UUID
	Medication     string
	Dosage         string
	Duration       string
	Instructions   string
}

type ListAppointmentsQuery struct {
	DoctorID  *uuid.UUID
	PatientID *uuid.UUID
	Status    *Status
	Page      int
	PageSize  int
}

type PagedAppointments struct {
	Appointments []*Appointment
	TotalCount   int64
	Page         int
	PageSize     int
	TotalPages   int
}
