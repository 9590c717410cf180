package appointment

import (
	"time"

	"github.com/google/uuid"
)

// State transitions are one-shot:
//
//	scheduled → cancelled
//	scheduled → completed
//
// Cancelled and completed are terminal; once an appointment leaves scheduled
// it never returns.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// cancellationLeadTime is the minimum notice required to cancel.
const cancellationLeadTime = 24 * time.Hour

// Appointment is the aggregate root of the scheduling engine. It owns its
// prescriptions and enforces every state-transition rule itself; the methods
// below perform no I/O. Persistence and conflict lookups happen in the
// service layer around them.
type Appointment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	DoctorID  uuid.UUID `gorm:"column:doctor_id;type:uuid;not null;index"`
	PatientID uuid.UUID `gorm:"column:patient_id;type:uuid;not null;index"`

	Slot Slot `gorm:"embedded"`

	Status Status `gorm:"column:status;type:varchar(20);not null;default:'scheduled';index"`

	Prescriptions []Prescription `gorm:"foreignKey:AppointmentID"`
}

func (Appointment) TableName() string {
	return "clinical.appointments"
}

// New builds a scheduled appointment. The slot must come from NewSlot so an
// invalid instant can never reach the aggregate.
func New(id, doctorID, patientID uuid.UUID, slot Slot) (*Appointment, error) {
	if id == uuid.Nil || doctorID == uuid.Nil || patientID == uuid.Nil {
		return nil, ErrInvalidID
	}

	return &Appointment{
		ID:            id,
		DoctorID:      doctorID,
		PatientID:     patientID,
		Slot:          slot,
		Status:        StatusScheduled,
		Prescriptions: []Prescription{},
	}, nil
}

// Cancel moves a scheduled appointment to cancelled. The appointment must not
// have started, and at least 24 hours of notice are required; exactly 24
// hours is still allowed. The started check runs before the lead-time check
// so cancelling a past appointment reports the more specific error.
func (a *Appointment) Cancel(now time.Time) error {
	if a.Status != StatusScheduled {
		return ErrNotScheduled
	}
	if !a.Slot.Start.After(now) {
		return ErrAlreadyStartedOrFinished
	}
	if a.Slot.Start.Sub(now) < cancellationLeadTime {
		return ErrWithinCancellationWindow
	}

	a.Status = StatusCancelled
	return nil
}

// Reschedule replaces the slot of a scheduled appointment. The status is
// unchanged.
func (a *Appointment) Reschedule(newSlot Slot) error {
	if a.Status != StatusScheduled {
		return ErrNotScheduled
	}

	a.Slot = newSlot
	return nil
}

// Complete marks a scheduled appointment as completed. The full 30-minute
// session must have elapsed; an appointment cannot be completed mid-session.
// Completing exactly at the session end is allowed.
func (a *Appointment) Complete(now time.Time) error {
	if a.Status != StatusScheduled {
		return ErrNotScheduled
	}
	if a.Slot.Start.After(now) {
		return ErrNotYetStarted
	}
	if now.Before(a.Slot.End()) {
		return ErrNotYetFinished
	}

	a.Status = StatusCompleted
	return nil
}

// AddPrescription appends a prescription to a scheduled appointment.
func (a *Appointment) AddPrescription(p *Prescription) error {
	if a.Status != StatusScheduled {
		return ErrNotScheduled
	}

	a.Prescriptions = append(a.Prescriptions, *p)
	return nil
}

// UpdatePrescription updates an owned prescription in place, re-validating
// all fields.
func (a *Appointment) UpdatePrescription(prescriptionID uuid.UUID, medication, dosage, duration, instructions string) error {
	if a.Status != StatusScheduled {
		return ErrNotScheduled
	}

	for i := range a.Prescriptions {
		if a.Prescriptions[i].ID == prescriptionID {
			return a.Prescriptions[i].Update(medication, dosage, duration, instructions)
		}
	}
	return ErrPrescriptionNotFound
}

// PrescriptionByID returns a copy of the owned prescription with the given
// id, so callers never hold a reference into the aggregate's storage.
func (a *Appointment) PrescriptionByID(id uuid.UUID) (Prescription, bool) {
	for _, p := range a.Prescriptions {
		if p.ID == id {
			return p, true
		}
	}
	return Prescription{}, false
}
