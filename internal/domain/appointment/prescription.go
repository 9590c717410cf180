package appointment

import (
	"time"

	"github.com/google/uuid"
)

const (
	maxMedicationLen   = 100
	maxDosageLen       = 50
	maxDurationLen     = 50
	maxInstructionsLen = 500
)

// Prescription is a medication order owned by its appointment. It has no
// independent lifecycle: it is created and updated through the aggregate and
// removed only if the owning appointment is deleted.
type Prescription struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	AppointmentID uuid.UUID `gorm:"column:appointment_id;type:uuid;not null;index"`

	Medication   string `gorm:"column:medication;type:varchar(100);not null"`
	Dosage       string `gorm:"column:dosage;type:varchar(50);not null"`
	Duration     string `gorm:"column:duration;type:varchar(50);not null"`
	Instructions string `gorm:"column:instructions;type:varchar(500);not null"`
}

func (Prescription) TableName() string {
	return "clinical.prescriptions"
}

// NewPrescription validates and builds a prescription for an appointment.
func NewPrescription(id, appointmentID uuid.UUID, medication, dosage, duration, instructions string) (*Prescription, error) {
	if id == uuid.Nil || appointmentID == uuid.Nil {
		return nil, ErrInvalidID
	}
	if err := validatePrescriptionDetails(medication, dosage, duration, instructions); err != nil {
		return nil, err
	}

	return &Prescription{
		ID:            id,
		AppointmentID: appointmentID,
		Medication:    medication,
		Dosage:        dosage,
		Duration:      duration,
		Instructions:  instructions,
	}, nil
}

// Update replaces all prescription fields, re-validating every one. The
// prescription is left untouched when any field is invalid.
func (p *Prescription) Update(medication, dosage, duration, instructions string) error {
	if err := validatePrescriptionDetails(medication, dosage, duration, instructions); err != nil {
		return err
	}

	p.Medication = medication
	p.Dosage = dosage
	p.Duration = duration
	p.Instructions = instructions
	return nil
}

func validatePrescriptionDetails(medication, dosage, duration, instructions string) error {
	if medication == "" || len(medication) > maxMedicationLen {
		return ErrInvalidMedication
	}
	if dosage == "" || len(dosage) > maxDosageLen {
		return ErrInvalidDosage
	}
	if duration == "" || len(duration) > maxDurationLen {
		return ErrInvalidDuration
	}
	if instructions == "" || len(instructions) > maxInstructionsLen {
		return ErrInvalidInstructions
	}
	return nil
}
