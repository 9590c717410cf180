package appointment

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrescription(t *testing.T) {
	appointmentID := uuid.New()

	t.Run("valid prescription", func(t *testing.T) {
		p, err := NewPrescription(uuid.New(), appointmentID, "Amoxicillin", "500mg", "7 days", "Take with food")
		require.NoError(t, err)
		assert.Equal(t, appointmentID, p.AppointmentID)
		assert.Equal(t, "Amoxicillin", p.Medication)
	})

	t.Run("nil ids", func(t *testing.T) {
		_, err := NewPrescription(uuid.Nil, appointmentID, "Amoxicillin", "500mg", "7 days", "Take with food")
		assert.ErrorIs(t, err, ErrInvalidID)

		_, err = NewPrescription(uuid.New(), uuid.Nil, "Amoxicillin", "500mg", "7 days", "Take with food")
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	tests := []struct {
		name         string
		medication   string
		dosage       string
		duration     string
		instructions string
		wantErr      error
	}{
		{"empty medication", "", "500mg", "7 days", "Take with food", ErrInvalidMedication},
		{"medication at limit", strings.Repeat("a", 100), "500mg", "7 days", "Take with food", nil},
		{"medication over limit", strings.Repeat("a", 101), "500mg", "7 days", "Take with food", ErrInvalidMedication},
		{"empty dosage", "Amoxicillin", "", "7 days", "Take with food", ErrInvalidDosage},
		{"dosage over limit", "Amoxicillin", strings.Repeat("a", 51), "7 days", "Take with food", ErrInvalidDosage},
		{"empty duration", "Amoxicillin", "500mg", "", "Take with food", ErrInvalidDuration},
		{"duration over limit", "Amoxicillin", "500mg", strings.Repeat("a", 51), "Take with food", ErrInvalidDuration},
		{"empty instructions", "Amoxicillin", "500mg", "7 days", "", ErrInvalidInstructions},
		{"instructions at limit", "Amoxicillin", "500mg", "7 days", strings.Repeat("a", 500), nil},
		{"instructions over limit", "Amoxicillin", "500mg", "7 days", strings.Repeat("a", 501), ErrInvalidInstructions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPrescription(uuid.New(), appointmentID, tt.medication, tt.dosage, tt.duration, tt.instructions)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPrescriptionUpdate(t *testing.T) {
	newValid := func(t *testing.T) *Prescription {
		t.Helper()
		p, err := NewPrescription(uuid.New(), uuid.New(), "Amoxicillin", "500mg", "7 days", "Take with food")
		require.NoError(t, err)
		return p
	}

	t.Run("replaces every field", func(t *testing.T) {
		p := newValid(t)
		require.NoError(t, p.Update("Ibuprofen", "200mg", "5 days", "After meals"))
		assert.Equal(t, "Ibuprofen", p.Medication)
		assert.Equal(t, "200mg", p.Dosage)
		assert.Equal(t, "5 days", p.Duration)
		assert.Equal(t, "After meals", p.Instructions)
	})

	t.Run("any invalid field rejects the whole update", func(t *testing.T) {
		p := newValid(t)
		err := p.Update("Ibuprofen", "200mg", "5 days", strings.Repeat("a", 501))
		require.ErrorIs(t, err, ErrInvalidInstructions)

		assert.Equal(t, "Amoxicillin", p.Medication, "no field may change on a failed update")
		assert.Equal(t, "Take with food", p.Instructions)
	})
}
