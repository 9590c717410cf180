package appointment

import "time"

const (
	clinicOpeningHour = 8
	clinicClosingHour = 17
)

// SlotDuration is the fixed length of every appointment.
const SlotDuration = 30 * time.Minute

// Slot is the validated start instant of an appointment. It is an immutable
// value: rescheduling replaces the whole slot, the start is never mutated in
// place. Every slot in the system comes out of NewSlot, so an appointment can
// never hold an instant that violates the clinic schedule.
type Slot struct {
	Start time.Time `gorm:"column:scheduled_at;not null;index"`
}

// NewSlot validates a candidate start instant against the clinic schedule:
// the instant must be in the future, must not begin before the clinic opens
// at 8:00, and the 30-minute session must end by 17:00 on the same day.
// A session ending exactly at 17:00 is allowed.
func NewSlot(candidate, now time.Time) (Slot, error) {
	if candidate.IsZero() {
		return Slot{}, ErrInvalidDate
	}
	if !candidate.After(now) {
		return Slot{}, ErrMustBeFuture
	}
	if candidate.Hour() < clinicOpeningHour {
		return Slot{}, ErrOutsideBusinessHours
	}

	closing := time.Date(candidate.Year(), candidate.Month(), candidate.Day(),
		clinicClosingHour, 0, 0, 0, candidate.Location())
	if candidate.Add(SlotDuration).After(closing) {
		return Slot{}, ErrExtendsPastClosing
	}

	return Slot{Start: candidate}, nil
}

func (s Slot) End() time.Time {
	return s.Start.Add(SlotDuration)
}

// Equal reports structural equality on the start instant.
func (s Slot) Equal(other Slot) bool {
	return s.Start.Equal(other.Start)
}

// Overlaps treats both slots as half-open intervals [start, start+30m).
// Back-to-back slots, one ending exactly when the other starts, do not
// overlap.
func (s Slot) Overlaps(other Slot) bool {
	return s.Start.Before(other.End()) && other.Start.Before(s.End())
}
