package appointment

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrDoctorConflict      = errors.New("doctor already has an appointment scheduled at this time")
	ErrPatientConflict     = errors.New("patient already has an appointment scheduled at this time")

	ErrInvalidID = errors.New("appointment, doctor and patient ids are required")

	ErrInvalidDate          = errors.New("invalid appointment date")
	ErrMustBeFuture         = errors.New("appointment date must be in the future")
	ErrOutsideBusinessHours = errors.New("appointment date must be between 8:00 and 17:00")
	ErrExtendsPastClosing   = errors.New("appointment cannot extend past 17:00")

	ErrNotScheduled             = errors.New("only scheduled appointments can be modified")
	ErrAlreadyStartedOrFinished = errors.New("cannot cancel an appointment that has already started or finished")
	ErrWithinCancellationWindow = errors.New("appointment cannot be cancelled within 24 hours of its start time")
	ErrNotYetStarted            = errors.New("cannot complete an appointment that has not started yet")
	ErrNotYetFinished           = errors.New("cannot complete an appointment before it ends")

	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrInvalidMedication    = errors.New("medication is required and cannot exceed 100 characters")
	ErrInvalidDosage        = errors.New("dosage is required and cannot exceed 50 characters")
	ErrInvalidDuration      = errors.New("duration is required and cannot exceed 50 characters")
	ErrInvalidInstructions  = errors.New("instructions are required and cannot exceed 500 characters")
)
