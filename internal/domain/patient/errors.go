package patient

import "errors"

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrInvalidName        = errors.New("patient first and last name are required")
	ErrInvalidDateOfBirth = errors.New("date of birth cannot be in the future")
)
