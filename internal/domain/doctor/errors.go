package doctor

import "errors"

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrInvalidName    = errors.New("doctor first and last name are required")
)
