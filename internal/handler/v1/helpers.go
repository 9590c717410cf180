package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clinicflow/clinicflow/internal/domain/appointment"
	"github.com/clinicflow/clinicflow/internal/domain/doctor"
	"github.com/clinicflow/clinicflow/internal/domain/patient"
)

type APIResponse[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse[any]{Data: data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, APIResponse[any]{Data: data})
}

// respondServiceError maps the error taxonomy to transport statuses:
// NotFound → 404, Conflict → 409, domain validation → 400. The services
// propagate domain errors unchanged, so errors.Is sees through any wrapping.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, appointment.ErrAppointmentNotFound),
		errors.Is(err, appointment.ErrPrescriptionNotFound),
		errors.Is(err, doctor.ErrDoctorNotFound),
		errors.Is(err, patient.ErrPatientNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, appointment.ErrDoctorConflict),
		errors.Is(err, appointment.ErrPatientConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, appointment.ErrInvalidID),
		errors.Is(err, appointment.ErrInvalidDate),
		errors.Is(err, appointment.ErrMustBeFuture),
		errors.Is(err, appointment.ErrOutsideBusinessHours),
		errors.Is(err, appointment.ErrExtendsPastClosing),
		errors.Is(err, appointment.ErrNotScheduled),
		errors.Is(err, appointment.ErrAlreadyStartedOrFinished),
		errors.Is(err, appointment.ErrWithinCancellationWindow),
		errors.Is(err, appointment.ErrNotYetStarted),
		errors.Is(err, appointment.ErrNotYetFinished),
		errors.Is(err, appointment.ErrInvalidMedication),
		errors.Is(err, appointment.ErrInvalidDosage),
		errors.Is(err, appointment.ErrInvalidDuration),
		errors.Is(err, appointment.ErrInvalidInstructions),
		errors.Is(err, doctor.ErrInvalidName),
		errors.Is(err, patient.ErrInvalidName),
		errors.Is(err, patient.ErrInvalidDateOfBirth):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return false
	}
	return true
}

func parseUUID(c *gin.Context, param string) (uuid.UUID, bool) {
	raw := c.Param(param)
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + param + ": must be a valid UUID"})
		return uuid.Nil, false
	}
	return id, true
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return defaultVal
}
