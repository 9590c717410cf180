package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clinicflow/clinicflow/internal/domain/appointment"
	"github.com/clinicflow/clinicflow/internal/service"
)

type AppointmentHandler struct {
	svc *service.SchedulingService
	log *zap.Logger
}

func NewAppointmentHandler(svc *service.SchedulingService, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{svc: svc, log: log}
}

type createAppointmentRequest struct {
	DoctorID    uuid.UUID `json:"doctor_id" binding:"required"`
	PatientID   uuid.UUID `json:"patient_id" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

type rescheduleAppointmentRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

type prescriptionRequest struct {
	Medication   string `json:"medication" binding:"required"`
	Dosage       string `json:"dosage" binding:"required"`
	Duration     string `json:"duration" binding:"required"`
	Instructions string `json:"instructions" binding:"required"`
}

type prescriptionResponse struct {
	ID           uuid.UUID `json:"id"`
	Medication   string    `json:"medication"`
	Dosage       string    `json:"dosage"`
	Duration     string    `json:"duration"`
	Instructions string    `json:"instructions"`
}

type appointmentResponse struct {
	ID            uuid.UUID              `json:"id"`
	DoctorID      uuid.UUID              `json:"doctor_id"`
	PatientID     uuid.UUID              `json:"patient_id"`
	ScheduledAt   time.Time              `json:"scheduled_at"`
	EndsAt        time.Time              `json:"ends_at"`
	Status        appointment.Status     `json:"status"`
	Prescriptions []prescriptionResponse `json:"prescriptions,omitempty"`
}

func toAppointmentResponse(a *appointment.Appointment) appointmentResponse {
	resp := appointmentResponse{
		ID:          a.ID,
		DoctorID:    a.DoctorID,
		PatientID:   a.PatientID,
		ScheduledAt: a.Slot.Start,
		EndsAt:      a.Slot.End(),
		Status:      a.Status,
	}
	for _, p := range a.Prescriptions {
		resp.Prescriptions = append(resp.Prescriptions, prescriptionResponse{
			ID:           p.ID,
			Medication:   p.Medication,
			Dosage:       p.Dosage,
			Duration:     p.Duration,
			Instructions: p.Instructions,
		})
	}
	return resp
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req createAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.svc.CreateAppointment(c.Request.Context(), &appointment.CreateAppointmentCommand{
		DoctorID:    req.DoctorID,
		PatientID:   req.PatientID,
		ScheduledAt: req.ScheduledAt,
	}, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, gin.H{"id": id})
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	a, err := h.svc.GetAppointment(c.Request.Context(), id, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, toAppointmentResponse(a))
}

func (h *AppointmentHandler) List(c *gin.Context) {
	q := &appointment.ListAppointmentsQuery{
		Page:     parseQueryInt(c, "page", 1),
		PageSize: parseQueryInt(c, "page_size", 20),
	}

	if raw := c.Query("doctor_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			q.DoctorID = &id
		}
	}
	if raw := c.Query("patient_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			q.PatientID = &id
		}
	}
	if raw := c.Query("status"); raw != "" {
		status := appointment.Status(raw)
		q.Status = &status
	}

	paged, err := h.svc.ListAppointments(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]appointmentResponse, 0, len(paged.Appointments))
	for _, a := range paged.Appointments {
		items = append(items, toAppointmentResponse(a))
	}

	respondOK(c, gin.H{
		"appointments": items,
		"total_count":  paged.TotalCount,
		"page":         paged.Page,
		"page_size":    paged.PageSize,
		"total_pages":  paged.TotalPages,
	})
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	var req rescheduleAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.svc.RescheduleAppointment(c.Request.Context(), id, &appointment.RescheduleAppointmentCommand{
		NewScheduledAt: req.ScheduledAt,
	}, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, toAppointmentResponse(a))
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	a, err := h.svc.CancelAppointment(c.Request.Context(), id, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, toAppointmentResponse(a))
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	a, err := h.svc.CompleteAppointment(c.Request.Context(), id, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, toAppointmentResponse(a))
}

func (h *AppointmentHandler) AddPrescription(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	var req prescriptionRequest
	if !bindJSON(c, &req) {
		return
	}

	prescriptionID, err := h.svc.AddPrescription(c.Request.Context(), id, &appointment.AddPrescriptionCommand{
		Medication:   req.Medication,
		Dosage:       req.Dosage,
		Duration:     req.Duration,
		Instructions: req.Instructions,
	}, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, gin.H{"id": prescriptionID})
}

func (h *AppointmentHandler) UpdatePrescription(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	prescriptionID, ok := parseUUID(c, "prescriptionID")
	if !ok {
		return
	}

	var req prescriptionRequest
	if !bindJSON(c, &req) {
		return
	}

	err := h.svc.UpdatePrescription(c.Request.Context(), id, &appointment.UpdatePrescriptionCommand{
		PrescriptionID: prescriptionID,
		Medication:     req.Medication,
		Dosage:         req.Dosage,
		Duration:       req.Duration,
		Instructions:   req.Instructions,
	}, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"id": prescriptionID})
}
