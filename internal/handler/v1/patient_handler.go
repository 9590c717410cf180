package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clinicflow/clinicflow/internal/domain/patient"
	"github.com/clinicflow/clinicflow/internal/service"
)

type PatientHandler struct {
	svc *service.PatientService
	log *zap.Logger
}

func NewPatientHandler(svc *service.PatientService, log *zap.Logger) *PatientHandler {
	return &PatientHandler{svc: svc, log: log}
}

type createPatientRequest struct {
	FirstName   string    `json:"first_name" binding:"required"`
	LastName    string    `json:"last_name" binding:"required"`
	DateOfBirth time.Time `json:"date_of_birth" binding:"required"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
}

func patientBody(p *patient.Patient) gin.H {
	return gin.H{
		"id":            p.ID,
		"first_name":    p.FirstName,
		"last_name":     p.LastName,
		"date_of_birth": p.DateOfBirth,
		"phone":         p.Phone,
		"email":         p.Email,
	}
}

func (h *PatientHandler) Create(c *gin.Context) {
	var req createPatientRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.svc.CreatePatient(c.Request.Context(), &patient.CreatePatientCommand{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		Phone:       req.Phone,
		Email:       req.Email,
	}, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, patientBody(p))
}

func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	p, err := h.svc.GetPatient(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, patientBody(p))
}

func (h *PatientHandler) List(c *gin.Context) {
	q := &patient.ListPatientsQuery{
		Search:   c.Query("search"),
		Page:     parseQueryInt(c, "page", 1),
		PageSize: parseQueryInt(c, "page_size", 20),
	}

	paged, err := h.svc.ListPatients(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]gin.H, 0, len(paged.Patients))
	for _, p := range paged.Patients {
		items = append(items, patientBody(p))
	}

	respondOK(c, gin.H{
		"patients":    items,
		"total_count": paged.TotalCount,
		"page":        paged.Page,
		"page_size":   paged.PageSize,
		"total_pages": paged.TotalPages,
	})
}
