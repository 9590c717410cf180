package v1

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clinicflow/clinicflow/internal/domain/doctor"
	"github.com/clinicflow/clinicflow/internal/service"
)

type DoctorHandler struct {
	svc *service.DoctorService
	log *zap.Logger
}

func NewDoctorHandler(svc *service.DoctorService, log *zap.Logger) *DoctorHandler {
	return &DoctorHandler{svc: svc, log: log}
}

type createDoctorRequest struct {
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Specialty     string `json:"specialty" binding:"required"`
	LicenseNumber string `json:"license_number"`
}

func (h *DoctorHandler) Create(c *gin.Context) {
	var req createDoctorRequest
	if !bindJSON(c, &req) {
		return
	}

	d, err := h.svc.CreateDoctor(c.Request.Context(), &doctor.CreateDoctorCommand{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Specialty:     req.Specialty,
		LicenseNumber: req.LicenseNumber,
	}, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, gin.H{
		"id":         d.ID,
		"first_name": d.FirstName,
		"last_name":  d.LastName,
		"specialty":  d.Specialty,
	})
}

func (h *DoctorHandler) Get(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	d, err := h.svc.GetDoctor(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{
		"id":             d.ID,
		"first_name":     d.FirstName,
		"last_name":      d.LastName,
		"specialty":      d.Specialty,
		"license_number": d.LicenseNumber,
	})
}

func (h *DoctorHandler) List(c *gin.Context) {
	q := &doctor.ListDoctorsQuery{
		Page:     parseQueryInt(c, "page", 1),
		PageSize: parseQueryInt(c, "page_size", 20),
	}
	if raw := c.Query("specialty"); raw != "" {
		q.Specialty = &raw
	}

	paged, err := h.svc.ListDoctors(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]gin.H, 0, len(paged.Doctors))
	for _, d := range paged.Doctors {
		items = append(items, gin.H{
			"id":         d.ID,
			"first_name": d.FirstName,
			"last_name":  d.LastName,
			"specialty":  d.Specialty,
		})
	}

	respondOK(c, gin.H{
		"doctors":     items,
		"total_count": paged.TotalCount,
		"page":        paged.Page,
		"page_size":   paged.PageSize,
		"total_pages": paged.TotalPages,
	})
}
