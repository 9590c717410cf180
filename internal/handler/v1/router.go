package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clinicflow/clinicflow/pkg/metrics"
)

func NewRouter(
	log *zap.Logger,
	m *metrics.Collector,
	appointments *AppointmentHandler,
	doctors *DoctorHandler,
	patients *PatientHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(log), Metrics(m))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))

	api := r.Group("/api/v1")
	{
		api.POST("/appointments", appointments.Create)
		api.GET("/appointments", appointments.List)
		api.GET("/appointments/:id", appointments.Get)
		api.PUT("/appointments/:id/reschedule", appointments.Reschedule)
		api.POST("/appointments/:id/cancel", appointments.Cancel)
		api.POST("/appointments/:id/complete", appointments.Complete)
		api.POST("/appointments/:id/prescriptions", appointments.AddPrescription)
		api.PUT("/appointments/:id/prescriptions/:prescriptionID", appointments.UpdatePrescription)

		api.POST("/doctors", doctors.Create)
		api.GET("/doctors", doctors.List)
		api.GET("/doctors/:id", doctors.Get)

		api.POST("/patients", patients.Create)
		api.GET("/patients", patients.List)
		api.GET("/patients/:id", patients.Get)
	}

	return r
}
