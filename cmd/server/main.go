package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clinicflow/clinicflow/internal/config"
	v1 "github.com/clinicflow/clinicflow/internal/handler/v1"
	"github.com/clinicflow/clinicflow/internal/repository"
	"github.com/clinicflow/clinicflow/internal/service"
	"github.com/clinicflow/clinicflow/pkg/clock"
	"github.com/clinicflow/clinicflow/pkg/database"
	"github.com/clinicflow/clinicflow/pkg/logger"
	"github.com/clinicflow/clinicflow/pkg/metrics"
	"github.com/clinicflow/clinicflow/pkg/tracer"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Error("failed to load configuration", zap.Error(err))
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.Tracing.Enabled {
		tp, err := tracer.Init(cfg.Tracing)
		if err != nil {
			log.Error("failed to initialize tracing", zap.Error(err))
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := tp.Shutdown(ctx); err != nil {
				log.Warn("tracer shutdown failed", zap.Error(err))
			}
		}()
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Error("failed to connect to database", zap.Error(err))
		return err
	}
	if err := database.Migrate(db, log); err != nil {
		log.Error("failed to run migrations", zap.Error(err))
		return err
	}

	m := metrics.NewCollector(cfg.App.Name)

	appointmentRepo := repository.NewAppointmentRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	auditSvc := service.NewAuditService(auditRepo, m, log)
	defer auditSvc.Shutdown()

	clk := clock.System()
	conflicts := service.NewConflictChecker(appointmentRepo)
	schedulingSvc := service.NewSchedulingService(appointmentRepo, doctorRepo, patientRepo, conflicts, clk, auditSvc, m, log)
	doctorSvc := service.NewDoctorService(doctorRepo, auditSvc, m, log)
	patientSvc := service.NewPatientService(patientRepo, clk, auditSvc, m, log)

	router := v1.NewRouter(log, m,
		v1.NewAppointmentHandler(schedulingSvc, log),
		v1.NewDoctorHandler(doctorSvc, log),
		v1.NewPatientHandler(patientSvc, log),
	)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting",
			zap.String("address", srv.Addr),
			zap.String("environment", cfg.App.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
		return err
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
		return err
	}

	log.Info("server stopped")
	return nil
}
