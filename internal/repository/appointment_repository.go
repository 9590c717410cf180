package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinicflow/clinicflow/internal/domain/appointment"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *appointment.Appointment) error {
	if err := r.db.WithContext(ctx).Omit("Prescriptions").Create(a).Error; err != nil {
		return fmt.Errorf("inserting appointment: %w", err)
	}
	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	var a appointment.Appointment
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appointment.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("loading appointment: %w", err)
	}
	return &a, nil
}

func (r *AppointmentRepository) GetWithPrescriptions(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	var a appointment.Appointment
	err := r.db.WithContext(ctx).Preload("Prescriptions").First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appointment.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("loading appointment with prescriptions: %w", err)
	}
	return &a, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, a *appointment.Appointment) error {
	err := r.db.WithContext(ctx).Model(a).
		Select("scheduled_at", "status").
		Updates(map[string]any{
			"scheduled_at": a.Slot.Start,
			"status":       a.Status,
		}).Error
	if err != nil {
		return fmt.Errorf("updating appointment: %w", err)
	}
	return nil
}

func (r *AppointmentRepository) AddPrescription(ctx context.Context, p *appointment.Prescription) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("inserting prescription: %w", err)
	}
	return nil
}

func (r *AppointmentRepository) UpdatePrescription(ctx context.Context, p *appointment.Prescription) error {
	err := r.db.WithContext(ctx).Model(p).
		Select("medication", "dosage", "duration", "instructions").
		Updates(map[string]any{
			"medication":   p.Medication,
			"dosage":       p.Dosage,
			"duration":     p.Duration,
			"instructions": p.Instructions,
		}).Error
	if err != nil {
		return fmt.Errorf("updating prescription: %w", err)
	}
	return nil
}

func (r *AppointmentRepository) List(ctx context.Context, q *appointment.ListAppointmentsQuery) (*appointment.PagedAppointments, error) {
	tx := r.db.WithContext(ctx).Model(&appointment.Appointment{})

	if q.DoctorID != nil {
		tx = tx.Where("doctor_id = ?", *q.DoctorID)
	}
	if q.PatientID != nil {
		tx = tx.Where("patient_id = ?", *q.PatientID)
	}
	if q.Status != nil {
		tx = tx.Where("status = ?", *q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("counting appointments: %w", err)
	}

	var items []*appointment.Appointment
	err := tx.Order("scheduled_at").
		Offset((q.Page - 1) * q.PageSize).
		Limit(q.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}

	totalPages := int(total) / q.PageSize
	if int(total)%q.PageSize != 0 {
		totalPages++
	}

	return &appointment.PagedAppointments{
		Appointments: items,
		TotalCount:   total,
		Page:         q.Page,
		PageSize:     q.PageSize,
		TotalPages:   totalPages,
	}, nil
}

// HasDoctorOverlap evaluates the half-open interval intersection against
// scheduled appointments only: an existing appointment conflicts when
// candidateStart < existingEnd AND existingStart < candidateEnd. Back-to-back
// appointments do not conflict.
func (r *AppointmentRepository) HasDoctorOverlap(ctx context.Context, doctorID uuid.UUID, start time.Time) (bool, error) {
	return r.hasOverlap(ctx, "doctor_id", doctorID, start)
}

func (r *AppointmentRepository) HasPatientOverlap(ctx context.Context, patientID uuid.UUID, start time.Time) (bool, error) {
	return r.hasOverlap(ctx, "patient_id", patientID, start)
}

func (r *AppointmentRepository) hasOverlap(ctx context.Context, column string, id uuid.UUID, start time.Time) (bool, error) {
	end := start.Add(appointment.SlotDuration)

	var count int64
	err := r.db.WithContext(ctx).Model(&appointment.Appointment{}).
		Where(column+" = ?", id).
		Where("status = ?", appointment.StatusScheduled).
		Where("? < scheduled_at + interval '30 minutes' AND scheduled_at < ?", start, end).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking %s overlap: %w", column, err)
	}
	return count > 0, nil
}
