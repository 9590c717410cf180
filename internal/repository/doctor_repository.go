package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinicflow/clinicflow/internal/domain/doctor"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

func (r *DoctorRepository) Create(ctx context.Context, d *doctor.Doctor) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		return fmt.Errorf("inserting doctor: %w", err)
	}
	return nil
}

func (r *DoctorRepository) GetByID(ctx context.Context, id uuid.UUID) (*doctor.Doctor, error) {
	var d doctor.Doctor
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, doctor.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("loading doctor: %w", err)
	}
	return &d, nil
}

func (r *DoctorRepository) List(ctx context.Context, q *doctor.ListDoctorsQuery) (*doctor.PagedDoctors, error) {
	tx := r.db.WithContext(ctx).Model(&doctor.Doctor{})

	if q.Specialty != nil {
		tx = tx.Where("specialty = ?", *q.Specialty)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("counting doctors: %w", err)
	}

	var items []*doctor.Doctor
	err := tx.Order("last_name, first_name").
		Offset((q.Page - 1) * q.PageSize).
		Limit(q.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("listing doctors: %w", err)
	}

	totalPages := int(total) / q.PageSize
	if int(total)%q.PageSize != 0 {
		totalPages++
	}

	return &doctor.PagedDoctors{
		Doctors:    items,
		TotalCount: total,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: totalPages,
	}, nil
}
