package doctor

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, d *Doctor) error

	// GetByID retrieves a doctor by primary key. Returns ErrDoctorNotFound if
	// absent.
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)

	List(ctx context.Context, q *ListDoctorsQuery) (*PagedDoctors, error)
}
