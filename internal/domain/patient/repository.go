package patient

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Patient) error

	// GetByID retrieves a patient by primary key. Returns ErrPatientNotFound
	// if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)

	List(ctx context.Context, q *ListPatientsQuery) (*PagedPatients, error)
}
