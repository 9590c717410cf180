package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/clinicflow/clinicflow/internal/domain/patient"
	"github.com/clinicflow/clinicflow/pkg/clock"
)

func newPatientService(t *testing.T) (*PatientService, *fakePatientRepo) {
	t.Helper()
	repo := newFakePatientRepo()
	audit := NewAuditService(&fakeAuditRepo{}, nil, zap.NewNop())
	t.Cleanup(audit.Shutdown)
	return NewPatientService(repo, clock.Fixed(now), audit, nil, zap.NewNop()), repo
}

func TestCreatePatient(t *testing.T) {
	ctx := context.Background()
	dob := time.Date(1990, time.June, 23, 0, 0, 0, 0, time.UTC)

	t.Run("valid patient", func(t *testing.T) {
		svc, repo := newPatientService(t)
		p, err := svc.CreatePatient(ctx, &patient.CreatePatientCommand{
			FirstName: "Alan", LastName: "Turing", DateOfBirth: dob,
			Phone: "+1 555 0100", Email: "alan@example.com",
		}, "127.0.0.1")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, p.ID)

		stored, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alan Turing", stored.FullName())
	})

	t.Run("missing name", func(t *testing.T) {
		svc, _ := newPatientService(t)
		_, err := svc.CreatePatient(ctx, &patient.CreatePatientCommand{
			FirstName: "", LastName: "Turing", DateOfBirth: dob,
		}, "127.0.0.1")
		assert.ErrorIs(t, err, patient.ErrInvalidName)
	})

	t.Run("date of birth in the future", func(t *testing.T) {
		svc, _ := newPatientService(t)
		_, err := svc.CreatePatient(ctx, &patient.CreatePatientCommand{
			FirstName: "Alan", LastName: "Turing", DateOfBirth: now.Add(24 * time.Hour),
		}, "127.0.0.1")
		assert.ErrorIs(t, err, patient.ErrInvalidDateOfBirth)
	})
}

func TestGetPatientNotFound(t *testing.T) {
	svc, _ := newPatientService(t)
	_, err := svc.GetPatient(context.Background(), uuid.New())
	assert.ErrorIs(t, err, patient.ErrPatientNotFound)
}

func TestListPatientsDefaults(t *testing.T) {
	svc, _ := newPatientService(t)
	page, err := svc.ListPatients(context.Background(), &patient.ListPatientsQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PageSize)
}
