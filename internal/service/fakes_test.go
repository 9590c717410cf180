package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clinicflow/clinicflow/internal/domain"
	"github.com/clinicflow/clinicflow/internal/domain/appointment"
	"github.com/clinicflow/clinicflow/internal/domain/doctor"
	"github.com/clinicflow/clinicflow/internal/domain/patient"
)

// fakeAppointmentRepo is an in-memory appointment.Repository. Overlap queries
// evaluate the same half-open interval predicate the SQL implementation uses.
type fakeAppointmentRepo struct {
	mu            sync.Mutex
	appointments  map[uuid.UUID]*appointment.Appointment
	prescriptions map[uuid.UUID][]appointment.Prescription

	createErr error
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{
		appointments:  make(map[uuid.UUID]*appointment.Appointment),
		prescriptions: make(map[uuid.UUID][]appointment.Prescription),
	}
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *appointment.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	cp := *a
	f.appointments[a.ID] = &cp
	return nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appointments[id]
	if !ok {
		return nil, appointment.ErrAppointmentNotFound
	}
	cp := *a
	cp.Prescriptions = nil
	return &cp, nil
}

func (f *fakeAppointmentRepo) GetWithPrescriptions(_ context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appointments[id]
	if !ok {
		return nil, appointment.ErrAppointmentNotFound
	}
	cp := *a
	cp.Prescriptions = append([]appointment.Prescription(nil), f.prescriptions[id]...)
	return &cp, nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, a *appointment.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.appointments[a.ID]
	if !ok {
		return appointment.ErrAppointmentNotFound
	}
	stored.Slot = a.Slot
	stored.Status = a.Status
	return nil
}

func (f *fakeAppointmentRepo) AddPrescription(_ context.Context, p *appointment.Prescription) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prescriptions[p.AppointmentID] = append(f.prescriptions[p.AppointmentID], *p)
	return nil
}

func (f *fakeAppointmentRepo) UpdatePrescription(_ context.Context, p *appointment.Prescription) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.prescriptions[p.AppointmentID]
	for i := range list {
		if list[i].ID == p.ID {
			list[i] = *p
			return nil
		}
	}
	return appointment.ErrPrescriptionNotFound
}

func (f *fakeAppointmentRepo) List(_ context.Context, q *appointment.ListAppointmentsQuery) (*appointment.PagedAppointments, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*appointment.Appointment
	for _, a := range f.appointments {
		if q.DoctorID != nil && a.DoctorID != *q.DoctorID {
			continue
		}
		if q.PatientID != nil && a.PatientID != *q.PatientID {
			continue
		}
		if q.Status != nil && a.Status != *q.Status {
			continue
		}
		cp := *a
		matched = append(matched, &cp)
	}
	return &appointment.PagedAppointments{
		Appointments: matched,
		TotalCount:   int64(len(matched)),
		Page:         q.Page,
		PageSize:     q.PageSize,
		TotalPages:   1,
	}, nil
}

func (f *fakeAppointmentRepo) HasDoctorOverlap(_ context.Context, doctorID uuid.UUID, start time.Time) (bool, error) {
	return f.hasOverlap(func(a *appointment.Appointment) bool { return a.DoctorID == doctorID }, start), nil
}

func (f *fakeAppointmentRepo) HasPatientOverlap(_ context.Context, patientID uuid.UUID, start time.Time) (bool, error) {
	return f.hasOverlap(func(a *appointment.Appointment) bool { return a.PatientID == patientID }, start), nil
}

func (f *fakeAppointmentRepo) hasOverlap(match func(*appointment.Appointment) bool, start time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	candidate := appointment.Slot{Start: start}
	for _, a := range f.appointments {
		if a.Status != appointment.StatusScheduled || !match(a) {
			continue
		}
		if a.Slot.Overlaps(candidate) {
			return true
		}
	}
	return false
}

type fakeDoctorRepo struct {
	mu      sync.Mutex
	doctors map[uuid.UUID]*doctor.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[uuid.UUID]*doctor.Doctor)}
}

func (f *fakeDoctorRepo) Create(_ context.Context, d *doctor.Doctor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *d
	f.doctors[d.ID] = &cp
	return nil
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, id uuid.UUID) (*doctor.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.doctors[id]
	if !ok {
		return nil, doctor.ErrDoctorNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDoctorRepo) List(_ context.Context, q *doctor.ListDoctorsQuery) (*doctor.PagedDoctors, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*doctor.Doctor
	for _, d := range f.doctors {
		if q.Specialty != nil && d.Specialty != *q.Specialty {
			continue
		}
		cp := *d
		matched = append(matched, &cp)
	}
	return &doctor.PagedDoctors{
		Doctors:    matched,
		TotalCount: int64(len(matched)),
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: 1,
	}, nil
}

type fakePatientRepo struct {
	mu       sync.Mutex
	patients map[uuid.UUID]*patient.Patient
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[uuid.UUID]*patient.Patient)}
}

func (f *fakePatientRepo) Create(_ context.Context, p *patient.Patient) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.patients[p.ID] = &cp
	return nil
}

func (f *fakePatientRepo) GetByID(_ context.Context, id uuid.UUID) (*patient.Patient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.patients[id]
	if !ok {
		return nil, patient.ErrPatientNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePatientRepo) List(_ context.Context, q *patient.ListPatientsQuery) (*patient.PagedPatients, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*patient.Patient
	for _, p := range f.patients {
		cp := *p
		matched = append(matched, &cp)
	}
	return &patient.PagedPatients{
		Patients:   matched,
		TotalCount: int64(len(matched)),
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: 1,
	}, nil
}

type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []*domain.AuditLog
}

func (f *fakeAuditRepo) Create(_ context.Context, entry *domain.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeAuditRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}
