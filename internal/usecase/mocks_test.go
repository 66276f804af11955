package usecase

import (
	"context"
	"errors"
	"sync/atomic"

	"patient-api/internal/domain/entity"
	"patient-api/internal/domain/repository"
	"patient-api/internal/service"
	"patient-api/pkg/fhir"

	"github.com/google/uuid"
)

// Compile-time check to ensure MockPatientRepository implements PatientRepository
var _ repository.PatientRepository = (*MockPatientRepository)(nil)

// MockPatientRepository is a mock implementation of repository.PatientRepository.
type MockPatientRepository struct {
	CreateFunc          func(ctx context.Context, patient *entity.Patient) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	FindAllFunc         func(ctx context.Context) ([]entity.Patient, error)
	FindByBirthDateFunc func(ctx context.Context, param fhir.DateParam) ([]entity.Patient, error)
	UpdateFunc          func(ctx context.Context, patient *entity.Patient) (int64, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) (int64, error)

	CreateFuncCallCount int32
	UpdateFuncCallCount int32
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	atomic.AddInt32(&m.CreateFuncCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockPatientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockPatientRepository) FindByBirthDate(ctx context.Context, param fhir.DateParam) ([]entity.Patient, error) {
	if m.FindByBirthDateFunc != nil {
		return m.FindByBirthDateFunc(ctx, param)
	}
	return nil, nil
}

func (m *MockPatientRepository) Update(ctx context.Context, patient *entity.Patient) (int64, error) {
	atomic.AddInt32(&m.UpdateFuncCallCount, 1)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, patient)
	}
	return 1, nil
}

func (m *MockPatientRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 1, nil
}

// Compile-time check to ensure MockPatientCache implements PatientCacheService
var _ service.PatientCacheService = (*MockPatientCache)(nil)

// MockPatientCache is a mock implementation of service.PatientCacheService.
// The zero value behaves like an always-empty cache.
type MockPatientCache struct {
	GetFunc        func(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	SetFunc        func(ctx context.Context, patient *entity.Patient) error
	InvalidateFunc func(ctx context.Context, id uuid.UUID) error

	InvalidateFuncCallCount int32
}

func (m *MockPatientCache) Get(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPatientCache) Set(ctx context.Context, patient *entity.Patient) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	atomic.AddInt32(&m.InvalidateFuncCallCount, 1)
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, id)
	}
	return nil
}
