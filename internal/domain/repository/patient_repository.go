package repository

import (
	"context"

	"patient-api/internal/domain/entity"
	"patient-api/pkg/fhir"

	"github.com/google/uuid"
)

type PatientRepository interface {
	// Create persists a new patient. The caller has already assigned the ID.
	Create(ctx context.Context, patient *entity.Patient) error

	// FindByID returns the patient or (nil, nil) when no record exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)

	// FindAll returns every stored patient in no particular order.
	FindAll(ctx context.Context) ([]entity.Patient, error)

	// FindByBirthDate returns the patients whose birth date satisfies the
	// parsed search parameter.
	FindByBirthDate(ctx context.Context, param fhir.DateParam) ([]entity.Patient, error)

	// Update replaces the stored record wholesale and returns the number of
	// rows affected, so callers can detect a record that vanished between
	// read and write.
	Update(ctx context.Context, patient *entity.Patient) (int64, error)

	// Delete removes the record physically and returns the number of rows
	// affected. Zero rows means there was nothing to delete.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
