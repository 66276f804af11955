package repository

import (
	"context"
	"errors"

	"patient-api/internal/domain/entity"
	domainRepo "patient-api/internal/domain/repository"
	"patient-api/pkg/fhir"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := r.db.WithContext(ctx).Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByBirthDate(ctx context.Context, param fhir.DateParam) ([]entity.Patient, error) {
	query := r.db.WithContext(ctx)

	// The column is date-typed, so it already carries no time-of-day. eq/ne
	// compare against the truncated query date; the ordering prefixes keep
	// the full instant the caller supplied.
	switch param.Prefix {
	case fhir.PrefixNe:
		query = query.Where("birth_date <> ?", fhir.TruncateToDay(param.Value))
	case fhir.PrefixGt:
		query = query.Where("birth_date > ?", param.Value)
	case fhir.PrefixLt:
		query = query.Where("birth_date < ?", param.Value)
	case fhir.PrefixGe:
		query = query.Where("birth_date >= ?", param.Value)
	case fhir.PrefixLe:
		query = query.Where("birth_date <= ?", param.Value)
	default:
		query = query.Where("birth_date = ?", fhir.TruncateToDay(param.Value))
	}

	var patients []entity.Patient
	err := query.Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Patient{}).Where("id = ?", patient.ID).
		Select("*").Omit("id").Updates(patient)
	return result.RowsAffected, result.Error
}

func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}
