package usecase

import (
	"context"
	"errors"

	"patient-api/internal/converter"
	"patient-api/internal/delivery/dto"
	"patient-api/internal/domain/repository"
	"patient-api/internal/service"
	"patient-api/pkg/fhir"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound   = errors.New("patient not found")
	ErrPatientIDMismatch = errors.New("patient id does not match path id")
	ErrInvalidBirthDate  = errors.New("invalid birth date value")
	ErrUpdateConflict    = errors.New("patient update conflict")
)

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	List(ctx context.Context) ([]dto.PatientResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.PatientRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	SearchByBirthDate(ctx context.Context, raw string) ([]dto.PatientResponse, error)
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	cache       service.PatientCacheService
}

func NewPatientUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	cache service.PatientCacheService,
) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
		cache:       cache,
	}
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	patient, err := converter.PatientFromRequest(req)
	if err != nil {
		return nil, err
	}

	// Server assigns the identifier; any client-supplied value is discarded.
	patient.ID = uuid.New()

	if err := patient.Validate(); err != nil {
		return nil, err
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	cached, err := u.cache.Get(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to read patient cache: %+v", err)
	}
	if cached != nil {
		return converter.PatientToResponse(cached), nil
	}

	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if err := u.cache.Set(ctx, patient); err != nil {
		u.log.Warnf("Failed to cache patient: %+v", err)
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) List(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	return converter.PatientsToResponses(patients), nil
}

func (u *patientUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.PatientRequest) error {
	if req.ID != id {
		return ErrPatientIDMismatch
	}

	patient, err := converter.PatientFromRequest(req)
	if err != nil {
		return err
	}

	if err := patient.Validate(); err != nil {
		return err
	}

	rows, err := u.patientRepo.Update(ctx, patient)
	if err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return err
	}
	if rows == 0 {
		// The row was gone before the write landed. Re-check existence to
		// distinguish a concurrent delete from any other conflict.
		existing, err := u.patientRepo.FindByID(ctx, id)
		if err != nil {
			u.log.Warnf("Failed to re-check patient after update conflict: %+v", err)
			return err
		}
		if existing == nil {
			return ErrPatientNotFound
		}
		return ErrUpdateConflict
	}

	if err := u.cache.Invalidate(ctx, id); err != nil {
		u.log.Warnf("Failed to invalidate patient cache: %+v", err)
	}

	return nil
}

func (u *patientUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := u.patientRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrPatientNotFound
	}

	if err := u.cache.Invalidate(ctx, id); err != nil {
		u.log.Warnf("Failed to invalidate patient cache: %+v", err)
	}

	return nil
}

func (u *patientUsecase) SearchByBirthDate(ctx context.Context, raw string) ([]dto.PatientResponse, error) {
	param, err := fhir.ParseDateParam(raw)
	if err != nil {
		return nil, ErrInvalidBirthDate
	}

	patients, err := u.patientRepo.FindByBirthDate(ctx, param)
	if err != nil {
		u.log.Warnf("Failed to search patients by birth date: %+v", err)
		return nil, err
	}

	return converter.PatientsToResponses(patients), nil
}
