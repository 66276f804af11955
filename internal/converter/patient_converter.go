package converter

import (
	"time"

	"patient-api/internal/delivery/dto"
	"patient-api/internal/domain/entity"
)

// birthDateFormats accepted on input; responses always use the date-only form.
var birthDateFormats = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// PatientFromRequest builds a Patient entity from the request payload.
// A birthDate that parses in none of the accepted formats is reported as a
// *entity.ValidationError.
func PatientFromRequest(req *dto.PatientRequest) (*entity.Patient, error) {
	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, &entity.ValidationError{Fields: map[string]string{
			"birthDate": "birthDate must be a valid date",
		}}
	}

	return &entity.Patient{
		ID:         req.ID,
		Family:     req.Family,
		GivenName:  req.GivenName,
		MiddleName: req.MiddleName,
		BirthDate:  birthDate,
		Gender:     entity.Gender(req.Gender),
		Active:     req.Active,
	}, nil
}

func parseBirthDate(raw string) (time.Time, error) {
	var err error
	for _, f := range birthDateFormats {
		var t time.Time
		if t, err = time.Parse(f, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// PatientToResponse converts a Patient entity to its response DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:         patient.ID,
		Family:     patient.Family,
		GivenName:  patient.GivenName,
		MiddleName: patient.MiddleName,
		BirthDate:  patient.BirthDate.Format("2006-01-02"),
		Gender:     string(patient.Gender),
		Active:     patient.Active,
	}
}

// PatientsToResponses converts a slice of entities; it never returns nil so
// an empty collection still encodes as a JSON array.
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return responses
}
