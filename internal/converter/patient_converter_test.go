package converter

import (
	"testing"
	"time"

	"patient-api/internal/delivery/dto"
	"patient-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPatientFromRequest_ParsesDateOnly(t *testing.T) {
	req := &dto.PatientRequest{
		Family:    "Doe",
		BirthDate: "1990-05-20",
		Gender:    "male",
	}

	patient, err := PatientFromRequest(req)
	assert.NoError(t, err)
	assert.True(t, patient.BirthDate.Equal(time.Date(1990, time.May, 20, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, entity.GenderMale, patient.Gender)
}

func TestPatientFromRequest_AcceptsDateTime(t *testing.T) {
	req := &dto.PatientRequest{
		Family:    "Doe",
		BirthDate: "1990-05-20T08:30:00Z",
		Gender:    "other",
	}

	patient, err := PatientFromRequest(req)
	assert.NoError(t, err)
	assert.Equal(t, 1990, patient.BirthDate.Year())
}

func TestPatientFromRequest_RejectsBadDate(t *testing.T) {
	req := &dto.PatientRequest{
		Family:    "Doe",
		BirthDate: "20-05-1990",
		Gender:    "male",
	}

	_, err := PatientFromRequest(req)
	vErr, ok := err.(*entity.ValidationError)
	assert.True(t, ok)
	assert.Contains(t, vErr.Fields, "birthDate")
}

func TestPatientToResponse_FormatsBirthDate(t *testing.T) {
	patient := &entity.Patient{
		ID:        uuid.New(),
		Family:    "Doe",
		BirthDate: time.Date(1990, time.May, 20, 8, 30, 0, 0, time.UTC),
		Gender:    entity.GenderFemale,
		Active:    true,
	}

	resp := PatientToResponse(patient)
	assert.Equal(t, "1990-05-20", resp.BirthDate)
	assert.Equal(t, "female", resp.Gender)
}

func TestPatientsToResponses_EmptyIsNotNil(t *testing.T) {
	assert.NotNil(t, PatientsToResponses(nil))
	assert.Len(t, PatientsToResponses([]entity.Patient{}), 0)
}
