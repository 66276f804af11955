package dto

import (
	"github.com/google/uuid"
)

// PatientRequest is the create/update payload. The id is ignored on create
// (the server assigns its own) and must match the path id on update.
type PatientRequest struct {
	ID         uuid.UUID `json:"id"`
	Family     string    `json:"family" validate:"required"`
	GivenName  string    `json:"givenName"`
	MiddleName string    `json:"middleName"`
	BirthDate  string    `json:"birthDate" validate:"required"`
	Gender     string    `json:"gender" validate:"required,oneof=male female other unknown"`
	Active     bool      `json:"active"`
}

// PatientResponse is the wire shape of a stored patient.
type PatientResponse struct {
	ID         uuid.UUID `json:"id"`
	Family     string    `json:"family"`
	GivenName  string    `json:"givenName,omitempty"`
	MiddleName string    `json:"middleName,omitempty"`
	BirthDate  string    `json:"birthDate"`
	Gender     string    `json:"gender"`
	Active     bool      `json:"active"`
}
