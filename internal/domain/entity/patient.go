package entity

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Gender is the administrative gender of a patient. The value set is closed;
// anything outside it is rejected at the boundary.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderOther   Gender = "other"
	GenderUnknown Gender = "unknown"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderUnknown:
		return true
	}
	return false
}

// Patient is the stored patient record. The ID is assigned server-side on
// creation and never changes afterwards.
type Patient struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Family     string    `gorm:"type:varchar(255);not null" json:"family"`
	GivenName  string    `gorm:"type:varchar(255)" json:"givenName,omitempty"`
	MiddleName string    `gorm:"type:varchar(255)" json:"middleName,omitempty"`
	BirthDate  time.Time `gorm:"type:date;not null" json:"birthDate"`
	Gender     Gender    `gorm:"type:varchar(10);not null" json:"gender"`
	Active     bool      `json:"active"`
}

func (Patient) TableName() string {
	return "patients"
}

// ValidationError reports invariant violations keyed by field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// Validate checks the record invariants: family must be non-empty, birthDate
// present and gender one of the enumerated values. Returns a *ValidationError
// naming every failing field, or nil.
func (p *Patient) Validate() error {
	fields := map[string]string{}

	if strings.TrimSpace(p.Family) == "" {
		fields["family"] = "family is required"
	}
	if p.BirthDate.IsZero() {
		fields["birthDate"] = "birthDate is required"
	}
	if !p.Gender.Valid() {
		fields["gender"] = "gender must be one of male, female, other, unknown"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
