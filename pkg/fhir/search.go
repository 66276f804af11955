package fhir

import (
	"errors"
	"strings"
	"time"
)

// Prefix is a FHIR search prefix for ordered values.
type Prefix string

const (
	PrefixEq Prefix = "eq"
	PrefixNe Prefix = "ne"
	PrefixGt Prefix = "gt"
	PrefixLt Prefix = "lt"
	PrefixGe Prefix = "ge"
	PrefixLe Prefix = "le"
)

var ErrInvalidDate = errors.New("invalid date value")

// DateParam is a parsed date search parameter: the comparison prefix and
// the date value it applies to.
type DateParam struct {
	Prefix Prefix
	Value  time.Time
}

// dateFormats are tried in order when parsing the date part of a search value.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDateParam parses a raw search value into a DateParam.
// Examples: "gt2024-01-01" -> (gt, 2024-01-01), "2024-01-01" -> (eq, 2024-01-01).
// A value without a recognized prefix defaults to eq; a value whose date part
// does not parse returns ErrInvalidDate.
func ParseDateParam(raw string) (DateParam, error) {
	prefix := PrefixEq
	datePart := raw

	if len(raw) >= 2 {
		switch p := Prefix(strings.ToLower(raw[:2])); p {
		case PrefixEq, PrefixNe, PrefixGt, PrefixLt, PrefixGe, PrefixLe:
			prefix = p
			datePart = raw[2:]
		}
	}

	for _, f := range dateFormats {
		if t, err := time.Parse(f, datePart); err == nil {
			return DateParam{Prefix: prefix, Value: t}, nil
		}
	}

	return DateParam{}, ErrInvalidDate
}

// Matches reports whether a stored birth date satisfies the parameter.
// eq and ne compare at date granularity: the stored value is truncated to
// its day and compared against the truncated query date. The ordering
// prefixes compare the stored day start against the full query instant,
// including any time-of-day the caller supplied.
func (p DateParam) Matches(birthDate time.Time) bool {
	stored := TruncateToDay(birthDate)

	switch p.Prefix {
	case PrefixNe:
		return !stored.Equal(TruncateToDay(p.Value))
	case PrefixGt:
		return stored.After(p.Value)
	case PrefixLt:
		return stored.Before(p.Value)
	case PrefixGe:
		return !stored.Before(p.Value)
	case PrefixLe:
		return !stored.After(p.Value)
	default:
		return stored.Equal(TruncateToDay(p.Value))
	}
}

// TruncateToDay drops the time-of-day component.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
