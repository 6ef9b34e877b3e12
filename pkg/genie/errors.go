package genie

import (
	"errors"
	"strings"
)

var (
	// ErrMissingInformation is returned when a required field is empty.
	ErrMissingInformation = errors.New("missing information")
	// ErrUnknownPlatform is returned for platforms outside the supported set.
	ErrUnknownPlatform = errors.New("unknown platform")
	// ErrUnknownQueryType is returned for query types outside the supported set.
	ErrUnknownQueryType = errors.New("unknown query type")
	// ErrInvalidRange is returned by strict range parsing.
	ErrInvalidRange = errors.New("invalid range")
)

// MissingInformationMessage is the user-facing text for ErrMissingInformation.
const MissingInformationMessage = "Please fill in all fields to generate your query or formula."

// Field names reported by MissingFieldsError.
const (
	FieldTable   = "table"
	FieldColumn  = "column"
	FieldPattern = "pattern"
)

// MissingFieldsError lists the empty required fields in form order.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing information: " + strings.Join(e.Fields, ", ") + " required"
}

// Is makes errors.Is(err, ErrMissingInformation) hold.
func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingInformation
}
