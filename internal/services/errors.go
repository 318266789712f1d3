package services

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrChildNotFound    = errors.New("child not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrNotSelectable    = errors.New("activity not selectable")
	ErrGuardianRequired = errors.New("guardian required")
)

// FieldError is used to indicate an error with a specific input field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err *ValidationError) Error() string {
	if err.Err == nil {
		return "invalid input"
	}
	return err.Err.Error()
}

// NotSelectableError is returned when adding an activity the child cannot
// pick. It matches ErrNotSelectable under errors.Is.
type NotSelectableError struct {
	ActivityID string
	Reason     string // conflict | blackout | genderMismatch | notVisible
}

func (err *NotSelectableError) Error() string {
	return fmt.Sprintf("activity %s not selectable: %s", err.ActivityID, err.Reason)
}

func (err *NotSelectableError) Is(target error) bool {
	return target == ErrNotSelectable
}
