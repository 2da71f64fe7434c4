package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound -> the requested record does not exist
	ErrNotFound = errors.New("record not found")
	// ErrStaleRecord -> the record changed between read and write
	ErrStaleRecord = errors.New("record was modified by another request")
)

// ErrIDMismatch -> path id and body id disagree on a replace
var ErrIDMismatch = &ValidationError{"record id does not match the requested id"}

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConstraintError wraps a data-integrity failure reported by the database
// (foreign key or unique violation).
type ConstraintError struct {
	Err error
}

func (e *ConstraintError) Error() string {
	return "data integrity constraint violated: " + e.Err.Error()
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// translateStorageError maps raw GORM/driver errors into the service error
// taxonomy. Anything unrecognized passes through untouched and ends up as a
// generic server error at the transport.
func translateStorageError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrDuplicatedKey):
		return &ConstraintError{Err: err}
	}
	// Drivers without error translation report FK failures as plain text.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "foreign key constraint") {
		return &ConstraintError{Err: err}
	}
	return err
}
