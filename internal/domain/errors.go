package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrValidation indicates a field value failed its format check.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidFormat indicates a command is missing required prefixes or has a bad shape.
	ErrInvalidFormat = errors.New("invalid command format")
	// ErrMissingArguments indicates an edit command with nothing to change.
	ErrMissingArguments = errors.New("missing arguments")
	// ErrNotFound indicates a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate indicates an insert would clash with an existing entity.
	ErrDuplicate = errors.New("already exists")
	// ErrPersistence indicates the persisted address book could not be loaded or saved.
	ErrPersistence = errors.New("persistence error")
)

type (
	// ValidationError carries the constraint message of the offending field.
	ValidationError struct {
		Field   string
		Message string
	}

	// FormatError carries the usage string of the command that failed to parse.
	// Missing marks an edit command that named no field to change.
	FormatError struct {
		Message string
		Usage   string
		Missing bool
	}

	// NotFoundError indicates a referenced ID does not exist in the store.
	NotFoundError struct {
		Message string
	}

	// DuplicateError indicates a weak-identity clash on insert or edit.
	DuplicateError struct {
		Message string
	}

	// PersistenceError aborts a load or save. Err is the underlying cause, if any.
	PersistenceError struct {
		Message string
		Err     error
	}
)

func (e *ValidationError) Error() string { return e.Message }
func (e *NotFoundError) Error() string   { return e.Message }
func (e *DuplicateError) Error() string  { return e.Message }

func (e *FormatError) Error() string {
	if e.Usage == "" {
		return e.Message
	}
	return e.Message + "\n" + e.Usage
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
func (e *NotFoundError) Is(target error) bool   { return target == ErrNotFound }
func (e *DuplicateError) Is(target error) bool  { return target == ErrDuplicate }
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// Is matches ErrMissingArguments for edit commands without fields and
// ErrInvalidFormat otherwise.
func (e *FormatError) Is(target error) bool {
	if e.Missing {
		return target == ErrMissingArguments
	}
	return target == ErrInvalidFormat
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Message formats shared by commands and storage.
const (
	MessageInvalidFormat    = "Invalid command format!"
	MessageMissingArguments = "Missing arguments! At least one field to edit must be provided."
	MessageUnknownCommand   = "Unknown command"
	MessageUnknownFlag      = "Unknown flag for %s command"
)
