package errors

import "errors"

// ValidationError covers missing or malformed input detected before any
// mutation takes place.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

// Absence and foreign ownership are deliberately indistinguishable: a lookup
// of another user's entity reports not-found, never forbidden.
var (
	ErrCategoryNotFound  = errors.New("category not found or does not belong to you")
	ErrOperationNotFound = errors.New("operation not found or does not belong to you")
	ErrBalanceNotFound   = errors.New("no balance found for this user")
	ErrCategoryInUse     = errors.New("cannot delete category, it is used in operations")
	ErrUnknownCategory   = NewValidationError("category does not exist for this type")
)

// StorageError wraps a durable-state failure so handlers can report it
// instead of pretending the mutation persisted.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return "storage unavailable: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(err error) error {
	return &StorageError{Err: err}
}

func IsStorageError(err error) bool {
	var storageError *StorageError
	return errors.As(err, &storageError)
}
