package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that a natural key (document number, vehicle number)
// is already taken by another record.
var ErrDuplicate = errors.New("resource already exists")

// ErrMissingReference indicates that a supplied foreign key does not resolve
// to an existing record.
var ErrMissingReference = errors.New("referenced resource does not exist")

// ErrInvalidCredentials indicates a failed login attempt. The message is
// deliberately identical for unknown emails and wrong passwords.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrBlockedDelete indicates that a delete was refused because dependent
// records still reference the entity.
var ErrBlockedDelete = errors.New("delete blocked by existing references")

// AppError wraps an underlying error with an HTTP-ish status code and a
// message safe to log. Repositories use it for unclassified storage failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given error.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that satisfies errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// ValidationError reports a structural problem with submitted data.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

// DuplicateKeyError reports a natural-key uniqueness violation.
type DuplicateKeyError struct {
	Entity string
	Value  string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s number %q already exists", e.Entity, e.Value)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicate
}

// NewDuplicateKeyError creates a DuplicateKeyError for the given entity and value.
func NewDuplicateKeyError(entity, value string) *DuplicateKeyError {
	return &DuplicateKeyError{Entity: entity, Value: value}
}

// MissingReferenceError reports a foreign key that does not resolve.
type MissingReferenceError struct {
	Entity string
	ID     string
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("%s with ID %q does not exist", e.Entity, e.ID)
}

func (e *MissingReferenceError) Is(target error) bool {
	return target == ErrMissingReference
}

// NewMissingReferenceError creates a MissingReferenceError for the given entity and id.
func NewMissingReferenceError(entity, id string) *MissingReferenceError {
	return &MissingReferenceError{Entity: entity, ID: id}
}

// Reference identifies a record that blocks a delete, by its display number
// rather than its internal id.
type Reference struct {
	Type   string
	Number string
}

// BlockedDeleteError reports a delete refused because other records still
// reference the entity.
type BlockedDeleteError struct {
	Entity     string
	References []Reference
}

// Error renders the shared blocked-delete message. A single reference is
// reported inline; multiple references become a bulleted list.
func (e *BlockedDeleteError) Error() string {
	if len(e.References) == 1 {
		ref := e.References[0]
		return fmt.Sprintf("Cannot delete %s as it is referenced in %s %s", e.Entity, ref.Type, ref.Number)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Cannot delete %s as it is referenced in:", e.Entity)
	for _, ref := range e.References {
		fmt.Fprintf(&b, "\n- %s %s", ref.Type, ref.Number)
	}
	return b.String()
}

func (e *BlockedDeleteError) Is(target error) bool {
	return target == ErrBlockedDelete
}

// NewBlockedDeleteError creates a BlockedDeleteError for the given entity and
// referencing records.
func NewBlockedDeleteError(entity string, refs []Reference) *BlockedDeleteError {
	return &BlockedDeleteError{Entity: entity, References: refs}
}
