package apperrors_test

import (
	"errors"
	"testing"

	"github.com/roadstead/vehicle_rental_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestBlockedDeleteError_SingleReference(t *testing.T) {
	err := apperrors.NewBlockedDeleteError("Vehicle", []apperrors.Reference{
		{Type: "Quote", Number: "Q-2025-001"},
	})

	assert.Equal(t, "Cannot delete Vehicle as it is referenced in Quote Q-2025-001", err.Error())
	assert.True(t, errors.Is(err, apperrors.ErrBlockedDelete))
}

func TestBlockedDeleteError_MultipleReferences(t *testing.T) {
	err := apperrors.NewBlockedDeleteError("Quote", []apperrors.Reference{
		{Type: "Invoice", Number: "INV-001"},
		{Type: "Invoice", Number: "INV-002"},
	})

	expected := "Cannot delete Quote as it is referenced in:\n- Invoice INV-001\n- Invoice INV-002"
	assert.Equal(t, expected, err.Error())
	assert.True(t, errors.Is(err, apperrors.ErrBlockedDelete))
}

func TestDuplicateKeyError(t *testing.T) {
	err := apperrors.NewDuplicateKeyError("Invoice", "INV-042")

	assert.True(t, errors.Is(err, apperrors.ErrDuplicate))
	assert.Contains(t, err.Error(), "INV-042")
}

func TestMissingReferenceError(t *testing.T) {
	err := apperrors.NewMissingReferenceError("Customer", "abc-123")

	assert.True(t, errors.Is(err, apperrors.ErrMissingReference))
	assert.Contains(t, err.Error(), "Customer")
	assert.Contains(t, err.Error(), "abc-123")
}

func TestValidationError(t *testing.T) {
	err := apperrors.NewValidationError("amount must be positive")

	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Equal(t, "amount must be positive", err.Error())
}

func TestNotFoundError(t *testing.T) {
	err := apperrors.NewNotFoundError("quote not found")

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestErrorKindsAreDistinct(t *testing.T) {
	dup := apperrors.NewDuplicateKeyError("Quote", "Q-1")
	missing := apperrors.NewMissingReferenceError("Vehicle", "v-1")
	blocked := apperrors.NewBlockedDeleteError("Quote", []apperrors.Reference{{Type: "Invoice", Number: "I-1"}})

	assert.False(t, errors.Is(dup, apperrors.ErrMissingReference))
	assert.False(t, errors.Is(dup, apperrors.ErrBlockedDelete))
	assert.False(t, errors.Is(missing, apperrors.ErrDuplicate))
	assert.False(t, errors.Is(blocked, apperrors.ErrDuplicate))
}
