package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/roadstead/vehicle_rental_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestTranslateWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   error
		passthrough bool
	}{
		{
			name:     "unique violation becomes duplicate key",
			err:      &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "quotes_number_key"},
			wantKind: apperrors.ErrDuplicate,
		},
		{
			name:     "foreign key violation becomes missing reference",
			err:      &pgconn.PgError{Code: pgForeignKeyViolation, Detail: "Key (customer_id)=(cust-1) is not present in table \"customers\"."},
			wantKind: apperrors.ErrMissingReference,
		},
		{
			name:     "wrapped unique violation is still unwrapped",
			err:      fmt.Errorf("failed to insert quote: %w", &pgconn.PgError{Code: pgUniqueViolation}),
			wantKind: apperrors.ErrDuplicate,
		},
		{
			name:        "check violation passes through untranslated",
			err:         &pgconn.PgError{Code: "23514", ConstraintName: "vehicle_transactions_amount_check"},
			passthrough: true,
		},
		{
			name:        "plain error passes through untranslated",
			err:         errors.New("connection reset"),
			passthrough: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateWriteError(tt.err, "Quote", "Q-001")
			if tt.passthrough {
				assert.Equal(t, tt.err, got)
				assert.NotErrorIs(t, got, apperrors.ErrDuplicate)
				assert.NotErrorIs(t, got, apperrors.ErrMissingReference)
				return
			}
			assert.ErrorIs(t, got, tt.wantKind)
		})
	}
}

func TestTranslateWriteError_DuplicateMessageNamesTheKey(t *testing.T) {
	got := translateWriteError(&pgconn.PgError{Code: pgUniqueViolation}, "Invoice", "INV-042")
	assert.ErrorContains(t, got, "INV-042")
}
