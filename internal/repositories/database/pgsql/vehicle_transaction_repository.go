package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/roadstead/vehicle_rental_app/internal/apperrors"
	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	portsrepo "github.com/roadstead/vehicle_rental_app/internal/core/ports/repositories"
)

type PgxVehicleTransactionRepository struct {
	BaseRepository
}

// newPgxVehicleTransactionRepository creates a new repository for per-vehicle
// revenue and expense entries.
func newPgxVehicleTransactionRepository(pool *pgxpool.Pool) portsrepo.VehicleTransactionRepository {
	return &PgxVehicleTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.VehicleTransactionRepository = (*PgxVehicleTransactionRepository)(nil)

func (r *PgxVehicleTransactionRepository) SaveTransaction(ctx context.Context, txn domain.VehicleTransaction) error {
	query := `
		INSERT INTO vehicle_transactions (transaction_id, vehicle_id, transaction_type, amount,
			transaction_date, month, category, description, employee_id, invoice_id,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.VehicleID,
		string(txn.TransactionType),
		txn.Amount,
		txn.TransactionDate,
		txn.Month,
		txn.Category,
		txn.Description,
		txn.EmployeeID,
		txn.InvoiceID,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "Vehicle Transaction", txn.TransactionID)
	}
	return nil
}

func (r *PgxVehicleTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.VehicleTransaction, error) {
	query := `
		SELECT transaction_id, vehicle_id, transaction_type, amount, transaction_date, month,
			category, description, employee_id, invoice_id,
			created_at, created_by, last_updated_at, last_updated_by
		FROM vehicle_transactions
		WHERE transaction_id = $1;
	`
	txn, err := scanVehicleTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (r *PgxVehicleTransactionRepository) ListTransactionsByVehicleID(ctx context.Context, vehicleID string) ([]domain.VehicleTransaction, error) {
	query := `
		SELECT transaction_id, vehicle_id, transaction_type, amount, transaction_date, month,
			category, description, employee_id, invoice_id,
			created_at, created_by, last_updated_at, last_updated_by
		FROM vehicle_transactions
		WHERE vehicle_id = $1
		ORDER BY transaction_date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicle transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.VehicleTransaction{}
	for rows.Next() {
		txn, err := scanVehicleTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle transaction: %w", err)
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vehicle transactions: %w", err)
	}
	return txns, nil
}

func (r *PgxVehicleTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.VehicleTransaction) error {
	query := `
		UPDATE vehicle_transactions
		SET transaction_type = $2, amount = $3, transaction_date = $4, month = $5,
			category = $6, description = $7, employee_id = $8, invoice_id = $9,
			last_updated_at = $10, last_updated_by = $11
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		string(txn.TransactionType),
		txn.Amount,
		txn.TransactionDate,
		txn.Month,
		txn.Category,
		txn.Description,
		txn.EmployeeID,
		txn.InvoiceID,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "Vehicle Transaction", txn.TransactionID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVehicleTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM vehicle_transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanVehicleTransaction(row pgx.Row) (*domain.VehicleTransaction, error) {
	var txn domain.VehicleTransaction
	var txnType string
	err := row.Scan(
		&txn.TransactionID,
		&txn.VehicleID,
		&txnType,
		&txn.Amount,
		&txn.TransactionDate,
		&txn.Month,
		&txn.Category,
		&txn.Description,
		&txn.EmployeeID,
		&txn.InvoiceID,
		&txn.CreatedAt,
		&txn.CreatedBy,
		&txn.LastUpdatedAt,
		&txn.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	txn.TransactionType = domain.TransactionType(txnType)
	return &txn, nil
}
