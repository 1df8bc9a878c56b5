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

type PgxPayslipRepository struct {
	BaseRepository
}

// newPgxPayslipRepository creates a new repository for payslip data.
func newPgxPayslipRepository(pool *pgxpool.Pool) portsrepo.PayslipRepository {
	return &PgxPayslipRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PayslipRepository = (*PgxPayslipRepository)(nil)

func (r *PgxPayslipRepository) IsNumberTaken(ctx context.Context, number, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM payslips WHERE number = $1 AND payslip_id <> $2);`
	var taken bool
	if err := r.Pool.QueryRow(ctx, query, number, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("failed to check payslip number %s: %w", number, err)
	}
	return taken, nil
}

func (r *PgxPayslipRepository) SavePayslip(ctx context.Context, payslip domain.Payslip) error {
	query := `
		INSERT INTO payslips (payslip_id, number, employee_id, period, basic_salary, allowances,
			deductions, net_pay, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		payslip.PayslipID,
		payslip.Number,
		payslip.EmployeeID,
		payslip.Period,
		payslip.BasicSalary,
		payslip.Allowances,
		payslip.Deductions,
		payslip.NetPay,
		payslip.Notes,
		payslip.CreatedAt,
		payslip.CreatedBy,
		payslip.LastUpdatedAt,
		payslip.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "Payslip", payslip.Number)
	}
	return nil
}

func (r *PgxPayslipRepository) FindPayslipByID(ctx context.Context, payslipID string) (*domain.Payslip, error) {
	query := `
		SELECT payslip_id, number, employee_id, period, basic_salary, allowances, deductions,
			net_pay, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM payslips
		WHERE payslip_id = $1;
	`
	payslip, err := scanPayslip(r.Pool.QueryRow(ctx, query, payslipID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payslip %s: %w", payslipID, err)
	}
	return payslip, nil
}

func (r *PgxPayslipRepository) ListPayslips(ctx context.Context, limit, offset int) ([]domain.Payslip, error) {
	query := `
		SELECT payslip_id, number, employee_id, period, basic_salary, allowances, deductions,
			net_pay, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM payslips
		ORDER BY period DESC, number
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query payslips: %w", err)
	}
	defer rows.Close()

	payslips := []domain.Payslip{}
	for rows.Next() {
		payslip, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, *payslip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payslips: %w", err)
	}
	return payslips, nil
}

func (r *PgxPayslipRepository) UpdatePayslip(ctx context.Context, payslip domain.Payslip) error {
	query := `
		UPDATE payslips
		SET number = $2, period = $3, basic_salary = $4, allowances = $5, deductions = $6,
			net_pay = $7, notes = $8, last_updated_at = $9, last_updated_by = $10
		WHERE payslip_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		payslip.PayslipID,
		payslip.Number,
		payslip.Period,
		payslip.BasicSalary,
		payslip.Allowances,
		payslip.Deductions,
		payslip.NetPay,
		payslip.Notes,
		payslip.LastUpdatedAt,
		payslip.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "Payslip", payslip.Number)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPayslipRepository) DeletePayslip(ctx context.Context, payslipID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM payslips WHERE payslip_id = $1;`, payslipID)
	if err != nil {
		return fmt.Errorf("failed to delete payslip %s: %w", payslipID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPayslipRepository) ListNumbersByEmployeeID(ctx context.Context, employeeID string) ([]string, error) {
	query := `SELECT number FROM payslips WHERE employee_id = $1 ORDER BY number;`
	rows, err := r.Pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payslips for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	numbers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (string, error) {
		var number string
		err := row.Scan(&number)
		return number, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payslip numbers: %w", err)
	}
	return numbers, nil
}

func scanPayslip(row pgx.Row) (*domain.Payslip, error) {
	var payslip domain.Payslip
	err := row.Scan(
		&payslip.PayslipID,
		&payslip.Number,
		&payslip.EmployeeID,
		&payslip.Period,
		&payslip.BasicSalary,
		&payslip.Allowances,
		&payslip.Deductions,
		&payslip.NetPay,
		&payslip.Notes,
		&payslip.CreatedAt,
		&payslip.CreatedBy,
		&payslip.LastUpdatedAt,
		&payslip.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &payslip, nil
}
