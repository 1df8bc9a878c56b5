package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	portsrepo "github.com/roadstead/vehicle_rental_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for the dashboard's
// aggregate queries.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) InvoicedTotalForMonth(ctx context.Context, month string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total), 0)
		FROM invoices
		WHERE to_char(invoice_date, 'YYYY-MM') = $1;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, month).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum invoiced total for %s: %w", month, err)
	}
	return total, nil
}

func (r *PgxReportingRepository) TransactionTotalsForMonth(ctx context.Context, month string) (revenue, expenses decimal.Decimal, err error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'revenue'), 0),
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'expense'), 0)
		FROM vehicle_transactions
		WHERE month = $1;
	`
	if err := r.Pool.QueryRow(ctx, query, month).Scan(&revenue, &expenses); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum transaction totals for %s: %w", month, err)
	}
	return revenue, expenses, nil
}

func (r *PgxReportingRepository) OutstandingBalance(ctx context.Context) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(total - amount_received), 0) FROM invoices;`
	var outstanding decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query).Scan(&outstanding); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum outstanding balance: %w", err)
	}
	return outstanding, nil
}

func (r *PgxReportingRepository) TopCustomersByInvoicedTotal(ctx context.Context, limit int) ([]domain.CustomerTotal, error) {
	query := `
		SELECT c.customer_id, c.name, COALESCE(SUM(i.total), 0) AS invoiced_total
		FROM customers c
		JOIN invoices i ON i.customer_id = c.customer_id
		GROUP BY c.customer_id, c.name
		ORDER BY invoiced_total DESC, c.name
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top customers: %w", err)
	}
	defer rows.Close()

	totals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CustomerTotal, error) {
		var ct domain.CustomerTotal
		err := row.Scan(&ct.CustomerID, &ct.CustomerName, &ct.InvoicedTotal)
		return ct, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan top customers: %w", err)
	}
	return totals, nil
}

func (r *PgxReportingRepository) RecentActivity(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	query := `
		SELECT entity_type, number, total, occurred_at FROM (
			SELECT 'Quote' AS entity_type, number, total, created_at AS occurred_at FROM quotes
			UNION ALL
			SELECT 'Invoice', number, total, created_at FROM invoices
			UNION ALL
			SELECT 'Purchase Order', number, total, created_at FROM purchase_orders
		) docs
		ORDER BY occurred_at DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent activity: %w", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ActivityEntry, error) {
		var entry domain.ActivityEntry
		err := row.Scan(&entry.EntityType, &entry.Number, &entry.Total, &entry.OccurredAt)
		return entry, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan recent activity: %w", err)
	}
	return entries, nil
}
