package repositories

import (
	"context"

	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository runs the aggregate queries behind the dashboard.
// Results are derived views; nothing here mutates state.
type ReportingRepository interface {
	// InvoicedTotalForMonth sums invoice totals for the given YYYY-MM month key.
	InvoicedTotalForMonth(ctx context.Context, month string) (decimal.Decimal, error)
	// TransactionTotalsForMonth sums vehicle transaction amounts for the month,
	// split into revenue and expenses.
	TransactionTotalsForMonth(ctx context.Context, month string) (revenue, expenses decimal.Decimal, err error)
	// OutstandingBalance sums total minus amount received over all invoices.
	OutstandingBalance(ctx context.Context) (decimal.Decimal, error)
	// TopCustomersByInvoicedTotal ranks customers by their invoiced total.
	TopCustomersByInvoicedTotal(ctx context.Context, limit int) ([]domain.CustomerTotal, error)
	// RecentActivity returns the latest documents across quotes, invoices and
	// purchase orders, newest first.
	RecentActivity(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
}
