package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerTotal ranks a customer by their total invoiced amount.
type CustomerTotal struct {
	CustomerID   string          `json:"customerID"`
	CustomerName string          `json:"customerName"`
	InvoicedTotal decimal.Decimal `json:"invoicedTotal"`
}

// ActivityEntry is one row of the recent-activity feed.
type ActivityEntry struct {
	EntityType string    `json:"entityType"` // Quote, Invoice, Purchase Order
	Number     string    `json:"number"`
	Total      decimal.Decimal `json:"total"`
	OccurredAt time.Time `json:"occurredAt"`
}

// DashboardSummary is the cross-entity KPI view for the landing page. It is
// derived on every request; a failing sub-query degrades its section to
// empty rather than failing the page.
type DashboardSummary struct {
	Month              string          `json:"month"` // YYYY-MM the figures cover
	MonthInvoicedTotal decimal.Decimal `json:"monthInvoicedTotal"`
	MonthRevenue       decimal.Decimal `json:"monthRevenue"`
	MonthExpenses      decimal.Decimal `json:"monthExpenses"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
	TopCustomers       []CustomerTotal `json:"topCustomers"`
	RecentActivity     []ActivityEntry `json:"recentActivity"`
}
