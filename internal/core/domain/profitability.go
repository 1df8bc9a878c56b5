package domain

import "github.com/shopspring/decimal"

// MonthlySummary is the rollup of one vehicle's transactions for one month key.
type MonthlySummary struct {
	Month            string          `json:"month"` // YYYY-MM
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	Profit           decimal.Decimal `json:"profit"`
	TransactionCount int             `json:"transactionCount"`
}

// ProfitabilitySummary is the derived, never-persisted profitability view of
// one vehicle. It is fully recomputed from the vehicle's transactions on
// every request. CurrentMonth and LastMonth are nil when no transactions
// exist for the respective calendar month; they are never zero-filled.
type ProfitabilitySummary struct {
	VehicleID string           `json:"vehicleID"`
	Months    []MonthlySummary `json:"months"` // ascending by month key

	AllTimeRevenue  decimal.Decimal `json:"allTimeRevenue"`
	AllTimeExpenses decimal.Decimal `json:"allTimeExpenses"`
	AllTimeProfit   decimal.Decimal `json:"allTimeProfit"`

	CurrentMonth *MonthlySummary `json:"currentMonth"`
	LastMonth    *MonthlySummary `json:"lastMonth"`
}
