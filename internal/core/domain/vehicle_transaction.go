package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a vehicle transaction as money in or money out.
type TransactionType string

const (
	Revenue TransactionType = "revenue"
	Expense TransactionType = "expense"
)

// VehicleTransaction is one revenue or expense entry against a vehicle.
// EmployeeID and InvoiceID are advisory back-references: they are checked for
// existence when supplied but do not block deleting the employee or invoice.
type VehicleTransaction struct {
	TransactionID   string          `json:"transactionID"`
	VehicleID       string          `json:"vehicleID"`
	TransactionType TransactionType `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transactionDate"`
	Month           string          `json:"month"` // YYYY-MM, derived from TransactionDate when absent
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	EmployeeID      *string         `json:"employeeID"`
	InvoiceID       *string         `json:"invoiceID"`

	AuditFields
}

// Validate checks the structural rules for a vehicle transaction: positive
// amount, a known type, and a date that is neither in the future nor more
// than twelve months in the past. The reference time is passed in so callers
// and tests agree on "now".
func (t *VehicleTransaction) Validate(now time.Time) error {
	if t.VehicleID == "" {
		return errors.New("vehicle ID is required")
	}
	if t.TransactionType != Revenue && t.TransactionType != Expense {
		return errors.New("transaction type must be revenue or expense")
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("amount must be positive")
	}
	if t.TransactionDate.After(now) {
		return errors.New("transaction date cannot be in the future")
	}
	if t.TransactionDate.Before(now.AddDate(-1, 0, 0)) {
		return errors.New("transaction date cannot be more than 12 months in the past")
	}
	return nil
}
