package dto

import (
	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVehicleTransactionRequest defines one revenue or expense entry for a
// vehicle. Month is optional; when absent it is derived from the date.
type CreateVehicleTransactionRequest struct {
	VehicleID       string          `json:"vehicleID" binding:"required"`
	TransactionType string          `json:"transactionType" binding:"required,oneof=revenue expense"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	TransactionDate string          `json:"transactionDate" binding:"required,datetime=2006-01-02"`
	Month           string          `json:"month" binding:"omitempty,monthkey"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	EmployeeID      *string         `json:"employeeID"`
	InvoiceID       *string         `json:"invoiceID"`
}

// UpdateVehicleTransactionRequest defines a partial transaction update.
type UpdateVehicleTransactionRequest struct {
	TransactionType *string          `json:"transactionType" binding:"omitempty,oneof=revenue expense"`
	Amount          *decimal.Decimal `json:"amount"`
	TransactionDate *string          `json:"transactionDate" binding:"omitempty,datetime=2006-01-02"`
	Month           *string          `json:"month" binding:"omitempty,monthkey"`
	Category        *string          `json:"category"`
	Description     *string          `json:"description"`
	EmployeeID      *string          `json:"employeeID"`
	InvoiceID       *string          `json:"invoiceID"`
}

// VehicleTransactionResponse defines the data returned for a transaction.
type VehicleTransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	VehicleID       string          `json:"vehicleID"`
	TransactionType string          `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate string          `json:"transactionDate"`
	Month           string          `json:"month"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	EmployeeID      *string         `json:"employeeID"`
	InvoiceID       *string         `json:"invoiceID"`
	Audit           AuditResponse   `json:"audit"`
}

// ToVehicleTransactionResponse converts a domain.VehicleTransaction to its DTO.
func ToVehicleTransactionResponse(t *domain.VehicleTransaction) VehicleTransactionResponse {
	return VehicleTransactionResponse{
		TransactionID:   t.TransactionID,
		VehicleID:       t.VehicleID,
		TransactionType: string(t.TransactionType),
		Amount:          t.Amount,
		TransactionDate: t.TransactionDate.Format("2006-01-02"),
		Month:           t.Month,
		Category:        t.Category,
		Description:     t.Description,
		EmployeeID:      t.EmployeeID,
		InvoiceID:       t.InvoiceID,
		Audit:           ToAuditResponse(t.AuditFields),
	}
}

// ToListVehicleTransactionResponse converts a slice of transactions to DTOs.
func ToListVehicleTransactionResponse(txns []domain.VehicleTransaction) []VehicleTransactionResponse {
	res := make([]VehicleTransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToVehicleTransactionResponse(&txns[i])
	}
	return res
}
