package dto

import (
	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemRequest carries one line item as submitted by the client. Derived
// amounts are never accepted from input; the server recomputes them.
// Quantity, UnitPrice and TaxPercent default to zero when absent.
type LineItemRequest struct {
	VehicleID   *string         `json:"vehicleID"`
	Description string          `json:"description"`
	RentalBasis string          `json:"rentalBasis"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxPercent  decimal.Decimal `json:"taxPercent"`
}

// ToDomainLineItems converts submitted line items into domain items ready for
// the calculator. Derived fields stay zero until computed.
func ToDomainLineItems(items []LineItemRequest) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	for i, item := range items {
		out[i] = domain.LineItem{
			VehicleID:   item.VehicleID,
			Description: item.Description,
			RentalBasis: item.RentalBasis,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxPercent:  item.TaxPercent,
		}
	}
	return out
}

// LineItemResponse mirrors domain.LineItem for API responses.
type LineItemResponse struct {
	LineItemID   string          `json:"lineItemID"`
	VehicleID    *string         `json:"vehicleID"`
	Description  string          `json:"description"`
	RentalBasis  string          `json:"rentalBasis"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TaxPercent   decimal.Decimal `json:"taxPercent"`
	SerialNumber int             `json:"serialNumber"`
	GrossAmount  decimal.Decimal `json:"grossAmount"`
	TaxAmount    decimal.Decimal `json:"taxAmount"`
	LineTotal    decimal.Decimal `json:"lineTotal"`
}

// ToLineItemResponses converts domain line items to response DTOs.
func ToLineItemResponses(items []domain.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, len(items))
	for i, item := range items {
		out[i] = LineItemResponse{
			LineItemID:   item.LineItemID,
			VehicleID:    item.VehicleID,
			Description:  item.Description,
			RentalBasis:  item.RentalBasis,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			TaxPercent:   item.TaxPercent,
			SerialNumber: item.SerialNumber,
			GrossAmount:  item.GrossAmount,
			TaxAmount:    item.TaxAmount,
			LineTotal:    item.LineTotal,
		}
	}
	return out
}
