package dto

import (
	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data needed to create an invoice. Totals
// are computed server-side; AmountReceived is the single payment field.
type CreateInvoiceRequest struct {
	Number          string            `json:"number" binding:"required"`
	InvoiceDate     string            `json:"invoiceDate" binding:"required,datetime=2006-01-02"`
	DueDate         *string           `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	CustomerID      *string           `json:"customerID"`
	QuoteID         *string           `json:"quoteID"`
	PurchaseOrderID *string           `json:"purchaseOrderID"`
	AmountReceived  decimal.Decimal   `json:"amountReceived"`
	Notes           string            `json:"notes"`
	Items           []LineItemRequest `json:"items" binding:"dive"`
}

// UpdateInvoiceRequest defines a partial invoice update. Nil Items leaves the
// existing line items untouched; non-nil Items replaces the whole set.
type UpdateInvoiceRequest struct {
	Number          *string            `json:"number"`
	InvoiceDate     *string            `json:"invoiceDate" binding:"omitempty,datetime=2006-01-02"`
	DueDate         *string            `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	CustomerID      *string            `json:"customerID"`
	QuoteID         *string            `json:"quoteID"`
	PurchaseOrderID *string            `json:"purchaseOrderID"`
	AmountReceived  *decimal.Decimal   `json:"amountReceived"`
	Notes           *string            `json:"notes"`
	Items           *[]LineItemRequest `json:"items" binding:"omitempty,dive"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID       string             `json:"invoiceID"`
	Number          string             `json:"number"`
	InvoiceDate     string             `json:"invoiceDate"`
	DueDate         *string            `json:"dueDate"`
	CustomerID      *string            `json:"customerID"`
	QuoteID         *string            `json:"quoteID"`
	PurchaseOrderID *string            `json:"purchaseOrderID"`
	AmountReceived  decimal.Decimal    `json:"amountReceived"`
	Outstanding     decimal.Decimal    `json:"outstanding"`
	Notes           string             `json:"notes"`
	Items           []LineItemResponse `json:"items"`
	SubTotal        decimal.Decimal    `json:"subTotal"`
	TotalTax        decimal.Decimal    `json:"totalTax"`
	Total           decimal.Decimal    `json:"total"`
	Audit           AuditResponse      `json:"audit"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:       inv.InvoiceID,
		Number:          inv.Number,
		InvoiceDate:     inv.InvoiceDate.Format("2006-01-02"),
		CustomerID:      inv.CustomerID,
		QuoteID:         inv.QuoteID,
		PurchaseOrderID: inv.PurchaseOrderID,
		AmountReceived:  inv.AmountReceived,
		Outstanding:     inv.Outstanding(),
		Notes:           inv.Notes,
		Items:           ToLineItemResponses(inv.Items),
		SubTotal:        inv.Totals.SubTotal,
		TotalTax:        inv.Totals.TotalTax,
		Total:           inv.Totals.Total,
		Audit:           ToAuditResponse(inv.AuditFields),
	}
	if inv.DueDate != nil {
		s := inv.DueDate.Format("2006-01-02")
		resp.DueDate = &s
	}
	return resp
}

// ToListInvoiceResponse converts a slice of invoices to response DTOs.
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}
