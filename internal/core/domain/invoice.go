package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice bills a customer for rentals. It may cite the quote it was raised
// from; deleting that quote is blocked while the invoice exists.
type Invoice struct {
	InvoiceID       string    `json:"invoiceID"`
	Number          string    `json:"number"` // natural key, unique among invoices
	InvoiceDate     time.Time `json:"invoiceDate"`
	DueDate         *time.Time `json:"dueDate"`
	CustomerID      *string   `json:"customerID"`
	QuoteID         *string   `json:"quoteID"`
	PurchaseOrderID *string   `json:"purchaseOrderID"`
	Notes           string    `json:"notes"`

	// Single received-amount field; partial-payment reconciliation beyond
	// this is out of scope.
	AmountReceived decimal.Decimal `json:"amountReceived"`

	Items  []LineItem     `json:"items"`
	Totals DocumentTotals `json:"totals"`

	AuditFields
}

// Outstanding returns the unpaid balance on the invoice.
func (inv *Invoice) Outstanding() decimal.Decimal {
	return inv.Totals.Total.Sub(inv.AmountReceived)
}
