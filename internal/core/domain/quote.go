package domain

import "time"

// Quote is a priced rental offer to a customer. Its totals are always the
// sums over the current line items, never independently edited.
type Quote struct {
	QuoteID    string    `json:"quoteID"`
	Number     string    `json:"number"` // natural key, unique among quotes
	QuoteDate  time.Time `json:"quoteDate"`
	CustomerID *string   `json:"customerID"`
	ValidUntil *time.Time `json:"validUntil"`
	Notes      string    `json:"notes"`

	Items  []LineItem     `json:"items"`
	Totals DocumentTotals `json:"totals"`

	AuditFields
}
