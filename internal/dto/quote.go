package dto

import (
	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateQuoteRequest defines the data needed to create a quote. Totals are
// not accepted; they are computed server-side from the items.
type CreateQuoteRequest struct {
	Number     string            `json:"number" binding:"required"`
	QuoteDate  string            `json:"quoteDate" binding:"required,datetime=2006-01-02"`
	CustomerID *string           `json:"customerID"`
	ValidUntil *string           `json:"validUntil" binding:"omitempty,datetime=2006-01-02"`
	Notes      string            `json:"notes"`
	Items      []LineItemRequest `json:"items" binding:"dive"`
}

// UpdateQuoteRequest defines a partial quote update. Pointers distinguish
// "not provided, leave unchanged" from an explicit new value. A nil Items
// leaves the existing line items untouched; a non-nil Items (even empty)
// replaces the whole set.
type UpdateQuoteRequest struct {
	Number     *string            `json:"number"`
	QuoteDate  *string            `json:"quoteDate" binding:"omitempty,datetime=2006-01-02"`
	CustomerID *string            `json:"customerID"`
	ValidUntil *string            `json:"validUntil" binding:"omitempty,datetime=2006-01-02"`
	Notes      *string            `json:"notes"`
	Items      *[]LineItemRequest `json:"items" binding:"omitempty,dive"`
}

// QuoteResponse defines the data returned for a quote.
type QuoteResponse struct {
	QuoteID    string             `json:"quoteID"`
	Number     string             `json:"number"`
	QuoteDate  string             `json:"quoteDate"`
	CustomerID *string            `json:"customerID"`
	ValidUntil *string            `json:"validUntil"`
	Notes      string             `json:"notes"`
	Items      []LineItemResponse `json:"items"`
	SubTotal   decimal.Decimal    `json:"subTotal"`
	TotalTax   decimal.Decimal    `json:"totalTax"`
	Total      decimal.Decimal    `json:"total"`
	Audit      AuditResponse      `json:"audit"`
}

// ToQuoteResponse converts a domain.Quote to QuoteResponse.
func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	resp := QuoteResponse{
		QuoteID:    q.QuoteID,
		Number:     q.Number,
		QuoteDate:  q.QuoteDate.Format("2006-01-02"),
		CustomerID: q.CustomerID,
		Notes:      q.Notes,
		Items:      ToLineItemResponses(q.Items),
		SubTotal:   q.Totals.SubTotal,
		TotalTax:   q.Totals.TotalTax,
		Total:      q.Totals.Total,
		Audit:      ToAuditResponse(q.AuditFields),
	}
	if q.ValidUntil != nil {
		s := q.ValidUntil.Format("2006-01-02")
		resp.ValidUntil = &s
	}
	return resp
}

// ToListQuoteResponse converts a slice of quotes to response DTOs.
func ToListQuoteResponse(quotes []domain.Quote) []QuoteResponse {
	res := make([]QuoteResponse, len(quotes))
	for i := range quotes {
		res[i] = ToQuoteResponse(&quotes[i])
	}
	return res
}

// ListDocumentsParams defines query parameters shared by document listings.
type ListDocumentsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}
