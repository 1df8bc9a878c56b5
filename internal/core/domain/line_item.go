package domain

import "github.com/shopspring/decimal"

// LineItem is one row of a financial document: a quantity times a unit price
// with its own tax percentage. The derived fields (GrossAmount, TaxAmount,
// LineTotal, SerialNumber) are always recomputed server-side and never
// trusted from input.
type LineItem struct {
	LineItemID  string  `json:"lineItemID"`
	DocumentID  string  `json:"documentID"`
	VehicleID   *string `json:"vehicleID"` // optional reference to the rented vehicle
	Description string  `json:"description"`
	RentalBasis string  `json:"rentalBasis"` // e.g. daily, weekly, monthly

	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TaxPercent decimal.Decimal `json:"taxPercent"`

	// Derived, recomputed on every write.
	SerialNumber int             `json:"serialNumber"` // 1-based position within the document
	GrossAmount  decimal.Decimal `json:"grossAmount"`  // quantity x unitPrice
	TaxAmount    decimal.Decimal `json:"taxAmount"`    // grossAmount x taxPercent / 100
	LineTotal    decimal.Decimal `json:"lineTotal"`    // grossAmount + taxAmount
}

// DocumentTotals holds the document-level sums over a set of line items.
// Stored totals are not rounded; currency rounding is a display concern.
type DocumentTotals struct {
	SubTotal decimal.Decimal `json:"subTotal"` // sum of gross amounts
	TotalTax decimal.Decimal `json:"totalTax"` // sum of tax amounts
	Total    decimal.Decimal `json:"total"`    // subTotal + totalTax
}
