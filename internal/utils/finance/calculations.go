package finance

import (
	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeTotals derives the per-item amounts and the document-level totals
// for a set of line items. It returns a fresh slice and leaves the input
// untouched, so the same item list can be recomputed any number of times
// with identical results.
//
// Per item: gross = quantity x unitPrice, tax = gross x taxPercent / 100,
// lineTotal = gross + tax, serialNumber = 1-based position. The calculator
// does not reject negative quantities or prices and does not clamp the tax
// percentage; structural validation is the caller's concern. No rounding is
// applied: stored totals are exact, and currency rounding happens at
// display or export time.
func ComputeTotals(items []domain.LineItem) ([]domain.LineItem, domain.DocumentTotals) {
	computed := make([]domain.LineItem, len(items))
	totals := domain.DocumentTotals{
		SubTotal: decimal.Zero,
		TotalTax: decimal.Zero,
		Total:    decimal.Zero,
	}

	for i, item := range items {
		gross := item.Quantity.Mul(item.UnitPrice)
		tax := gross.Mul(item.TaxPercent).Div(hundred)

		item.GrossAmount = gross
		item.TaxAmount = tax
		item.LineTotal = gross.Add(tax)
		item.SerialNumber = i + 1
		computed[i] = item

		totals.SubTotal = totals.SubTotal.Add(gross)
		totals.TotalTax = totals.TotalTax.Add(tax)
	}

	totals.Total = totals.SubTotal.Add(totals.TotalTax)
	return computed, totals
}
