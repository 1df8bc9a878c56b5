package finance_test

import (
	"testing"

	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	"github.com/roadstead/vehicle_rental_app/internal/utils/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(qty, price, taxPct int64) domain.LineItem {
	return domain.LineItem{
		Quantity:   decimal.NewFromInt(qty),
		UnitPrice:  decimal.NewFromInt(price),
		TaxPercent: decimal.NewFromInt(taxPct),
	}
}

func TestComputeTotals_PerItemAmounts(t *testing.T) {
	items, totals := finance.ComputeTotals([]domain.LineItem{
		item(2, 100, 10), // gross 200, tax 20
		item(3, 50, 0),   // gross 150, tax 0
	})

	require.Len(t, items, 2)

	assert.True(t, items[0].GrossAmount.Equal(decimal.NewFromInt(200)))
	assert.True(t, items[0].TaxAmount.Equal(decimal.NewFromInt(20)))
	assert.True(t, items[0].LineTotal.Equal(decimal.NewFromInt(220)))

	assert.True(t, items[1].GrossAmount.Equal(decimal.NewFromInt(150)))
	assert.True(t, items[1].TaxAmount.Equal(decimal.Zero))
	assert.True(t, items[1].LineTotal.Equal(decimal.NewFromInt(150)))

	assert.True(t, totals.SubTotal.Equal(decimal.NewFromInt(350)))
	assert.True(t, totals.TotalTax.Equal(decimal.NewFromInt(20)))
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(370)))
}

func TestComputeTotals_TotalsAreSumOfItems(t *testing.T) {
	items, totals := finance.ComputeTotals([]domain.LineItem{
		item(1, 37, 18),
		item(4, 99, 5),
		item(2, 250, 12),
	})

	subTotal, totalTax := decimal.Zero, decimal.Zero
	for _, it := range items {
		subTotal = subTotal.Add(it.GrossAmount)
		totalTax = totalTax.Add(it.TaxAmount)
	}

	assert.True(t, totals.SubTotal.Equal(subTotal))
	assert.True(t, totals.TotalTax.Equal(totalTax))
	assert.True(t, totals.Total.Equal(subTotal.Add(totalTax)))
}

func TestComputeTotals_SerialNumbersAreOneBased(t *testing.T) {
	items, _ := finance.ComputeTotals([]domain.LineItem{
		item(1, 10, 0), item(1, 20, 0), item(1, 30, 0),
	})

	require.Len(t, items, 3)
	for i, it := range items {
		assert.Equal(t, i+1, it.SerialNumber)
	}
}

func TestComputeTotals_EmptyItems(t *testing.T) {
	items, totals := finance.ComputeTotals(nil)

	assert.Empty(t, items)
	assert.True(t, totals.SubTotal.Equal(decimal.Zero))
	assert.True(t, totals.TotalTax.Equal(decimal.Zero))
	assert.True(t, totals.Total.Equal(decimal.Zero))
}

func TestComputeTotals_Idempotent(t *testing.T) {
	input := []domain.LineItem{item(2, 100, 10), item(1, 75, 18)}

	first, firstTotals := finance.ComputeTotals(input)
	second, secondTotals := finance.ComputeTotals(first)

	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].GrossAmount.Equal(second[i].GrossAmount))
		assert.True(t, first[i].TaxAmount.Equal(second[i].TaxAmount))
		assert.True(t, first[i].LineTotal.Equal(second[i].LineTotal))
		assert.Equal(t, first[i].SerialNumber, second[i].SerialNumber)
	}
	assert.True(t, firstTotals.Total.Equal(secondTotals.Total))
}

func TestComputeTotals_InputUntouched(t *testing.T) {
	input := []domain.LineItem{item(2, 100, 10)}

	_, _ = finance.ComputeTotals(input)

	assert.True(t, input[0].GrossAmount.Equal(decimal.Zero))
	assert.True(t, input[0].LineTotal.Equal(decimal.Zero))
	assert.Equal(t, 0, input[0].SerialNumber)
}
