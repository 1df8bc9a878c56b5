package domain_test

import (
	"testing"

	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInvoice_Outstanding(t *testing.T) {
	tests := []struct {
		name    string
		invoice domain.Invoice
		want    decimal.Decimal
	}{
		{
			name: "nothing received",
			invoice: domain.Invoice{
				Totals: domain.DocumentTotals{Total: decimal.NewFromInt(1100)},
			},
			want: decimal.NewFromInt(1100),
		},
		{
			name: "partially paid",
			invoice: domain.Invoice{
				Totals:         domain.DocumentTotals{Total: decimal.NewFromInt(1100)},
				AmountReceived: decimal.NewFromInt(400),
			},
			want: decimal.NewFromInt(700),
		},
		{
			name: "fully paid",
			invoice: domain.Invoice{
				Totals:         domain.DocumentTotals{Total: decimal.NewFromInt(1100)},
				AmountReceived: decimal.NewFromInt(1100),
			},
			want: decimal.Zero,
		},
		{
			name: "overpaid goes negative",
			invoice: domain.Invoice{
				Totals:         domain.DocumentTotals{Total: decimal.NewFromInt(500)},
				AmountReceived: decimal.NewFromInt(600),
			},
			want: decimal.NewFromInt(-100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.invoice.Outstanding()
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}
