package domain_test

import (
	"testing"

	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPayslip_ComputeNetPay(t *testing.T) {
	tests := []struct {
		name    string
		payslip domain.Payslip
		want    decimal.Decimal
	}{
		{
			name: "basic salary only",
			payslip: domain.Payslip{
				BasicSalary: decimal.NewFromInt(30000),
			},
			want: decimal.NewFromInt(30000),
		},
		{
			name: "allowances added and deductions subtracted",
			payslip: domain.Payslip{
				BasicSalary: decimal.NewFromInt(30000),
				Allowances:  decimal.NewFromInt(5000),
				Deductions:  decimal.NewFromInt(2000),
			},
			want: decimal.NewFromInt(33000),
		},
		{
			name: "deductions exceeding earnings go negative",
			payslip: domain.Payslip{
				BasicSalary: decimal.NewFromInt(1000),
				Deductions:  decimal.NewFromInt(1500),
			},
			want: decimal.NewFromInt(-500),
		},
		{
			name:    "zero everywhere",
			payslip: domain.Payslip{},
			want:    decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.payslip.ComputeNetPay()
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}
