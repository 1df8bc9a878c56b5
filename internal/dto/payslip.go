package dto

import (
	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePayslipRequest defines the data needed to create a payslip. NetPay is
// not accepted; it is derived server-side.
type CreatePayslipRequest struct {
	Number      string          `json:"number" binding:"required"`
	EmployeeID  string          `json:"employeeID" binding:"required"`
	Period      string          `json:"period" binding:"required,monthkey"`
	BasicSalary decimal.Decimal `json:"basicSalary"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
	Notes       string          `json:"notes"`
}

// UpdatePayslipRequest defines a partial payslip update.
type UpdatePayslipRequest struct {
	Number      *string          `json:"number"`
	Period      *string          `json:"period" binding:"omitempty,monthkey"`
	BasicSalary *decimal.Decimal `json:"basicSalary"`
	Allowances  *decimal.Decimal `json:"allowances"`
	Deductions  *decimal.Decimal `json:"deductions"`
	Notes       *string          `json:"notes"`
}

// PayslipResponse defines the data returned for a payslip.
type PayslipResponse struct {
	PayslipID   string          `json:"payslipID"`
	Number      string          `json:"number"`
	EmployeeID  string          `json:"employeeID"`
	Period      string          `json:"period"`
	BasicSalary decimal.Decimal `json:"basicSalary"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetPay      decimal.Decimal `json:"netPay"`
	Notes       string          `json:"notes"`
	Audit       AuditResponse   `json:"audit"`
}

// ToPayslipResponse converts a domain.Payslip to PayslipResponse.
func ToPayslipResponse(p *domain.Payslip) PayslipResponse {
	return PayslipResponse{
		PayslipID:   p.PayslipID,
		Number:      p.Number,
		EmployeeID:  p.EmployeeID,
		Period:      p.Period,
		BasicSalary: p.BasicSalary,
		Allowances:  p.Allowances,
		Deductions:  p.Deductions,
		NetPay:      p.NetPay,
		Notes:       p.Notes,
		Audit:       ToAuditResponse(p.AuditFields),
	}
}

// ToListPayslipResponse converts a slice of payslips to response DTOs.
func ToListPayslipResponse(payslips []domain.Payslip) []PayslipResponse {
	res := make([]PayslipResponse, len(payslips))
	for i := range payslips {
		res[i] = ToPayslipResponse(&payslips[i])
	}
	return res
}
