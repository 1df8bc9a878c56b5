package domain

import "github.com/shopspring/decimal"

// Payslip records one salary payment for an employee over a calendar month.
// NetPay is derived (basic + allowances - deductions) and recomputed on every
// write, never trusted from input.
type Payslip struct {
	PayslipID  string          `json:"payslipID"`
	Number     string          `json:"number"` // natural key, unique among payslips
	EmployeeID string          `json:"employeeID"`
	Period     string          `json:"period"` // YYYY-MM month key
	BasicSalary decimal.Decimal `json:"basicSalary"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetPay      decimal.Decimal `json:"netPay"`
	Notes       string          `json:"notes"`

	AuditFields
}

// ComputeNetPay derives the net pay from the earning and deduction fields.
func (p *Payslip) ComputeNetPay() decimal.Decimal {
	return p.BasicSalary.Add(p.Allowances).Sub(p.Deductions)
}
