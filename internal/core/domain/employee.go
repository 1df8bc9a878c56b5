package domain

import "github.com/shopspring/decimal"

// Employee is a staff member. Deleting an employee is blocked while payslips
// reference them; advisory references from vehicle transactions do not block.
type Employee struct {
	EmployeeID  string          `json:"employeeID"`
	Name        string          `json:"name"`
	Role        string          `json:"role"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	BasicSalary decimal.Decimal `json:"basicSalary"`
	JoinedOn    *string         `json:"joinedOn"`

	AuditFields
}
