package dto

import (
	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the data needed to create an employee.
type CreateEmployeeRequest struct {
	Name        string          `json:"name" binding:"required"`
	Role        string          `json:"role"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email" binding:"omitempty,email"`
	BasicSalary decimal.Decimal `json:"basicSalary"`
	JoinedOn    *string         `json:"joinedOn" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateEmployeeRequest defines a partial employee update.
type UpdateEmployeeRequest struct {
	Name        *string          `json:"name"`
	Role        *string          `json:"role"`
	Phone       *string          `json:"phone"`
	Email       *string          `json:"email" binding:"omitempty,email"`
	BasicSalary *decimal.Decimal `json:"basicSalary"`
	JoinedOn    *string          `json:"joinedOn" binding:"omitempty,datetime=2006-01-02"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID  string          `json:"employeeID"`
	Name        string          `json:"name"`
	Role        string          `json:"role"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	BasicSalary decimal.Decimal `json:"basicSalary"`
	JoinedOn    *string         `json:"joinedOn"`
	Audit       AuditResponse   `json:"audit"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:  e.EmployeeID,
		Name:        e.Name,
		Role:        e.Role,
		Phone:       e.Phone,
		Email:       e.Email,
		BasicSalary: e.BasicSalary,
		JoinedOn:    e.JoinedOn,
		Audit:       ToAuditResponse(e.AuditFields),
	}
}

// ToListEmployeeResponse converts a slice of employees to response DTOs.
func ToListEmployeeResponse(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return res
}
