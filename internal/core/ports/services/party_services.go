package services

import (
	"context"

	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	"github.com/roadstead/vehicle_rental_app/internal/dto"
)

// CustomerService manages customers.
type CustomerService interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) error
}

// VendorService manages vendors.
type VendorService interface {
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest, userID string) (*domain.Vendor, error)
	GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
	ListVendors(ctx context.Context, limit, offset int) ([]domain.Vendor, error)
	UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, userID string) (*domain.Vendor, error)
	DeleteVendor(ctx context.Context, vendorID string) error
}

// EmployeeService manages employees. Deletes are guarded by payslip references.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, userID string) (*domain.Employee, error)
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, limit, offset int) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, userID string) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
}

// PayslipService manages payslips; net pay is always derived server-side.
type PayslipService interface {
	CreatePayslip(ctx context.Context, req dto.CreatePayslipRequest, userID string) (*domain.Payslip, error)
	GetPayslipByID(ctx context.Context, payslipID string) (*domain.Payslip, error)
	ListPayslips(ctx context.Context, limit, offset int) ([]domain.Payslip, error)
	UpdatePayslip(ctx context.Context, payslipID string, req dto.UpdatePayslipRequest, userID string) (*domain.Payslip, error)
	DeletePayslip(ctx context.Context, payslipID string) error
}
