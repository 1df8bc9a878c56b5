package repositories

import (
	"context"

	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
)

// CustomerRepository persists customers.
type CustomerRepository interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
	DeleteCustomer(ctx context.Context, customerID string) error
	Exists(ctx context.Context, customerID string) (bool, error)
}

// VendorRepository persists vendors.
type VendorRepository interface {
	SaveVendor(ctx context.Context, vendor domain.Vendor) error
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
	ListVendors(ctx context.Context, limit, offset int) ([]domain.Vendor, error)
	UpdateVendor(ctx context.Context, vendor domain.Vendor) error
	DeleteVendor(ctx context.Context, vendorID string) error
	Exists(ctx context.Context, vendorID string) (bool, error)
}

// EmployeeRepository persists employees.
type EmployeeRepository interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, limit, offset int) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
	DeleteEmployee(ctx context.Context, employeeID string) error
	Exists(ctx context.Context, employeeID string) (bool, error)
}

// PayslipRepository persists payslips.
type PayslipRepository interface {
	IsNumberTaken(ctx context.Context, number, excludeID string) (bool, error)
	SavePayslip(ctx context.Context, payslip domain.Payslip) error
	FindPayslipByID(ctx context.Context, payslipID string) (*domain.Payslip, error)
	ListPayslips(ctx context.Context, limit, offset int) ([]domain.Payslip, error)
	UpdatePayslip(ctx context.Context, payslip domain.Payslip) error
	DeletePayslip(ctx context.Context, payslipID string) error
	// ListNumbersByEmployeeID returns the display numbers of payslips for the
	// employee. Used by the pre-delete scan on employees.
	ListNumbersByEmployeeID(ctx context.Context, employeeID string) ([]string, error)
}

// UserRepository persists operator accounts.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByProviderID(ctx context.Context, provider, providerID string) (*domain.User, error)
}
