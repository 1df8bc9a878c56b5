package services

import (
	"time"

	portsrepo "github.com/roadstead/vehicle_rental_app/internal/core/ports/repositories"
	portssvc "github.com/roadstead/vehicle_rental_app/internal/core/ports/services"
)

// NewServiceContainer wires every service against the repository container.
func NewServiceContainer(repos *portsrepo.RepositoryContainer, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Quote:              NewQuoteService(repos.Quote, repos.Invoice, repos.Customer, repos.Vehicle),
		Invoice:            NewInvoiceService(repos.Invoice, repos.Quote, repos.PurchaseOrder, repos.Customer, repos.Vehicle),
		PurchaseOrder:      NewPurchaseOrderService(repos.PurchaseOrder, repos.Vendor, repos.Vehicle),
		Vehicle:            NewVehicleService(repos.Vehicle, repos.VehicleTransaction, repos.Quote),
		VehicleTransaction: NewVehicleTransactionService(repos.VehicleTransaction, repos.Vehicle, repos.Employee, repos.Invoice),
		Customer:           NewCustomerService(repos.Customer),
		Vendor:             NewVendorService(repos.Vendor),
		Employee:           NewEmployeeService(repos.Employee, repos.Payslip),
		Payslip:            NewPayslipService(repos.Payslip, repos.Employee),
		Dashboard:          NewDashboardService(repos.Reporting),
		Auth:               NewAuthService(repos.User, jwtSecret, jwtExpiry, jwtIssuer),
	}
}
