package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/roadstead/vehicle_rental_app/internal/core/ports/repositories"
)

// NewRepositoryContainer wires every pgsql repository against the shared pool.
func NewRepositoryContainer(dbPool *pgxpool.Pool) *portsrepo.RepositoryContainer {
	return &portsrepo.RepositoryContainer{
		Quote:              newPgxQuoteRepository(dbPool),
		Invoice:            newPgxInvoiceRepository(dbPool),
		PurchaseOrder:      newPgxPurchaseOrderRepository(dbPool),
		Vehicle:            newPgxVehicleRepository(dbPool),
		VehicleTransaction: newPgxVehicleTransactionRepository(dbPool),
		Customer:           newPgxCustomerRepository(dbPool),
		Vendor:             newPgxVendorRepository(dbPool),
		Employee:           newPgxEmployeeRepository(dbPool),
		Payslip:            newPgxPayslipRepository(dbPool),
		User:               newPgxUserRepository(dbPool),
		Reporting:          newPgxReportingRepository(dbPool),
	}
}
