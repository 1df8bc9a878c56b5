package repositories

// RepositoryContainer bundles every repository interface for service wiring.
type RepositoryContainer struct {
	Quote              QuoteRepository
	Invoice            InvoiceRepository
	PurchaseOrder      PurchaseOrderRepository
	Vehicle            VehicleRepository
	VehicleTransaction VehicleTransactionRepository
	Customer           CustomerRepository
	Vendor             VendorRepository
	Employee           EmployeeRepository
	Payslip            PayslipRepository
	User               UserRepository
	Reporting          ReportingRepository
}
