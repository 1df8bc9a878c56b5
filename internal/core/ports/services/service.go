package services

// ServiceContainer bundles every service interface for route registration.
type ServiceContainer struct {
	Quote              QuoteService
	Invoice            InvoiceService
	PurchaseOrder      PurchaseOrderService
	Vehicle            VehicleService
	VehicleTransaction VehicleTransactionService
	Customer           CustomerService
	Vendor             VendorService
	Employee           EmployeeService
	Payslip            PayslipService
	Dashboard          DashboardService
	Auth               AuthService
}
