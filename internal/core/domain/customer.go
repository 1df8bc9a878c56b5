package domain

// Customer is a rental customer referenced by quotes and invoices.
type Customer struct {
	CustomerID string `json:"customerID"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	TaxNumber  string `json:"taxNumber"`

	AuditFields
}
