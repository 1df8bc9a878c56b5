package domain

// Vendor is a supplier referenced by purchase orders.
type Vendor struct {
	VendorID  string `json:"vendorID"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	TaxNumber string `json:"taxNumber"`

	AuditFields
}
