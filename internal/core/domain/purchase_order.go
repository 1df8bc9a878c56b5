package domain

import "time"

// PurchaseOrder orders vehicles or services from a vendor. Shares the line
// item and totals shape with quotes and invoices.
type PurchaseOrder struct {
	PurchaseOrderID string    `json:"purchaseOrderID"`
	Number          string    `json:"number"` // natural key, unique among purchase orders
	OrderDate       time.Time `json:"orderDate"`
	VendorID        *string   `json:"vendorID"`
	DeliveryDate    *time.Time `json:"deliveryDate"`
	Notes           string    `json:"notes"`

	Items  []LineItem     `json:"items"`
	Totals DocumentTotals `json:"totals"`

	AuditFields
}
