package dto

import (
	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePurchaseOrderRequest defines the data needed to create a purchase order.
type CreatePurchaseOrderRequest struct {
	Number       string            `json:"number" binding:"required"`
	OrderDate    string            `json:"orderDate" binding:"required,datetime=2006-01-02"`
	VendorID     *string           `json:"vendorID"`
	DeliveryDate *string           `json:"deliveryDate" binding:"omitempty,datetime=2006-01-02"`
	Notes        string            `json:"notes"`
	Items        []LineItemRequest `json:"items" binding:"dive"`
}

// UpdatePurchaseOrderRequest defines a partial purchase order update. Nil
// Items leaves the existing line items untouched.
type UpdatePurchaseOrderRequest struct {
	Number       *string            `json:"number"`
	OrderDate    *string            `json:"orderDate" binding:"omitempty,datetime=2006-01-02"`
	VendorID     *string            `json:"vendorID"`
	DeliveryDate *string            `json:"deliveryDate" binding:"omitempty,datetime=2006-01-02"`
	Notes        *string            `json:"notes"`
	Items        *[]LineItemRequest `json:"items" binding:"omitempty,dive"`
}

// PurchaseOrderResponse defines the data returned for a purchase order.
type PurchaseOrderResponse struct {
	PurchaseOrderID string             `json:"purchaseOrderID"`
	Number          string             `json:"number"`
	OrderDate       string             `json:"orderDate"`
	VendorID        *string            `json:"vendorID"`
	DeliveryDate    *string            `json:"deliveryDate"`
	Notes           string             `json:"notes"`
	Items           []LineItemResponse `json:"items"`
	SubTotal        decimal.Decimal    `json:"subTotal"`
	TotalTax        decimal.Decimal    `json:"totalTax"`
	Total           decimal.Decimal    `json:"total"`
	Audit           AuditResponse      `json:"audit"`
}

// ToPurchaseOrderResponse converts a domain.PurchaseOrder to its response DTO.
func ToPurchaseOrderResponse(po *domain.PurchaseOrder) PurchaseOrderResponse {
	resp := PurchaseOrderResponse{
		PurchaseOrderID: po.PurchaseOrderID,
		Number:          po.Number,
		OrderDate:       po.OrderDate.Format("2006-01-02"),
		VendorID:        po.VendorID,
		Notes:           po.Notes,
		Items:           ToLineItemResponses(po.Items),
		SubTotal:        po.Totals.SubTotal,
		TotalTax:        po.Totals.TotalTax,
		Total:           po.Totals.Total,
		Audit:           ToAuditResponse(po.AuditFields),
	}
	if po.DeliveryDate != nil {
		s := po.DeliveryDate.Format("2006-01-02")
		resp.DeliveryDate = &s
	}
	return resp
}

// ToListPurchaseOrderResponse converts a slice of purchase orders to response DTOs.
func ToListPurchaseOrderResponse(orders []domain.PurchaseOrder) []PurchaseOrderResponse {
	res := make([]PurchaseOrderResponse, len(orders))
	for i := range orders {
		res[i] = ToPurchaseOrderResponse(&orders[i])
	}
	return res
}
