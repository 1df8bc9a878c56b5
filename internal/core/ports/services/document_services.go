package services

import (
	"context"

	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	"github.com/roadstead/vehicle_rental_app/internal/dto"
)

// QuoteService orchestrates validation, total computation and persistence
// for quotes.
type QuoteService interface {
	CreateQuote(ctx context.Context, req dto.CreateQuoteRequest, userID string) (*domain.Quote, error)
	GetQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error)
	ListQuotes(ctx context.Context, limit, offset int) ([]domain.Quote, error)
	UpdateQuote(ctx context.Context, quoteID string, req dto.UpdateQuoteRequest, userID string) (*domain.Quote, error)
	DeleteQuote(ctx context.Context, quoteID string) error
}

// InvoiceService orchestrates validation, total computation and persistence
// for invoices.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, limit, offset int) ([]domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, userID string) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string) error
}

// PurchaseOrderService orchestrates validation, total computation and
// persistence for purchase orders.
type PurchaseOrderService interface {
	CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error)
	GetPurchaseOrderByID(ctx context.Context, orderID string) (*domain.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context, limit, offset int) ([]domain.PurchaseOrder, error)
	UpdatePurchaseOrder(ctx context.Context, orderID string, req dto.UpdatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error)
	DeletePurchaseOrder(ctx context.Context, orderID string) error
}
