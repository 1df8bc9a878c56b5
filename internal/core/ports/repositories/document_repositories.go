package repositories

import (
	"context"

	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
)

// QuoteRepository persists quotes and their line items. Create and Update
// write the header and the item set in one database transaction.
type QuoteRepository interface {
	// IsNumberTaken reports whether another quote already uses the number.
	// excludeID is the id of the record being updated so a document can keep
	// its own number; pass "" on create.
	IsNumberTaken(ctx context.Context, number, excludeID string) (bool, error)
	CreateQuote(ctx context.Context, quote domain.Quote) error
	// UpdateQuote rewrites the header; when replaceItems is true the stored
	// item set is deleted in full and quote.Items inserted in its place.
	UpdateQuote(ctx context.Context, quote domain.Quote, replaceItems bool) error
	FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error)
	ListQuotes(ctx context.Context, limit, offset int) ([]domain.Quote, error)
	DeleteQuote(ctx context.Context, quoteID string) error
	Exists(ctx context.Context, quoteID string) (bool, error)
	// ListNumbersReferencingVehicle returns the distinct display numbers of
	// quotes whose line items cite the vehicle. Used by the pre-delete scan.
	ListNumbersReferencingVehicle(ctx context.Context, vehicleID string) ([]string, error)
}

// InvoiceRepository persists invoices and their line items.
type InvoiceRepository interface {
	IsNumberTaken(ctx context.Context, number, excludeID string) (bool, error)
	CreateInvoice(ctx context.Context, invoice domain.Invoice) error
	UpdateInvoice(ctx context.Context, invoice domain.Invoice, replaceItems bool) error
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, limit, offset int) ([]domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string) error
	Exists(ctx context.Context, invoiceID string) (bool, error)
	// ListNumbersByQuoteID returns the display numbers of invoices raised
	// from the quote. Used by the pre-delete scan on quotes.
	ListNumbersByQuoteID(ctx context.Context, quoteID string) ([]string, error)
}

// PurchaseOrderRepository persists purchase orders and their line items.
type PurchaseOrderRepository interface {
	IsNumberTaken(ctx context.Context, number, excludeID string) (bool, error)
	CreatePurchaseOrder(ctx context.Context, order domain.PurchaseOrder) error
	UpdatePurchaseOrder(ctx context.Context, order domain.PurchaseOrder, replaceItems bool) error
	FindPurchaseOrderByID(ctx context.Context, orderID string) (*domain.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context, limit, offset int) ([]domain.PurchaseOrder, error)
	DeletePurchaseOrder(ctx context.Context, orderID string) error
	Exists(ctx context.Context, orderID string) (bool, error)
}
