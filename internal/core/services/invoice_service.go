package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/roadstead/vehicle_rental_app/internal/apperrors"
	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	portsrepo "github.com/roadstead/vehicle_rental_app/internal/core/ports/repositories"
	portssvc "github.com/roadstead/vehicle_rental_app/internal/core/ports/services"
	"github.com/roadstead/vehicle_rental_app/internal/dto"
	"github.com/shopspring/decimal"
)

// invoiceService implements the InvoiceService interface with the same guard
// sequence as quotes, plus the quote and purchase order back-references.
type invoiceService struct {
	BaseService
	invoiceRepo       portsrepo.InvoiceRepository
	quoteRepo         portsrepo.QuoteRepository
	purchaseOrderRepo portsrepo.PurchaseOrderRepository
	customerRepo      portsrepo.CustomerRepository
	vehicleRepo       portsrepo.VehicleRepository
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepository,
	quoteRepo portsrepo.QuoteRepository,
	purchaseOrderRepo portsrepo.PurchaseOrderRepository,
	customerRepo portsrepo.CustomerRepository,
	vehicleRepo portsrepo.VehicleRepository,
) portssvc.InvoiceService {
	return &invoiceService{
		invoiceRepo:       invoiceRepo,
		quoteRepo:         quoteRepo,
		purchaseOrderRepo: purchaseOrderRepo,
		customerRepo:      customerRepo,
		vehicleRepo:       vehicleRepo,
	}
}

var _ portssvc.InvoiceService = (*invoiceService)(nil)

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error) {
	taken, err := s.invoiceRepo.IsNumberTaken(ctx, req.Number, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to check invoice number uniqueness", slog.String("number", req.Number))
		return nil, err
	}
	if taken {
		return nil, apperrors.NewDuplicateKeyError("Invoice", req.Number)
	}

	if err := s.checkForeignKeys(ctx, req.CustomerID, req.QuoteID, req.PurchaseOrderID); err != nil {
		return nil, err
	}
	if err := checkVehicleRefs(ctx, s.vehicleRepo, req.Items); err != nil {
		return nil, err
	}
	if req.AmountReceived.IsNegative() {
		return nil, apperrors.NewValidationError("amount received cannot be negative")
	}

	invoiceDate, err := time.Parse(dateLayout, req.InvoiceDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invoice date must be formatted as YYYY-MM-DD")
	}
	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := time.Parse(dateLayout, *req.DueDate)
		if err != nil {
			return nil, apperrors.NewValidationError("due date must be formatted as YYYY-MM-DD")
		}
		dueDate = &parsed
	}

	items, totals := computeDocumentItems(req.Items)

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:       uuid.NewString(),
		Number:          req.Number,
		InvoiceDate:     invoiceDate,
		DueDate:         dueDate,
		CustomerID:      normalizeRef(req.CustomerID),
		QuoteID:         normalizeRef(req.QuoteID),
		PurchaseOrderID: normalizeRef(req.PurchaseOrderID),
		AmountReceived:  req.AmountReceived,
		Notes:           req.Notes,
		Items:           items,
		Totals:          totals,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.invoiceRepo.CreateInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to create invoice", slog.String("number", invoice.Number))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created", slog.String("invoice_id", invoice.InvoiceID), slog.String("number", invoice.Number))
	return &invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

func (s *invoiceService) ListInvoices(ctx context.Context, limit, offset int) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, err
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, userID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if req.Number != nil {
		taken, err := s.invoiceRepo.IsNumberTaken(ctx, *req.Number, invoiceID)
		if err != nil {
			s.LogError(ctx, err, "Failed to check invoice number uniqueness", slog.String("number", *req.Number))
			return nil, err
		}
		if taken {
			return nil, apperrors.NewDuplicateKeyError("Invoice", *req.Number)
		}
		invoice.Number = *req.Number
	}
	if req.InvoiceDate != nil {
		parsed, err := time.Parse(dateLayout, *req.InvoiceDate)
		if err != nil {
			return nil, apperrors.NewValidationError("invoice date must be formatted as YYYY-MM-DD")
		}
		invoice.InvoiceDate = parsed
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			invoice.DueDate = nil
		} else {
			parsed, err := time.Parse(dateLayout, *req.DueDate)
			if err != nil {
				return nil, apperrors.NewValidationError("due date must be formatted as YYYY-MM-DD")
			}
			invoice.DueDate = &parsed
		}
	}
	if req.CustomerID != nil {
		if err := checkReference(ctx, "Customer", req.CustomerID, s.customerRepo.Exists); err != nil {
			return nil, err
		}
		invoice.CustomerID = normalizeRef(req.CustomerID)
	}
	if req.QuoteID != nil {
		if err := checkReference(ctx, "Quote", req.QuoteID, s.quoteRepo.Exists); err != nil {
			return nil, err
		}
		invoice.QuoteID = normalizeRef(req.QuoteID)
	}
	if req.PurchaseOrderID != nil {
		if err := checkReference(ctx, "Purchase Order", req.PurchaseOrderID, s.purchaseOrderRepo.Exists); err != nil {
			return nil, err
		}
		invoice.PurchaseOrderID = normalizeRef(req.PurchaseOrderID)
	}
	if req.AmountReceived != nil {
		if req.AmountReceived.LessThan(decimal.Zero) {
			return nil, apperrors.NewValidationError("amount received cannot be negative")
		}
		invoice.AmountReceived = *req.AmountReceived
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}

	replaceItems := req.Items != nil
	if replaceItems {
		if err := checkVehicleRefs(ctx, s.vehicleRepo, *req.Items); err != nil {
			return nil, err
		}
		invoice.Items, invoice.Totals = computeDocumentItems(*req.Items)
	}

	invoice.LastUpdatedAt = time.Now()
	invoice.LastUpdatedBy = userID

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice, replaceItems); err != nil {
		s.LogError(ctx, err, "Failed to update invoice", slog.String("invoice_id", invoiceID))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice updated", slog.String("invoice_id", invoiceID))
	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	// Nothing blocks an invoice delete: vehicle transactions cite invoices
	// only through an advisory reference.
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		return err
	}
	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_id", invoiceID))
	return nil
}

func (s *invoiceService) checkForeignKeys(ctx context.Context, customerID, quoteID, purchaseOrderID *string) error {
	if err := checkReference(ctx, "Customer", customerID, s.customerRepo.Exists); err != nil {
		return err
	}
	if err := checkReference(ctx, "Quote", quoteID, s.quoteRepo.Exists); err != nil {
		return err
	}
	return checkReference(ctx, "Purchase Order", purchaseOrderID, s.purchaseOrderRepo.Exists)
}
