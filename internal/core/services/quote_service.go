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
	"github.com/roadstead/vehicle_rental_app/internal/utils/finance"
)

const dateLayout = "2006-01-02"

// quoteService implements the QuoteService interface. Every mutation runs
// the same guard sequence: uniqueness pre-check, foreign-key existence
// checks, server-side total computation, then an atomic write. The storage
// layer's own constraints remain authoritative for the rare race where the
// pre-check goes stale; the repositories translate those violations back
// into the same error kinds.
type quoteService struct {
	BaseService
	quoteRepo    portsrepo.QuoteRepository
	invoiceRepo  portsrepo.InvoiceRepository
	customerRepo portsrepo.CustomerRepository
	vehicleRepo  portsrepo.VehicleRepository
}

// NewQuoteService creates a new quote service.
func NewQuoteService(
	quoteRepo portsrepo.QuoteRepository,
	invoiceRepo portsrepo.InvoiceRepository,
	customerRepo portsrepo.CustomerRepository,
	vehicleRepo portsrepo.VehicleRepository,
) portssvc.QuoteService {
	return &quoteService{
		quoteRepo:    quoteRepo,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
	}
}

var _ portssvc.QuoteService = (*quoteService)(nil)

func (s *quoteService) CreateQuote(ctx context.Context, req dto.CreateQuoteRequest, userID string) (*domain.Quote, error) {
	taken, err := s.quoteRepo.IsNumberTaken(ctx, req.Number, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to check quote number uniqueness", slog.String("number", req.Number))
		return nil, err
	}
	if taken {
		return nil, apperrors.NewDuplicateKeyError("Quote", req.Number)
	}

	if err := s.checkCustomer(ctx, req.CustomerID); err != nil {
		return nil, err
	}
	if err := checkVehicleRefs(ctx, s.vehicleRepo, req.Items); err != nil {
		return nil, err
	}

	quoteDate, err := time.Parse(dateLayout, req.QuoteDate)
	if err != nil {
		return nil, apperrors.NewValidationError("quote date must be formatted as YYYY-MM-DD")
	}
	var validUntil *time.Time
	if req.ValidUntil != nil {
		parsed, err := time.Parse(dateLayout, *req.ValidUntil)
		if err != nil {
			return nil, apperrors.NewValidationError("valid-until date must be formatted as YYYY-MM-DD")
		}
		validUntil = &parsed
	}

	// Client-submitted amounts are ignored; totals always come from the
	// calculator.
	items, totals := computeDocumentItems(req.Items)

	now := time.Now()
	quote := domain.Quote{
		QuoteID:    uuid.NewString(),
		Number:     req.Number,
		QuoteDate:  quoteDate,
		CustomerID: normalizeRef(req.CustomerID),
		ValidUntil: validUntil,
		Notes:      req.Notes,
		Items:      items,
		Totals:     totals,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.quoteRepo.CreateQuote(ctx, quote); err != nil {
		s.LogError(ctx, err, "Failed to create quote", slog.String("number", quote.Number))
		return nil, err
	}

	s.LogInfo(ctx, "Quote created", slog.String("quote_id", quote.QuoteID), slog.String("number", quote.Number))
	return &quote, nil
}

func (s *quoteService) GetQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	return quote, nil
}

func (s *quoteService) ListQuotes(ctx context.Context, limit, offset int) ([]domain.Quote, error) {
	quotes, err := s.quoteRepo.ListQuotes(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list quotes")
		return nil, err
	}
	if quotes == nil {
		return []domain.Quote{}, nil
	}
	return quotes, nil
}

func (s *quoteService) UpdateQuote(ctx context.Context, quoteID string, req dto.UpdateQuoteRequest, userID string) (*domain.Quote, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	if req.Number != nil {
		// The record's own id is excluded so a quote can keep its number.
		taken, err := s.quoteRepo.IsNumberTaken(ctx, *req.Number, quoteID)
		if err != nil {
			s.LogError(ctx, err, "Failed to check quote number uniqueness", slog.String("number", *req.Number))
			return nil, err
		}
		if taken {
			return nil, apperrors.NewDuplicateKeyError("Quote", *req.Number)
		}
		quote.Number = *req.Number
	}
	if req.QuoteDate != nil {
		parsed, err := time.Parse(dateLayout, *req.QuoteDate)
		if err != nil {
			return nil, apperrors.NewValidationError("quote date must be formatted as YYYY-MM-DD")
		}
		quote.QuoteDate = parsed
	}
	if req.CustomerID != nil {
		if err := s.checkCustomer(ctx, req.CustomerID); err != nil {
			return nil, err
		}
		quote.CustomerID = normalizeRef(req.CustomerID)
	}
	if req.ValidUntil != nil {
		if *req.ValidUntil == "" {
			quote.ValidUntil = nil
		} else {
			parsed, err := time.Parse(dateLayout, *req.ValidUntil)
			if err != nil {
				return nil, apperrors.NewValidationError("valid-until date must be formatted as YYYY-MM-DD")
			}
			quote.ValidUntil = &parsed
		}
	}
	if req.Notes != nil {
		quote.Notes = *req.Notes
	}

	// An update carrying items replaces the stored set wholesale; an update
	// without items leaves the existing set and totals untouched.
	replaceItems := req.Items != nil
	if replaceItems {
		if err := checkVehicleRefs(ctx, s.vehicleRepo, *req.Items); err != nil {
			return nil, err
		}
		quote.Items, quote.Totals = computeDocumentItems(*req.Items)
	}

	quote.LastUpdatedAt = time.Now()
	quote.LastUpdatedBy = userID

	if err := s.quoteRepo.UpdateQuote(ctx, *quote, replaceItems); err != nil {
		s.LogError(ctx, err, "Failed to update quote", slog.String("quote_id", quoteID))
		return nil, err
	}

	s.LogInfo(ctx, "Quote updated", slog.String("quote_id", quoteID))
	return quote, nil
}

func (s *quoteService) DeleteQuote(ctx context.Context, quoteID string) error {
	numbers, err := s.invoiceRepo.ListNumbersByQuoteID(ctx, quoteID)
	if err != nil {
		s.LogError(ctx, err, "Failed to scan invoices referencing quote", slog.String("quote_id", quoteID))
		return err
	}
	if len(numbers) > 0 {
		refs := make([]apperrors.Reference, len(numbers))
		for i, number := range numbers {
			refs[i] = apperrors.Reference{Type: "Invoice", Number: number}
		}
		return apperrors.NewBlockedDeleteError("Quote", refs)
	}

	if err := s.quoteRepo.DeleteQuote(ctx, quoteID); err != nil {
		s.LogError(ctx, err, "Failed to delete quote", slog.String("quote_id", quoteID))
		return err
	}

	s.LogInfo(ctx, "Quote deleted", slog.String("quote_id", quoteID))
	return nil
}

func (s *quoteService) checkCustomer(ctx context.Context, customerID *string) error {
	return checkReference(ctx, "Customer", customerID, s.customerRepo.Exists)
}

// normalizeRef maps an explicitly empty reference to nil so "clear the
// relation" and "no relation" store identically.
func normalizeRef(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}

// checkReference verifies an optional foreign key. A nil or empty reference
// is always valid and skips the lookup.
func checkReference(ctx context.Context, entity string, id *string, exists func(context.Context, string) (bool, error)) error {
	if id == nil || *id == "" {
		return nil
	}
	ok, err := exists(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewMissingReferenceError(entity, *id)
	}
	return nil
}

// computeDocumentItems runs submitted items through the calculator and stamps
// a fresh id on every resulting row. Item ids are generated here, alongside
// header ids, never left for the storage layer to fill in.
func computeDocumentItems(items []dto.LineItemRequest) ([]domain.LineItem, domain.DocumentTotals) {
	computed, totals := finance.ComputeTotals(dto.ToDomainLineItems(items))
	for i := range computed {
		computed[i].LineItemID = uuid.NewString()
	}
	return computed, totals
}

// checkVehicleRefs verifies every vehicle cited by the submitted line items,
// skipping duplicates so each vehicle is looked up once.
func checkVehicleRefs(ctx context.Context, vehicleRepo portsrepo.VehicleRepository, items []dto.LineItemRequest) error {
	seen := make(map[string]struct{})
	for _, item := range items {
		if item.VehicleID == nil || *item.VehicleID == "" {
			continue
		}
		if _, ok := seen[*item.VehicleID]; ok {
			continue
		}
		seen[*item.VehicleID] = struct{}{}
		if err := checkReference(ctx, "Vehicle", item.VehicleID, vehicleRepo.Exists); err != nil {
			return err
		}
	}
	return nil
}
