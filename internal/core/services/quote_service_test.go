package services_test

import (
	"context"
	"testing"

	"github.com/roadstead/vehicle_rental_app/internal/apperrors"
	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	portssvc "github.com/roadstead/vehicle_rental_app/internal/core/ports/services"
	"github.com/roadstead/vehicle_rental_app/internal/core/services"
	"github.com/roadstead/vehicle_rental_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type QuoteServiceTestSuite struct {
	suite.Suite
	quoteRepo    *MockQuoteRepository
	invoiceRepo  *MockInvoiceRepository
	customerRepo *MockCustomerRepository
	vehicleRepo  *MockVehicleRepository
	service      portssvc.QuoteService
}

func (s *QuoteServiceTestSuite) SetupTest() {
	s.quoteRepo = new(MockQuoteRepository)
	s.invoiceRepo = new(MockInvoiceRepository)
	s.customerRepo = new(MockCustomerRepository)
	s.vehicleRepo = new(MockVehicleRepository)
	s.service = services.NewQuoteService(s.quoteRepo, s.invoiceRepo, s.customerRepo, s.vehicleRepo)
}

func strPtr(v string) *string { return &v }

func (s *QuoteServiceTestSuite) TestCreateQuote_ComputesTotalsServerSide() {
	ctx := context.Background()
	vehicleID := "veh-1"
	req := dto.CreateQuoteRequest{
		Number:    "Q-001",
		QuoteDate: "2025-06-01",
		Items: []dto.LineItemRequest{
			{
				VehicleID:  &vehicleID,
				Quantity:   decimal.NewFromInt(2),
				UnitPrice:  decimal.NewFromInt(100),
				TaxPercent: decimal.NewFromInt(10),
			},
		},
	}

	s.quoteRepo.On("IsNumberTaken", ctx, "Q-001", "").Return(false, nil).Once()
	s.vehicleRepo.On("Exists", ctx, vehicleID).Return(true, nil).Once()
	s.quoteRepo.On("CreateQuote", ctx, mock.AnythingOfType("domain.Quote")).Return(nil).Once()

	quote, err := s.service.CreateQuote(ctx, req, "user-1")

	s.Require().NoError(err)
	s.Require().NotNil(quote)
	s.NotEmpty(quote.QuoteID)
	s.True(quote.Totals.SubTotal.Equal(decimal.NewFromInt(200)))
	s.True(quote.Totals.TotalTax.Equal(decimal.NewFromInt(20)))
	s.True(quote.Totals.Total.Equal(decimal.NewFromInt(220)))
	s.Require().Len(quote.Items, 1)
	s.Equal(1, quote.Items[0].SerialNumber)
	s.Equal("user-1", quote.CreatedBy)

	s.quoteRepo.AssertExpectations(s.T())
	s.vehicleRepo.AssertExpectations(s.T())
}

func (s *QuoteServiceTestSuite) TestCreateQuote_AssignsUniqueLineItemIDs() {
	ctx := context.Background()
	req := dto.CreateQuoteRequest{
		Number:    "Q-010",
		QuoteDate: "2025-06-01",
		Items: []dto.LineItemRequest{
			{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
			{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(50)},
		},
	}

	var saved domain.Quote
	s.quoteRepo.On("IsNumberTaken", ctx, "Q-010", "").Return(false, nil).Once()
	s.quoteRepo.On("CreateQuote", ctx, mock.AnythingOfType("domain.Quote")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Quote) }).
		Return(nil).Once()

	_, err := s.service.CreateQuote(ctx, req, "user-1")

	s.Require().NoError(err)
	s.Require().Len(saved.Items, 2)
	seen := make(map[string]struct{})
	for i, item := range saved.Items {
		s.NotEmptyf(item.LineItemID, "item %d reached the repository without an id", i)
		seen[item.LineItemID] = struct{}{}
	}
	s.Len(seen, 2, "line item ids must be unique within a document")
}

func (s *QuoteServiceTestSuite) TestUpdateQuote_ReplacedItemsGetFreshIDs() {
	ctx := context.Background()
	existing := &domain.Quote{QuoteID: "q-1", Number: "Q-001"}
	items := []dto.LineItemRequest{
		{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10)},
		{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(20)},
	}

	var saved domain.Quote
	s.quoteRepo.On("FindQuoteByID", ctx, "q-1").Return(existing, nil).Once()
	s.quoteRepo.On("UpdateQuote", ctx, mock.AnythingOfType("domain.Quote"), true).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Quote) }).
		Return(nil).Once()

	_, err := s.service.UpdateQuote(ctx, "q-1", dto.UpdateQuoteRequest{Items: &items}, "user-1")

	s.Require().NoError(err)
	s.Require().Len(saved.Items, 2)
	s.NotEmpty(saved.Items[0].LineItemID)
	s.NotEmpty(saved.Items[1].LineItemID)
	s.NotEqual(saved.Items[0].LineItemID, saved.Items[1].LineItemID)
}

func (s *QuoteServiceTestSuite) TestCreateQuote_DuplicateNumber() {
	ctx := context.Background()
	req := dto.CreateQuoteRequest{Number: "Q-001", QuoteDate: "2025-06-01"}

	s.quoteRepo.On("IsNumberTaken", ctx, "Q-001", "").Return(true, nil).Once()

	quote, err := s.service.CreateQuote(ctx, req, "user-1")

	s.Require().Error(err)
	s.Nil(quote)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.quoteRepo.AssertNotCalled(s.T(), "CreateQuote", mock.Anything, mock.Anything)
}

func (s *QuoteServiceTestSuite) TestCreateQuote_MissingCustomer() {
	ctx := context.Background()
	req := dto.CreateQuoteRequest{
		Number:     "Q-002",
		QuoteDate:  "2025-06-01",
		CustomerID: strPtr("cust-missing"),
	}

	s.quoteRepo.On("IsNumberTaken", ctx, "Q-002", "").Return(false, nil).Once()
	s.customerRepo.On("Exists", ctx, "cust-missing").Return(false, nil).Once()

	quote, err := s.service.CreateQuote(ctx, req, "user-1")

	s.Require().Error(err)
	s.Nil(quote)
	s.ErrorIs(err, apperrors.ErrMissingReference)
}

func (s *QuoteServiceTestSuite) TestCreateQuote_MissingVehicleInItems() {
	ctx := context.Background()
	vehicleID := "veh-missing"
	req := dto.CreateQuoteRequest{
		Number:    "Q-003",
		QuoteDate: "2025-06-01",
		Items: []dto.LineItemRequest{
			{VehicleID: &vehicleID, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(50)},
		},
	}

	s.quoteRepo.On("IsNumberTaken", ctx, "Q-003", "").Return(false, nil).Once()
	s.vehicleRepo.On("Exists", ctx, vehicleID).Return(false, nil).Once()

	quote, err := s.service.CreateQuote(ctx, req, "user-1")

	s.Require().Error(err)
	s.Nil(quote)
	s.ErrorIs(err, apperrors.ErrMissingReference)
}

func (s *QuoteServiceTestSuite) TestCreateQuote_InvalidDate() {
	ctx := context.Background()
	req := dto.CreateQuoteRequest{Number: "Q-004", QuoteDate: "01/06/2025"}

	s.quoteRepo.On("IsNumberTaken", ctx, "Q-004", "").Return(false, nil).Once()

	quote, err := s.service.CreateQuote(ctx, req, "user-1")

	s.Require().Error(err)
	s.Nil(quote)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *QuoteServiceTestSuite) TestUpdateQuote_NumberCheckExcludesSelf() {
	ctx := context.Background()
	existing := &domain.Quote{QuoteID: "q-1", Number: "Q-001"}

	s.quoteRepo.On("FindQuoteByID", ctx, "q-1").Return(existing, nil).Once()
	s.quoteRepo.On("IsNumberTaken", ctx, "Q-001", "q-1").Return(false, nil).Once()
	s.quoteRepo.On("UpdateQuote", ctx, mock.AnythingOfType("domain.Quote"), false).Return(nil).Once()

	quote, err := s.service.UpdateQuote(ctx, "q-1", dto.UpdateQuoteRequest{Number: strPtr("Q-001")}, "user-2")

	s.Require().NoError(err)
	s.Equal("Q-001", quote.Number)
	s.Equal("user-2", quote.LastUpdatedBy)
	s.quoteRepo.AssertExpectations(s.T())
}

func (s *QuoteServiceTestSuite) TestUpdateQuote_WithItemsReplacesAndRecomputes() {
	ctx := context.Background()
	existing := &domain.Quote{
		QuoteID: "q-1",
		Number:  "Q-001",
		Totals:  domain.DocumentTotals{Total: decimal.NewFromInt(999)},
	}
	items := []dto.LineItemRequest{
		{Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(10)},
	}

	s.quoteRepo.On("FindQuoteByID", ctx, "q-1").Return(existing, nil).Once()
	s.quoteRepo.On("UpdateQuote", ctx, mock.AnythingOfType("domain.Quote"), true).Return(nil).Once()

	quote, err := s.service.UpdateQuote(ctx, "q-1", dto.UpdateQuoteRequest{Items: &items}, "user-1")

	s.Require().NoError(err)
	s.True(quote.Totals.Total.Equal(decimal.NewFromInt(30)))
	s.Require().Len(quote.Items, 1)
	s.quoteRepo.AssertExpectations(s.T())
}

func (s *QuoteServiceTestSuite) TestUpdateQuote_WithoutItemsLeavesItemsAlone() {
	ctx := context.Background()
	existing := &domain.Quote{
		QuoteID: "q-1",
		Number:  "Q-001",
		Items:   []domain.LineItem{{LineItemID: "li-1"}},
		Totals:  domain.DocumentTotals{Total: decimal.NewFromInt(500)},
	}

	s.quoteRepo.On("FindQuoteByID", ctx, "q-1").Return(existing, nil).Once()
	s.quoteRepo.On("UpdateQuote", ctx, mock.AnythingOfType("domain.Quote"), false).Return(nil).Once()

	quote, err := s.service.UpdateQuote(ctx, "q-1", dto.UpdateQuoteRequest{Notes: strPtr("updated")}, "user-1")

	s.Require().NoError(err)
	s.Equal("updated", quote.Notes)
	s.True(quote.Totals.Total.Equal(decimal.NewFromInt(500)))
	s.Require().Len(quote.Items, 1)
	s.quoteRepo.AssertExpectations(s.T())
}

func (s *QuoteServiceTestSuite) TestDeleteQuote_BlockedBySingleInvoice() {
	ctx := context.Background()

	s.invoiceRepo.On("ListNumbersByQuoteID", ctx, "q-1").Return([]string{"INV-001"}, nil).Once()

	err := s.service.DeleteQuote(ctx, "q-1")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrBlockedDelete)
	s.Equal("Cannot delete Quote as it is referenced in Invoice INV-001", err.Error())
	s.quoteRepo.AssertNotCalled(s.T(), "DeleteQuote", mock.Anything, mock.Anything)
}

func (s *QuoteServiceTestSuite) TestDeleteQuote_BlockedByMultipleInvoices() {
	ctx := context.Background()

	s.invoiceRepo.On("ListNumbersByQuoteID", ctx, "q-1").Return([]string{"INV-001", "INV-002"}, nil).Once()

	err := s.service.DeleteQuote(ctx, "q-1")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrBlockedDelete)
	s.Equal("Cannot delete Quote as it is referenced in:\n- Invoice INV-001\n- Invoice INV-002", err.Error())
}

func (s *QuoteServiceTestSuite) TestDeleteQuote_Unreferenced() {
	ctx := context.Background()

	s.invoiceRepo.On("ListNumbersByQuoteID", ctx, "q-1").Return([]string{}, nil).Once()
	s.quoteRepo.On("DeleteQuote", ctx, "q-1").Return(nil).Once()

	err := s.service.DeleteQuote(ctx, "q-1")

	s.Require().NoError(err)
	s.quoteRepo.AssertExpectations(s.T())
}

func TestQuoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteServiceTestSuite))
}
