package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/roadstead/vehicle_rental_app/internal/apperrors"
	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	portssvc "github.com/roadstead/vehicle_rental_app/internal/core/ports/services"
	"github.com/roadstead/vehicle_rental_app/internal/core/services"
	"github.com/roadstead/vehicle_rental_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type VehicleTransactionServiceTestSuite struct {
	suite.Suite
	transactionRepo *MockVehicleTransactionRepository
	vehicleRepo     *MockVehicleRepository
	employeeRepo    *MockEmployeeRepository
	invoiceRepo     *MockInvoiceRepository
	service         portssvc.VehicleTransactionService
}

func (s *VehicleTransactionServiceTestSuite) SetupTest() {
	s.transactionRepo = new(MockVehicleTransactionRepository)
	s.vehicleRepo = new(MockVehicleRepository)
	s.employeeRepo = new(MockEmployeeRepository)
	s.invoiceRepo = new(MockInvoiceRepository)
	s.service = services.NewVehicleTransactionService(s.transactionRepo, s.vehicleRepo, s.employeeRepo, s.invoiceRepo)
}

func (s *VehicleTransactionServiceTestSuite) validCreateRequest() dto.CreateVehicleTransactionRequest {
	return dto.CreateVehicleTransactionRequest{
		VehicleID:       "veh-1",
		TransactionType: "revenue",
		Amount:          decimal.NewFromInt(1500),
		TransactionDate: time.Now().AddDate(0, 0, -3).Format("2006-01-02"),
	}
}

func (s *VehicleTransactionServiceTestSuite) TestCreateTransaction_DerivesMonthFromDate() {
	ctx := context.Background()
	req := s.validCreateRequest()

	s.vehicleRepo.On("Exists", ctx, "veh-1").Return(true, nil).Once()
	s.transactionRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.VehicleTransaction")).Return(nil).Once()

	txn, err := s.service.CreateTransaction(ctx, req, "user-1")

	s.Require().NoError(err)
	s.Equal(req.TransactionDate[:7], txn.Month)
	s.Equal(domain.Revenue, txn.TransactionType)
	s.transactionRepo.AssertExpectations(s.T())
}

func (s *VehicleTransactionServiceTestSuite) TestCreateTransaction_ExplicitMonthKept() {
	ctx := context.Background()
	req := s.validCreateRequest()
	req.Month = "2025-01"

	s.vehicleRepo.On("Exists", ctx, "veh-1").Return(true, nil).Once()
	s.transactionRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.VehicleTransaction")).Return(nil).Once()

	txn, err := s.service.CreateTransaction(ctx, req, "user-1")

	s.Require().NoError(err)
	s.Equal("2025-01", txn.Month)
}

func (s *VehicleTransactionServiceTestSuite) TestCreateTransaction_MissingVehicle() {
	ctx := context.Background()
	req := s.validCreateRequest()

	s.vehicleRepo.On("Exists", ctx, "veh-1").Return(false, nil).Once()

	txn, err := s.service.CreateTransaction(ctx, req, "user-1")

	s.Require().Error(err)
	s.Nil(txn)
	s.ErrorIs(err, apperrors.ErrMissingReference)
	s.transactionRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (s *VehicleTransactionServiceTestSuite) TestCreateTransaction_MissingEmployeeRef() {
	ctx := context.Background()
	req := s.validCreateRequest()
	req.EmployeeID = strPtr("emp-missing")

	s.vehicleRepo.On("Exists", ctx, "veh-1").Return(true, nil).Once()
	s.employeeRepo.On("Exists", ctx, "emp-missing").Return(false, nil).Once()

	txn, err := s.service.CreateTransaction(ctx, req, "user-1")

	s.Require().Error(err)
	s.Nil(txn)
	s.ErrorIs(err, apperrors.ErrMissingReference)
}

func (s *VehicleTransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := s.validCreateRequest()
	req.Amount = decimal.Zero

	s.vehicleRepo.On("Exists", ctx, "veh-1").Return(true, nil).Once()

	txn, err := s.service.CreateTransaction(ctx, req, "user-1")

	s.Require().Error(err)
	s.Nil(txn)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Contains(err.Error(), "amount must be positive")
}

func (s *VehicleTransactionServiceTestSuite) TestCreateTransaction_FutureDate() {
	ctx := context.Background()
	req := s.validCreateRequest()
	req.TransactionDate = time.Now().AddDate(0, 0, 2).Format("2006-01-02")

	s.vehicleRepo.On("Exists", ctx, "veh-1").Return(true, nil).Once()

	txn, err := s.service.CreateTransaction(ctx, req, "user-1")

	s.Require().Error(err)
	s.Nil(txn)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Contains(err.Error(), "future")
}

func (s *VehicleTransactionServiceTestSuite) TestCreateTransaction_TooFarInPast() {
	ctx := context.Background()
	req := s.validCreateRequest()
	req.TransactionDate = time.Now().AddDate(-2, 0, 0).Format("2006-01-02")

	s.vehicleRepo.On("Exists", ctx, "veh-1").Return(true, nil).Once()

	txn, err := s.service.CreateTransaction(ctx, req, "user-1")

	s.Require().Error(err)
	s.Nil(txn)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Contains(err.Error(), "12 months")
}

func (s *VehicleTransactionServiceTestSuite) TestUpdateTransaction_DateChangeRederivesMonth() {
	ctx := context.Background()
	existing := &domain.VehicleTransaction{
		TransactionID:   "txn-1",
		VehicleID:       "veh-1",
		TransactionType: domain.Expense,
		Amount:          decimal.NewFromInt(200),
		TransactionDate: time.Now().AddDate(0, -2, 0),
		Month:           time.Now().AddDate(0, -2, 0).Format("2006-01"),
	}
	newDate := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	s.transactionRepo.On("FindTransactionByID", ctx, "txn-1").Return(existing, nil).Once()
	s.transactionRepo.On("UpdateTransaction", ctx, mock.AnythingOfType("domain.VehicleTransaction")).Return(nil).Once()

	txn, err := s.service.UpdateTransaction(ctx, "txn-1", dto.UpdateVehicleTransactionRequest{TransactionDate: &newDate}, "user-1")

	s.Require().NoError(err)
	s.Equal(newDate[:7], txn.Month)
	s.transactionRepo.AssertExpectations(s.T())
}

func (s *VehicleTransactionServiceTestSuite) TestListTransactions_UnknownVehicle() {
	ctx := context.Background()

	s.vehicleRepo.On("Exists", ctx, "veh-missing").Return(false, nil).Once()

	txns, err := s.service.ListTransactionsByVehicleID(ctx, "veh-missing")

	s.Require().Error(err)
	s.Nil(txns)
	s.ErrorIs(err, apperrors.ErrMissingReference)
}

func TestVehicleTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VehicleTransactionServiceTestSuite))
}
