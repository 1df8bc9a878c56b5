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
	"github.com/roadstead/vehicle_rental_app/internal/utils/calendar"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type VehicleServiceTestSuite struct {
	suite.Suite
	vehicleRepo     *MockVehicleRepository
	transactionRepo *MockVehicleTransactionRepository
	quoteRepo       *MockQuoteRepository
	service         portssvc.VehicleService
}

func (s *VehicleServiceTestSuite) SetupTest() {
	s.vehicleRepo = new(MockVehicleRepository)
	s.transactionRepo = new(MockVehicleTransactionRepository)
	s.quoteRepo = new(MockQuoteRepository)
	s.service = services.NewVehicleService(s.vehicleRepo, s.transactionRepo, s.quoteRepo)
}

func revenue(month string, amount int64) domain.VehicleTransaction {
	return domain.VehicleTransaction{
		TransactionType: domain.Revenue,
		Amount:          decimal.NewFromInt(amount),
		Month:           month,
	}
}

func expense(month string, amount int64) domain.VehicleTransaction {
	return domain.VehicleTransaction{
		TransactionType: domain.Expense,
		Amount:          decimal.NewFromInt(amount),
		Month:           month,
	}
}

func (s *VehicleServiceTestSuite) TestCreateVehicle_SetsActiveAndAudit() {
	ctx := context.Background()
	req := dto.CreateVehicleRequest{VehicleNumber: "KA-01-1234", Name: "Tempo Traveller"}

	s.vehicleRepo.On("IsNumberTaken", ctx, "KA-01-1234", "").Return(false, nil).Once()
	s.vehicleRepo.On("SaveVehicle", ctx, mock.AnythingOfType("domain.Vehicle")).Return(nil).Once()

	vehicle, err := s.service.CreateVehicle(ctx, req, "user-1")

	s.Require().NoError(err)
	s.True(vehicle.IsActive)
	s.Equal("user-1", vehicle.CreatedBy)
	s.vehicleRepo.AssertExpectations(s.T())
}

func (s *VehicleServiceTestSuite) TestCreateVehicle_DuplicateNumber() {
	ctx := context.Background()

	s.vehicleRepo.On("IsNumberTaken", ctx, "KA-01-1234", "").Return(true, nil).Once()

	vehicle, err := s.service.CreateVehicle(ctx, dto.CreateVehicleRequest{VehicleNumber: "KA-01-1234"}, "user-1")

	s.Require().Error(err)
	s.Nil(vehicle)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *VehicleServiceTestSuite) TestDeleteVehicle_BlockedByQuotes() {
	ctx := context.Background()

	s.quoteRepo.On("ListNumbersReferencingVehicle", ctx, "veh-1").Return([]string{"Q-001", "Q-002"}, nil).Once()

	err := s.service.DeleteVehicle(ctx, "veh-1")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrBlockedDelete)
	s.Equal("Cannot delete Vehicle as it is referenced in:\n- Quote Q-001\n- Quote Q-002", err.Error())
	s.vehicleRepo.AssertNotCalled(s.T(), "DeleteVehicle", mock.Anything, mock.Anything)
}

func (s *VehicleServiceTestSuite) TestDeleteVehicle_Unreferenced() {
	ctx := context.Background()

	s.quoteRepo.On("ListNumbersReferencingVehicle", ctx, "veh-1").Return([]string{}, nil).Once()
	s.vehicleRepo.On("DeleteVehicle", ctx, "veh-1").Return(nil).Once()

	s.Require().NoError(s.service.DeleteVehicle(ctx, "veh-1"))
	s.vehicleRepo.AssertExpectations(s.T())
}

func (s *VehicleServiceTestSuite) TestSummarize_MonthlyBucketsAndAllTime() {
	ctx := context.Background()
	vehicle := &domain.Vehicle{VehicleID: "veh-1"}
	txns := []domain.VehicleTransaction{
		revenue("2025-01", 600),
		revenue("2025-01", 400),
		expense("2025-01", 400),
		revenue("2025-02", 500),
	}

	s.vehicleRepo.On("FindVehicleByID", ctx, "veh-1").Return(vehicle, nil).Once()
	s.transactionRepo.On("ListTransactionsByVehicleID", ctx, "veh-1").Return(txns, nil).Once()

	summary, err := s.service.Summarize(ctx, "veh-1")

	s.Require().NoError(err)
	s.Require().Len(summary.Months, 2)

	jan := summary.Months[0]
	s.Equal("2025-01", jan.Month)
	s.True(jan.TotalRevenue.Equal(decimal.NewFromInt(1000)))
	s.True(jan.TotalExpenses.Equal(decimal.NewFromInt(400)))
	s.True(jan.Profit.Equal(decimal.NewFromInt(600)))
	s.Equal(3, jan.TransactionCount)

	feb := summary.Months[1]
	s.Equal("2025-02", feb.Month)
	s.True(feb.TotalRevenue.Equal(decimal.NewFromInt(500)))
	s.True(feb.Profit.Equal(decimal.NewFromInt(500)))

	s.True(summary.AllTimeRevenue.Equal(decimal.NewFromInt(1500)))
	s.True(summary.AllTimeExpenses.Equal(decimal.NewFromInt(400)))
	s.True(summary.AllTimeProfit.Equal(decimal.NewFromInt(1100)))

	// Historical-only data leaves the clock-relative views empty.
	s.Nil(summary.CurrentMonth)
	s.Nil(summary.LastMonth)
}

func (s *VehicleServiceTestSuite) TestSummarize_FallsBackToTransactionDateMonth() {
	ctx := context.Background()
	vehicle := &domain.Vehicle{VehicleID: "veh-1"}
	legacy := domain.VehicleTransaction{
		TransactionType: domain.Revenue,
		Amount:          decimal.NewFromInt(250),
		TransactionDate: time.Date(2024, time.November, 12, 0, 0, 0, 0, time.UTC),
		// Month intentionally empty, as on rows predating the column.
	}

	s.vehicleRepo.On("FindVehicleByID", ctx, "veh-1").Return(vehicle, nil).Once()
	s.transactionRepo.On("ListTransactionsByVehicleID", ctx, "veh-1").Return([]domain.VehicleTransaction{legacy}, nil).Once()

	summary, err := s.service.Summarize(ctx, "veh-1")

	s.Require().NoError(err)
	s.Require().Len(summary.Months, 1)
	s.Equal("2024-11", summary.Months[0].Month)
}

func (s *VehicleServiceTestSuite) TestSummarize_CurrentAndLastMonthResolved() {
	ctx := context.Background()
	vehicle := &domain.Vehicle{VehicleID: "veh-1"}
	now := time.Now()
	txns := []domain.VehicleTransaction{
		revenue(calendar.Key(now), 300),
		expense(calendar.PreviousKey(now), 100),
	}

	s.vehicleRepo.On("FindVehicleByID", ctx, "veh-1").Return(vehicle, nil).Once()
	s.transactionRepo.On("ListTransactionsByVehicleID", ctx, "veh-1").Return(txns, nil).Once()

	summary, err := s.service.Summarize(ctx, "veh-1")

	s.Require().NoError(err)
	s.Require().NotNil(summary.CurrentMonth)
	s.True(summary.CurrentMonth.TotalRevenue.Equal(decimal.NewFromInt(300)))
	s.Require().NotNil(summary.LastMonth)
	s.True(summary.LastMonth.TotalExpenses.Equal(decimal.NewFromInt(100)))
}

func (s *VehicleServiceTestSuite) TestSummarize_VehicleNotFound() {
	ctx := context.Background()

	s.vehicleRepo.On("FindVehicleByID", ctx, "veh-missing").Return(nil, apperrors.NewNotFoundError("vehicle not found")).Once()

	summary, err := s.service.Summarize(ctx, "veh-missing")

	s.Require().Error(err)
	s.Nil(summary)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.transactionRepo.AssertNotCalled(s.T(), "ListTransactionsByVehicleID", mock.Anything, mock.Anything)
}

func (s *VehicleServiceTestSuite) TestSummarize_NoTransactions() {
	ctx := context.Background()
	vehicle := &domain.Vehicle{VehicleID: "veh-1"}

	s.vehicleRepo.On("FindVehicleByID", ctx, "veh-1").Return(vehicle, nil).Once()
	s.transactionRepo.On("ListTransactionsByVehicleID", ctx, "veh-1").Return([]domain.VehicleTransaction{}, nil).Once()

	summary, err := s.service.Summarize(ctx, "veh-1")

	s.Require().NoError(err)
	s.Empty(summary.Months)
	s.True(summary.AllTimeProfit.Equal(decimal.Zero))
	s.Nil(summary.CurrentMonth)
	s.Nil(summary.LastMonth)
}

func TestVehicleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VehicleServiceTestSuite))
}
