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

type PayslipServiceTestSuite struct {
	suite.Suite
	payslipRepo  *MockPayslipRepository
	employeeRepo *MockEmployeeRepository
	service      portssvc.PayslipService
}

func (s *PayslipServiceTestSuite) SetupTest() {
	s.payslipRepo = new(MockPayslipRepository)
	s.employeeRepo = new(MockEmployeeRepository)
	s.service = services.NewPayslipService(s.payslipRepo, s.employeeRepo)
}

func (s *PayslipServiceTestSuite) TestCreatePayslip_NetPayDerived() {
	ctx := context.Background()
	req := dto.CreatePayslipRequest{
		Number:      "PS-2025-01-001",
		EmployeeID:  "emp-1",
		Period:      "2025-01",
		BasicSalary: decimal.NewFromInt(30000),
		Allowances:  decimal.NewFromInt(5000),
		Deductions:  decimal.NewFromInt(2000),
	}

	s.payslipRepo.On("IsNumberTaken", ctx, "PS-2025-01-001", "").Return(false, nil).Once()
	s.employeeRepo.On("Exists", ctx, "emp-1").Return(true, nil).Once()
	s.payslipRepo.On("SavePayslip", ctx, mock.AnythingOfType("domain.Payslip")).Return(nil).Once()

	payslip, err := s.service.CreatePayslip(ctx, req, "user-1")

	s.Require().NoError(err)
	s.True(payslip.NetPay.Equal(decimal.NewFromInt(33000)))
	s.payslipRepo.AssertExpectations(s.T())
}

func (s *PayslipServiceTestSuite) TestCreatePayslip_DuplicateNumber() {
	ctx := context.Background()
	req := dto.CreatePayslipRequest{Number: "PS-001", EmployeeID: "emp-1", Period: "2025-01"}

	s.payslipRepo.On("IsNumberTaken", ctx, "PS-001", "").Return(true, nil).Once()

	payslip, err := s.service.CreatePayslip(ctx, req, "user-1")

	s.Require().Error(err)
	s.Nil(payslip)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *PayslipServiceTestSuite) TestCreatePayslip_MissingEmployee() {
	ctx := context.Background()
	req := dto.CreatePayslipRequest{Number: "PS-001", EmployeeID: "emp-missing", Period: "2025-01"}

	s.payslipRepo.On("IsNumberTaken", ctx, "PS-001", "").Return(false, nil).Once()
	s.employeeRepo.On("Exists", ctx, "emp-missing").Return(false, nil).Once()

	payslip, err := s.service.CreatePayslip(ctx, req, "user-1")

	s.Require().Error(err)
	s.Nil(payslip)
	s.ErrorIs(err, apperrors.ErrMissingReference)
}

func (s *PayslipServiceTestSuite) TestUpdatePayslip_NetPayRecomputed() {
	ctx := context.Background()
	existing := &domain.Payslip{
		PayslipID:   "ps-1",
		Number:      "PS-001",
		EmployeeID:  "emp-1",
		BasicSalary: decimal.NewFromInt(30000),
		Allowances:  decimal.NewFromInt(5000),
		Deductions:  decimal.NewFromInt(2000),
		NetPay:      decimal.NewFromInt(33000),
	}
	newDeductions := decimal.NewFromInt(4000)

	s.payslipRepo.On("FindPayslipByID", ctx, "ps-1").Return(existing, nil).Once()
	s.payslipRepo.On("UpdatePayslip", ctx, mock.AnythingOfType("domain.Payslip")).Return(nil).Once()

	payslip, err := s.service.UpdatePayslip(ctx, "ps-1", dto.UpdatePayslipRequest{Deductions: &newDeductions}, "user-1")

	s.Require().NoError(err)
	s.True(payslip.NetPay.Equal(decimal.NewFromInt(31000)))
}

func TestPayslipServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayslipServiceTestSuite))
}
