package services_test

import (
	"context"
	"testing"

	"github.com/roadstead/vehicle_rental_app/internal/apperrors"
	portssvc "github.com/roadstead/vehicle_rental_app/internal/core/ports/services"
	"github.com/roadstead/vehicle_rental_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	employeeRepo *MockEmployeeRepository
	payslipRepo  *MockPayslipRepository
	service      portssvc.EmployeeService
}

func (s *EmployeeServiceTestSuite) SetupTest() {
	s.employeeRepo = new(MockEmployeeRepository)
	s.payslipRepo = new(MockPayslipRepository)
	s.service = services.NewEmployeeService(s.employeeRepo, s.payslipRepo)
}

func (s *EmployeeServiceTestSuite) TestDeleteEmployee_BlockedByPayslip() {
	ctx := context.Background()

	s.payslipRepo.On("ListNumbersByEmployeeID", ctx, "emp-1").Return([]string{"PS-001"}, nil).Once()

	err := s.service.DeleteEmployee(ctx, "emp-1")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrBlockedDelete)
	s.Equal("Cannot delete Employee as it is referenced in Payslip PS-001", err.Error())
	s.employeeRepo.AssertNotCalled(s.T(), "DeleteEmployee", mock.Anything, mock.Anything)
}

func (s *EmployeeServiceTestSuite) TestDeleteEmployee_Unreferenced() {
	ctx := context.Background()

	s.payslipRepo.On("ListNumbersByEmployeeID", ctx, "emp-1").Return([]string{}, nil).Once()
	s.employeeRepo.On("DeleteEmployee", ctx, "emp-1").Return(nil).Once()

	s.Require().NoError(s.service.DeleteEmployee(ctx, "emp-1"))
	s.employeeRepo.AssertExpectations(s.T())
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
