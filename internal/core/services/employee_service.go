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
)

// employeeService implements the EmployeeService interface.
type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepository
	payslipRepo  portsrepo.PayslipRepository
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(
	employeeRepo portsrepo.EmployeeRepository,
	payslipRepo portsrepo.PayslipRepository,
) portssvc.EmployeeService {
	return &employeeService{
		employeeRepo: employeeRepo,
		payslipRepo:  payslipRepo,
	}
}

var _ portssvc.EmployeeService = (*employeeService)(nil)

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, userID string) (*domain.Employee, error) {
	now := time.Now()
	employee := domain.Employee{
		EmployeeID:  uuid.NewString(),
		Name:        req.Name,
		Role:        req.Role,
		Phone:       req.Phone,
		Email:       req.Email,
		BasicSalary: req.BasicSalary,
		JoinedOn:    normalizeRef(req.JoinedOn),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to create employee", slog.String("name", employee.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Employee created", slog.String("employee_id", employee.EmployeeID))
	return &employee, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return s.employeeRepo.FindEmployeeByID(ctx, employeeID)
}

func (s *employeeService) ListEmployees(ctx context.Context, limit, offset int) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, err
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	return employees, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, userID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Role != nil {
		employee.Role = *req.Role
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.BasicSalary != nil {
		employee.BasicSalary = *req.BasicSalary
	}
	if req.JoinedOn != nil {
		employee.JoinedOn = normalizeRef(req.JoinedOn)
	}

	employee.LastUpdatedAt = time.Now()
	employee.LastUpdatedBy = userID

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Employee updated", slog.String("employee_id", employeeID))
	return employee, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	numbers, err := s.payslipRepo.ListNumbersByEmployeeID(ctx, employeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to scan payslips referencing employee", slog.String("employee_id", employeeID))
		return err
	}
	if len(numbers) > 0 {
		refs := make([]apperrors.Reference, len(numbers))
		for i, number := range numbers {
			refs[i] = apperrors.Reference{Type: "Payslip", Number: number}
		}
		return apperrors.NewBlockedDeleteError("Employee", refs)
	}

	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		s.LogError(ctx, err, "Failed to delete employee", slog.String("employee_id", employeeID))
		return err
	}

	s.LogInfo(ctx, "Employee deleted", slog.String("employee_id", employeeID))
	return nil
}
