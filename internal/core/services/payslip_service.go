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

// payslipService implements the PayslipService interface. Net pay is derived
// on every write; whatever a client submits for it is discarded.
type payslipService struct {
	BaseService
	payslipRepo  portsrepo.PayslipRepository
	employeeRepo portsrepo.EmployeeRepository
}

// NewPayslipService creates a new payslip service.
func NewPayslipService(
	payslipRepo portsrepo.PayslipRepository,
	employeeRepo portsrepo.EmployeeRepository,
) portssvc.PayslipService {
	return &payslipService{
		payslipRepo:  payslipRepo,
		employeeRepo: employeeRepo,
	}
}

var _ portssvc.PayslipService = (*payslipService)(nil)

func (s *payslipService) CreatePayslip(ctx context.Context, req dto.CreatePayslipRequest, userID string) (*domain.Payslip, error) {
	taken, err := s.payslipRepo.IsNumberTaken(ctx, req.Number, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to check payslip number uniqueness", slog.String("number", req.Number))
		return nil, err
	}
	if taken {
		return nil, apperrors.NewDuplicateKeyError("Payslip", req.Number)
	}

	employeeID := req.EmployeeID
	if err := checkReference(ctx, "Employee", &employeeID, s.employeeRepo.Exists); err != nil {
		return nil, err
	}

	now := time.Now()
	payslip := domain.Payslip{
		PayslipID:   uuid.NewString(),
		Number:      req.Number,
		EmployeeID:  req.EmployeeID,
		Period:      req.Period,
		BasicSalary: req.BasicSalary,
		Allowances:  req.Allowances,
		Deductions:  req.Deductions,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	payslip.NetPay = payslip.ComputeNetPay()

	if err := s.payslipRepo.SavePayslip(ctx, payslip); err != nil {
		s.LogError(ctx, err, "Failed to create payslip", slog.String("number", payslip.Number))
		return nil, err
	}

	s.LogInfo(ctx, "Payslip created", slog.String("payslip_id", payslip.PayslipID), slog.String("number", payslip.Number))
	return &payslip, nil
}

func (s *payslipService) GetPayslipByID(ctx context.Context, payslipID string) (*domain.Payslip, error) {
	return s.payslipRepo.FindPayslipByID(ctx, payslipID)
}

func (s *payslipService) ListPayslips(ctx context.Context, limit, offset int) ([]domain.Payslip, error) {
	payslips, err := s.payslipRepo.ListPayslips(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payslips")
		return nil, err
	}
	if payslips == nil {
		return []domain.Payslip{}, nil
	}
	return payslips, nil
}

func (s *payslipService) UpdatePayslip(ctx context.Context, payslipID string, req dto.UpdatePayslipRequest, userID string) (*domain.Payslip, error) {
	payslip, err := s.payslipRepo.FindPayslipByID(ctx, payslipID)
	if err != nil {
		return nil, err
	}

	if req.Number != nil {
		taken, err := s.payslipRepo.IsNumberTaken(ctx, *req.Number, payslipID)
		if err != nil {
			s.LogError(ctx, err, "Failed to check payslip number uniqueness", slog.String("number", *req.Number))
			return nil, err
		}
		if taken {
			return nil, apperrors.NewDuplicateKeyError("Payslip", *req.Number)
		}
		payslip.Number = *req.Number
	}
	if req.Period != nil {
		payslip.Period = *req.Period
	}
	if req.BasicSalary != nil {
		payslip.BasicSalary = *req.BasicSalary
	}
	if req.Allowances != nil {
		payslip.Allowances = *req.Allowances
	}
	if req.Deductions != nil {
		payslip.Deductions = *req.Deductions
	}
	if req.Notes != nil {
		payslip.Notes = *req.Notes
	}
	payslip.NetPay = payslip.ComputeNetPay()

	payslip.LastUpdatedAt = time.Now()
	payslip.LastUpdatedBy = userID

	if err := s.payslipRepo.UpdatePayslip(ctx, *payslip); err != nil {
		s.LogError(ctx, err, "Failed to update payslip", slog.String("payslip_id", payslipID))
		return nil, err
	}

	s.LogInfo(ctx, "Payslip updated", slog.String("payslip_id", payslipID))
	return payslip, nil
}

func (s *payslipService) DeletePayslip(ctx context.Context, payslipID string) error {
	if err := s.payslipRepo.DeletePayslip(ctx, payslipID); err != nil {
		s.LogError(ctx, err, "Failed to delete payslip", slog.String("payslip_id", payslipID))
		return err
	}
	s.LogInfo(ctx, "Payslip deleted", slog.String("payslip_id", payslipID))
	return nil
}
