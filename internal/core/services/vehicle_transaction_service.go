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
	"github.com/roadstead/vehicle_rental_app/internal/utils/calendar"
)

// vehicleTransactionService implements the VehicleTransactionService
// interface. The vehicle reference is mandatory and enforced; the employee
// and invoice references are advisory, checked on write but never blocking
// deletes on their side.
type vehicleTransactionService struct {
	BaseService
	transactionRepo portsrepo.VehicleTransactionRepository
	vehicleRepo     portsrepo.VehicleRepository
	employeeRepo    portsrepo.EmployeeRepository
	invoiceRepo     portsrepo.InvoiceRepository
}

// NewVehicleTransactionService creates a new vehicle transaction service.
func NewVehicleTransactionService(
	transactionRepo portsrepo.VehicleTransactionRepository,
	vehicleRepo portsrepo.VehicleRepository,
	employeeRepo portsrepo.EmployeeRepository,
	invoiceRepo portsrepo.InvoiceRepository,
) portssvc.VehicleTransactionService {
	return &vehicleTransactionService{
		transactionRepo: transactionRepo,
		vehicleRepo:     vehicleRepo,
		employeeRepo:    employeeRepo,
		invoiceRepo:     invoiceRepo,
	}
}

var _ portssvc.VehicleTransactionService = (*vehicleTransactionService)(nil)

func (s *vehicleTransactionService) CreateTransaction(ctx context.Context, req dto.CreateVehicleTransactionRequest, userID string) (*domain.VehicleTransaction, error) {
	vehicleID := req.VehicleID
	if err := checkReference(ctx, "Vehicle", &vehicleID, s.vehicleRepo.Exists); err != nil {
		return nil, err
	}
	if err := checkReference(ctx, "Employee", req.EmployeeID, s.employeeRepo.Exists); err != nil {
		return nil, err
	}
	if err := checkReference(ctx, "Invoice", req.InvoiceID, s.invoiceRepo.Exists); err != nil {
		return nil, err
	}

	transactionDate, err := time.Parse(dateLayout, req.TransactionDate)
	if err != nil {
		return nil, apperrors.NewValidationError("transaction date must be formatted as YYYY-MM-DD")
	}

	month := req.Month
	if month == "" {
		month = calendar.KeyFromDateString(req.TransactionDate)
	}

	now := time.Now()
	txn := domain.VehicleTransaction{
		TransactionID:   uuid.NewString(),
		VehicleID:       req.VehicleID,
		TransactionType: domain.TransactionType(req.TransactionType),
		Amount:          req.Amount,
		TransactionDate: transactionDate,
		Month:           month,
		Category:        req.Category,
		Description:     req.Description,
		EmployeeID:      normalizeRef(req.EmployeeID),
		InvoiceID:       normalizeRef(req.InvoiceID),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := txn.Validate(now); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to create vehicle transaction", slog.String("vehicle_id", txn.VehicleID))
		return nil, err
	}

	s.LogInfo(ctx, "Vehicle transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("vehicle_id", txn.VehicleID),
		slog.String("type", string(txn.TransactionType)))
	return &txn, nil
}

func (s *vehicleTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.VehicleTransaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

func (s *vehicleTransactionService) ListTransactionsByVehicleID(ctx context.Context, vehicleID string) ([]domain.VehicleTransaction, error) {
	if err := checkReference(ctx, "Vehicle", &vehicleID, s.vehicleRepo.Exists); err != nil {
		return nil, err
	}
	txns, err := s.transactionRepo.ListTransactionsByVehicleID(ctx, vehicleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vehicle transactions", slog.String("vehicle_id", vehicleID))
		return nil, err
	}
	if txns == nil {
		return []domain.VehicleTransaction{}, nil
	}
	return txns, nil
}

func (s *vehicleTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateVehicleTransactionRequest, userID string) (*domain.VehicleTransaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.TransactionType != nil {
		txn.TransactionType = domain.TransactionType(*req.TransactionType)
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	dateChanged := false
	if req.TransactionDate != nil {
		parsed, err := time.Parse(dateLayout, *req.TransactionDate)
		if err != nil {
			return nil, apperrors.NewValidationError("transaction date must be formatted as YYYY-MM-DD")
		}
		txn.TransactionDate = parsed
		dateChanged = true
	}
	if req.Month != nil {
		txn.Month = *req.Month
	} else if dateChanged {
		// A new date without an explicit month re-derives the bucket, so the
		// row cannot drift into a month it no longer belongs to.
		txn.Month = calendar.Key(txn.TransactionDate)
	}
	if req.Category != nil {
		txn.Category = *req.Category
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.EmployeeID != nil {
		if err := checkReference(ctx, "Employee", req.EmployeeID, s.employeeRepo.Exists); err != nil {
			return nil, err
		}
		txn.EmployeeID = normalizeRef(req.EmployeeID)
	}
	if req.InvoiceID != nil {
		if err := checkReference(ctx, "Invoice", req.InvoiceID, s.invoiceRepo.Exists); err != nil {
			return nil, err
		}
		txn.InvoiceID = normalizeRef(req.InvoiceID)
	}

	now := time.Now()
	if err := txn.Validate(now); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = userID

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update vehicle transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Vehicle transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *vehicleTransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete vehicle transaction", slog.String("transaction_id", transactionID))
		return err
	}
	s.LogInfo(ctx, "Vehicle transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
