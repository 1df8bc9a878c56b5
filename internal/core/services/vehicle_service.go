package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/roadstead/vehicle_rental_app/internal/apperrors"
	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	portsrepo "github.com/roadstead/vehicle_rental_app/internal/core/ports/repositories"
	portssvc "github.com/roadstead/vehicle_rental_app/internal/core/ports/services"
	"github.com/roadstead/vehicle_rental_app/internal/dto"
	"github.com/roadstead/vehicle_rental_app/internal/utils/calendar"
)

// vehicleService implements the VehicleService interface. Besides fleet CRUD
// it derives the per-vehicle profitability view from the transaction stream.
type vehicleService struct {
	BaseService
	vehicleRepo     portsrepo.VehicleRepository
	transactionRepo portsrepo.VehicleTransactionRepository
	quoteRepo       portsrepo.QuoteRepository
}

// NewVehicleService creates a new vehicle service.
func NewVehicleService(
	vehicleRepo portsrepo.VehicleRepository,
	transactionRepo portsrepo.VehicleTransactionRepository,
	quoteRepo portsrepo.QuoteRepository,
) portssvc.VehicleService {
	return &vehicleService{
		vehicleRepo:     vehicleRepo,
		transactionRepo: transactionRepo,
		quoteRepo:       quoteRepo,
	}
}

var _ portssvc.VehicleService = (*vehicleService)(nil)

func (s *vehicleService) CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest, userID string) (*domain.Vehicle, error) {
	taken, err := s.vehicleRepo.IsNumberTaken(ctx, req.VehicleNumber, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to check vehicle number uniqueness", slog.String("vehicle_number", req.VehicleNumber))
		return nil, err
	}
	if taken {
		return nil, apperrors.NewDuplicateKeyError("Vehicle", req.VehicleNumber)
	}

	now := time.Now()
	vehicle := domain.Vehicle{
		VehicleID:     uuid.NewString(),
		VehicleNumber: req.VehicleNumber,
		Name:          req.Name,
		Model:         req.Model,
		SeatingCap:    req.SeatingCap,
		DailyRate:     req.DailyRate,
		MonthlyRate:   req.MonthlyRate,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.vehicleRepo.SaveVehicle(ctx, vehicle); err != nil {
		s.LogError(ctx, err, "Failed to create vehicle", slog.String("vehicle_number", vehicle.VehicleNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Vehicle created", slog.String("vehicle_id", vehicle.VehicleID), slog.String("vehicle_number", vehicle.VehicleNumber))
	return &vehicle, nil
}

func (s *vehicleService) GetVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	return s.vehicleRepo.FindVehicleByID(ctx, vehicleID)
}

func (s *vehicleService) ListVehicles(ctx context.Context, limit, offset int) ([]domain.Vehicle, error) {
	vehicles, err := s.vehicleRepo.ListVehicles(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vehicles")
		return nil, err
	}
	if vehicles == nil {
		return []domain.Vehicle{}, nil
	}
	return vehicles, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicleID string, req dto.UpdateVehicleRequest, userID string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if req.VehicleNumber != nil {
		taken, err := s.vehicleRepo.IsNumberTaken(ctx, *req.VehicleNumber, vehicleID)
		if err != nil {
			s.LogError(ctx, err, "Failed to check vehicle number uniqueness", slog.String("vehicle_number", *req.VehicleNumber))
			return nil, err
		}
		if taken {
			return nil, apperrors.NewDuplicateKeyError("Vehicle", *req.VehicleNumber)
		}
		vehicle.VehicleNumber = *req.VehicleNumber
	}
	if req.Name != nil {
		vehicle.Name = *req.Name
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.SeatingCap != nil {
		vehicle.SeatingCap = *req.SeatingCap
	}
	if req.DailyRate != nil {
		vehicle.DailyRate = *req.DailyRate
	}
	if req.MonthlyRate != nil {
		vehicle.MonthlyRate = *req.MonthlyRate
	}
	if req.IsActive != nil {
		vehicle.IsActive = *req.IsActive
	}

	vehicle.LastUpdatedAt = time.Now()
	vehicle.LastUpdatedBy = userID

	if err := s.vehicleRepo.UpdateVehicle(ctx, *vehicle); err != nil {
		s.LogError(ctx, err, "Failed to update vehicle", slog.String("vehicle_id", vehicleID))
		return nil, err
	}

	s.LogInfo(ctx, "Vehicle updated", slog.String("vehicle_id", vehicleID))
	return vehicle, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, vehicleID string) error {
	numbers, err := s.quoteRepo.ListNumbersReferencingVehicle(ctx, vehicleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to scan quotes referencing vehicle", slog.String("vehicle_id", vehicleID))
		return err
	}
	if len(numbers) > 0 {
		refs := make([]apperrors.Reference, len(numbers))
		for i, number := range numbers {
			refs[i] = apperrors.Reference{Type: "Quote", Number: number}
		}
		return apperrors.NewBlockedDeleteError("Vehicle", refs)
	}

	if err := s.vehicleRepo.DeleteVehicle(ctx, vehicleID); err != nil {
		s.LogError(ctx, err, "Failed to delete vehicle", slog.String("vehicle_id", vehicleID))
		return err
	}

	s.LogInfo(ctx, "Vehicle deleted", slog.String("vehicle_id", vehicleID))
	return nil
}

// Summarize rebuilds the vehicle's profitability view from scratch. Each
// transaction lands in the bucket named by its stored month key, falling back
// to the calendar month of its date for rows that never carried one. The
// current and previous calendar months are resolved against the clock at
// request time and stay nil when their buckets are empty.
func (s *vehicleService) Summarize(ctx context.Context, vehicleID string) (*domain.ProfitabilitySummary, error) {
	if _, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID); err != nil {
		return nil, err
	}

	txns, err := s.transactionRepo.ListTransactionsByVehicleID(ctx, vehicleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for summary", slog.String("vehicle_id", vehicleID))
		return nil, err
	}

	summary := buildProfitabilitySummary(vehicleID, txns, time.Now())
	return summary, nil
}

// buildProfitabilitySummary folds a transaction stream into monthly buckets
// plus all-time totals. The all-time figures are summed over the raw stream,
// independent of how rows bucket into months.
func buildProfitabilitySummary(vehicleID string, txns []domain.VehicleTransaction, now time.Time) *domain.ProfitabilitySummary {
	summary := &domain.ProfitabilitySummary{
		VehicleID: vehicleID,
		Months:    []domain.MonthlySummary{},
	}

	buckets := make(map[string]*domain.MonthlySummary)
	for i := range txns {
		txn := &txns[i]

		month := txn.Month
		if month == "" {
			month = calendar.Key(txn.TransactionDate)
		}

		bucket, ok := buckets[month]
		if !ok {
			bucket = &domain.MonthlySummary{Month: month}
			buckets[month] = bucket
		}
		bucket.TransactionCount++

		switch txn.TransactionType {
		case domain.Revenue:
			bucket.TotalRevenue = bucket.TotalRevenue.Add(txn.Amount)
			summary.AllTimeRevenue = summary.AllTimeRevenue.Add(txn.Amount)
		case domain.Expense:
			bucket.TotalExpenses = bucket.TotalExpenses.Add(txn.Amount)
			summary.AllTimeExpenses = summary.AllTimeExpenses.Add(txn.Amount)
		}
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	// Month keys are zero-padded YYYY-MM, so lexical order is chronological.
	sort.Strings(keys)

	for _, key := range keys {
		bucket := buckets[key]
		bucket.Profit = bucket.TotalRevenue.Sub(bucket.TotalExpenses)
		summary.Months = append(summary.Months, *bucket)
	}

	summary.AllTimeProfit = summary.AllTimeRevenue.Sub(summary.AllTimeExpenses)

	if bucket, ok := buckets[calendar.Key(now)]; ok {
		summary.CurrentMonth = bucket
	}
	if bucket, ok := buckets[calendar.PreviousKey(now)]; ok {
		summary.LastMonth = bucket
	}

	return summary
}
