package services

import (
	"context"

	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	"github.com/roadstead/vehicle_rental_app/internal/dto"
)

// VehicleService manages the fleet and derives per-vehicle profitability.
type VehicleService interface {
	CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest, userID string) (*domain.Vehicle, error)
	GetVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, limit, offset int) ([]domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicleID string, req dto.UpdateVehicleRequest, userID string) (*domain.Vehicle, error)
	DeleteVehicle(ctx context.Context, vehicleID string) error
	// Summarize recomputes the vehicle's profitability from its transactions.
	Summarize(ctx context.Context, vehicleID string) (*domain.ProfitabilitySummary, error)
}

// VehicleTransactionService manages per-vehicle revenue and expense entries.
type VehicleTransactionService interface {
	CreateTransaction(ctx context.Context, req dto.CreateVehicleTransactionRequest, userID string) (*domain.VehicleTransaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.VehicleTransaction, error)
	ListTransactionsByVehicleID(ctx context.Context, vehicleID string) ([]domain.VehicleTransaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateVehicleTransactionRequest, userID string) (*domain.VehicleTransaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
}
