package repositories

import (
	"context"

	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
)

// VehicleRepository persists the fleet.
type VehicleRepository interface {
	IsNumberTaken(ctx context.Context, vehicleNumber, excludeID string) (bool, error)
	SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error
	FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, limit, offset int) ([]domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error
	DeleteVehicle(ctx context.Context, vehicleID string) error
	Exists(ctx context.Context, vehicleID string) (bool, error)
}

// VehicleTransactionRepository persists per-vehicle revenue and expense
// entries. The stream is append-mostly; rows change only via direct edit or
// delete of a single transaction.
type VehicleTransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.VehicleTransaction) error
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.VehicleTransaction, error)
	ListTransactionsByVehicleID(ctx context.Context, vehicleID string) ([]domain.VehicleTransaction, error)
	UpdateTransaction(ctx context.Context, txn domain.VehicleTransaction) error
	DeleteTransaction(ctx context.Context, transactionID string) error
}
