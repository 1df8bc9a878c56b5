package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/roadstead/vehicle_rental_app/internal/apperrors"
	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	portsrepo "github.com/roadstead/vehicle_rental_app/internal/core/ports/repositories"
)

type PgxVehicleRepository struct {
	BaseRepository
}

// newPgxVehicleRepository creates a new repository for fleet data.
func newPgxVehicleRepository(pool *pgxpool.Pool) portsrepo.VehicleRepository {
	return &PgxVehicleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.VehicleRepository = (*PgxVehicleRepository)(nil)

func (r *PgxVehicleRepository) IsNumberTaken(ctx context.Context, vehicleNumber, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM vehicles WHERE vehicle_number = $1 AND vehicle_id <> $2);`
	var taken bool
	if err := r.Pool.QueryRow(ctx, query, vehicleNumber, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("failed to check vehicle number %s: %w", vehicleNumber, err)
	}
	return taken, nil
}

func (r *PgxVehicleRepository) SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	query := `
		INSERT INTO vehicles (vehicle_id, vehicle_number, name, model, seating_cap, daily_rate,
			monthly_rate, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		vehicle.VehicleID,
		vehicle.VehicleNumber,
		vehicle.Name,
		vehicle.Model,
		vehicle.SeatingCap,
		vehicle.DailyRate,
		vehicle.MonthlyRate,
		vehicle.IsActive,
		vehicle.CreatedAt,
		vehicle.CreatedBy,
		vehicle.LastUpdatedAt,
		vehicle.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "Vehicle", vehicle.VehicleNumber)
	}
	return nil
}

func (r *PgxVehicleRepository) FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	query := `
		SELECT vehicle_id, vehicle_number, name, model, seating_cap, daily_rate,
			monthly_rate, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM vehicles
		WHERE vehicle_id = $1;
	`
	vehicle, err := scanVehicle(r.Pool.QueryRow(ctx, query, vehicleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle %s: %w", vehicleID, err)
	}
	return vehicle, nil
}

func (r *PgxVehicleRepository) ListVehicles(ctx context.Context, limit, offset int) ([]domain.Vehicle, error) {
	query := `
		SELECT vehicle_id, vehicle_number, name, model, seating_cap, daily_rate,
			monthly_rate, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM vehicles
		ORDER BY vehicle_number
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := []domain.Vehicle{}
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, *vehicle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *PgxVehicleRepository) UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	query := `
		UPDATE vehicles
		SET vehicle_number = $2, name = $3, model = $4, seating_cap = $5, daily_rate = $6,
			monthly_rate = $7, is_active = $8, last_updated_at = $9, last_updated_by = $10
		WHERE vehicle_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		vehicle.VehicleID,
		vehicle.VehicleNumber,
		vehicle.Name,
		vehicle.Model,
		vehicle.SeatingCap,
		vehicle.DailyRate,
		vehicle.MonthlyRate,
		vehicle.IsActive,
		vehicle.LastUpdatedAt,
		vehicle.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "Vehicle", vehicle.VehicleNumber)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVehicleRepository) DeleteVehicle(ctx context.Context, vehicleID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM vehicles WHERE vehicle_id = $1;`, vehicleID)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle %s: %w", vehicleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVehicleRepository) Exists(ctx context.Context, vehicleID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM vehicles WHERE vehicle_id = $1);`, vehicleID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check vehicle existence %s: %w", vehicleID, err)
	}
	return exists, nil
}

func scanVehicle(row pgx.Row) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	err := row.Scan(
		&vehicle.VehicleID,
		&vehicle.VehicleNumber,
		&vehicle.Name,
		&vehicle.Model,
		&vehicle.SeatingCap,
		&vehicle.DailyRate,
		&vehicle.MonthlyRate,
		&vehicle.IsActive,
		&vehicle.CreatedAt,
		&vehicle.CreatedBy,
		&vehicle.LastUpdatedAt,
		&vehicle.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}
