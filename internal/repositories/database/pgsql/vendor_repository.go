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

type PgxVendorRepository struct {
	BaseRepository
}

// newPgxVendorRepository creates a new repository for vendor data.
func newPgxVendorRepository(pool *pgxpool.Pool) portsrepo.VendorRepository {
	return &PgxVendorRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.VendorRepository = (*PgxVendorRepository)(nil)

func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	query := `
		INSERT INTO vendors (vendor_id, name, phone, email, address, tax_number,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		vendor.VendorID,
		vendor.Name,
		vendor.Phone,
		vendor.Email,
		vendor.Address,
		vendor.TaxNumber,
		vendor.CreatedAt,
		vendor.CreatedBy,
		vendor.LastUpdatedAt,
		vendor.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save vendor %s: %w", vendor.VendorID, err)
	}
	return nil
}

func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	query := `
		SELECT vendor_id, name, phone, email, address, tax_number,
			created_at, created_by, last_updated_at, last_updated_by
		FROM vendors
		WHERE vendor_id = $1;
	`
	vendor, err := scanVendor(r.Pool.QueryRow(ctx, query, vendorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vendor %s: %w", vendorID, err)
	}
	return vendor, nil
}

func (r *PgxVendorRepository) ListVendors(ctx context.Context, limit, offset int) ([]domain.Vendor, error) {
	query := `
		SELECT vendor_id, name, phone, email, address, tax_number,
			created_at, created_by, last_updated_at, last_updated_by
		FROM vendors
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer rows.Close()

	vendors := []domain.Vendor{}
	for rows.Next() {
		vendor, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		vendors = append(vendors, *vendor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vendors: %w", err)
	}
	return vendors, nil
}

func (r *PgxVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	query := `
		UPDATE vendors
		SET name = $2, phone = $3, email = $4, address = $5, tax_number = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE vendor_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		vendor.VendorID,
		vendor.Name,
		vendor.Phone,
		vendor.Email,
		vendor.Address,
		vendor.TaxNumber,
		vendor.LastUpdatedAt,
		vendor.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update vendor %s: %w", vendor.VendorID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVendorRepository) DeleteVendor(ctx context.Context, vendorID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM vendors WHERE vendor_id = $1;`, vendorID)
	if err != nil {
		return fmt.Errorf("failed to delete vendor %s: %w", vendorID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVendorRepository) Exists(ctx context.Context, vendorID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM vendors WHERE vendor_id = $1);`, vendorID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check vendor existence %s: %w", vendorID, err)
	}
	return exists, nil
}

func scanVendor(row pgx.Row) (*domain.Vendor, error) {
	var vendor domain.Vendor
	err := row.Scan(
		&vendor.VendorID,
		&vendor.Name,
		&vendor.Phone,
		&vendor.Email,
		&vendor.Address,
		&vendor.TaxNumber,
		&vendor.CreatedAt,
		&vendor.CreatedBy,
		&vendor.LastUpdatedAt,
		&vendor.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}
