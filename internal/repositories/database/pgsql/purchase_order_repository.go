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

const purchaseOrderItemsTable = "purchase_order_items"

type PgxPurchaseOrderRepository struct {
	BaseRepository
}

// newPgxPurchaseOrderRepository creates a new repository for purchase order data.
func newPgxPurchaseOrderRepository(pool *pgxpool.Pool) portsrepo.PurchaseOrderRepository {
	return &PgxPurchaseOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PurchaseOrderRepository = (*PgxPurchaseOrderRepository)(nil)

func (r *PgxPurchaseOrderRepository) IsNumberTaken(ctx context.Context, number, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM purchase_orders WHERE number = $1 AND purchase_order_id <> $2);`
	var taken bool
	if err := r.Pool.QueryRow(ctx, query, number, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("failed to check purchase order number %s: %w", number, err)
	}
	return taken, nil
}

// CreatePurchaseOrder inserts the order header and its line items in one
// database transaction.
func (r *PgxPurchaseOrderRepository) CreatePurchaseOrder(ctx context.Context, order domain.PurchaseOrder) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO purchase_orders (purchase_order_id, number, order_date, vendor_id, delivery_date, notes,
			sub_total, total_tax, total, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, query,
		order.PurchaseOrderID,
		order.Number,
		order.OrderDate,
		order.VendorID,
		order.DeliveryDate,
		order.Notes,
		order.Totals.SubTotal,
		order.Totals.TotalTax,
		order.Totals.Total,
		order.CreatedAt,
		order.CreatedBy,
		order.LastUpdatedAt,
		order.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "Purchase Order", order.Number)
	}

	if err := insertLineItems(ctx, tx, purchaseOrderItemsTable, order.PurchaseOrderID, order.Items); err != nil {
		return translateWriteError(err, "Purchase Order", order.Number)
	}

	return r.Commit(ctx, tx)
}

// UpdatePurchaseOrder rewrites the header and, when replaceItems is set, swaps
// the stored item set inside the same transaction.
func (r *PgxPurchaseOrderRepository) UpdatePurchaseOrder(ctx context.Context, order domain.PurchaseOrder, replaceItems bool) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE purchase_orders
		SET number = $2, order_date = $3, vendor_id = $4, delivery_date = $5, notes = $6,
			sub_total = $7, total_tax = $8, total = $9, last_updated_at = $10, last_updated_by = $11
		WHERE purchase_order_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		order.PurchaseOrderID,
		order.Number,
		order.OrderDate,
		order.VendorID,
		order.DeliveryDate,
		order.Notes,
		order.Totals.SubTotal,
		order.Totals.TotalTax,
		order.Totals.Total,
		order.LastUpdatedAt,
		order.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "Purchase Order", order.Number)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if replaceItems {
		if err := deleteLineItems(ctx, tx, purchaseOrderItemsTable, order.PurchaseOrderID); err != nil {
			return err
		}
		if err := insertLineItems(ctx, tx, purchaseOrderItemsTable, order.PurchaseOrderID, order.Items); err != nil {
			return translateWriteError(err, "Purchase Order", order.Number)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPurchaseOrderRepository) FindPurchaseOrderByID(ctx context.Context, orderID string) (*domain.PurchaseOrder, error) {
	query := `
		SELECT purchase_order_id, number, order_date, vendor_id, delivery_date, notes,
			sub_total, total_tax, total, created_at, created_by, last_updated_at, last_updated_by
		FROM purchase_orders
		WHERE purchase_order_id = $1;
	`
	order, err := scanPurchaseOrder(r.Pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase order %s: %w", orderID, err)
	}

	order.Items, err = loadLineItems(ctx, r.Pool, purchaseOrderItemsTable, orderID)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *PgxPurchaseOrderRepository) ListPurchaseOrders(ctx context.Context, limit, offset int) ([]domain.PurchaseOrder, error) {
	query := `
		SELECT purchase_order_id, number, order_date, vendor_id, delivery_date, notes,
			sub_total, total_tax, total, created_at, created_by, last_updated_at, last_updated_by
		FROM purchase_orders
		ORDER BY order_date DESC, number DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.PurchaseOrder{}
	for rows.Next() {
		order, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase order: %w", err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read purchase orders: %w", err)
	}

	for i := range orders {
		items, err := loadLineItems(ctx, r.Pool, purchaseOrderItemsTable, orders[i].PurchaseOrderID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PgxPurchaseOrderRepository) DeletePurchaseOrder(ctx context.Context, orderID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM purchase_orders WHERE purchase_order_id = $1;`, orderID)
	if err != nil {
		return fmt.Errorf("failed to delete purchase order %s: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPurchaseOrderRepository) Exists(ctx context.Context, orderID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM purchase_orders WHERE purchase_order_id = $1);`, orderID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check purchase order existence %s: %w", orderID, err)
	}
	return exists, nil
}

func scanPurchaseOrder(row pgx.Row) (*domain.PurchaseOrder, error) {
	var order domain.PurchaseOrder
	err := row.Scan(
		&order.PurchaseOrderID,
		&order.Number,
		&order.OrderDate,
		&order.VendorID,
		&order.DeliveryDate,
		&order.Notes,
		&order.Totals.SubTotal,
		&order.Totals.TotalTax,
		&order.Totals.Total,
		&order.CreatedAt,
		&order.CreatedBy,
		&order.LastUpdatedAt,
		&order.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
