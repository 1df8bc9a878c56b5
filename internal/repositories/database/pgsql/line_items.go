package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
)

// The three document types keep structurally identical item tables
// (quote_items, invoice_items, purchase_order_items). These helpers run the
// shared item SQL against whichever table the calling repository names; the
// table name is always a compile-time constant, never user input.

func insertLineItems(ctx context.Context, q querier, table, documentID string, items []domain.LineItem) error {
	if len(items) == 0 {
		return nil
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (line_item_id, document_id, serial_number, vehicle_id, description, rental_basis,
			quantity, unit_price, tax_percent, gross_amount, tax_amount, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`, table)

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query,
			item.LineItemID,
			documentID,
			item.SerialNumber,
			item.VehicleID,
			item.Description,
			item.RentalBasis,
			item.Quantity,
			item.UnitPrice,
			item.TaxPercent,
			item.GrossAmount,
			item.TaxAmount,
			item.LineTotal,
		)
	}

	br := q.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert line items into %s: %w", table, err)
	}
	return nil
}

func deleteLineItems(ctx context.Context, q querier, table, documentID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE document_id = $1;`, table)
	if _, err := q.Exec(ctx, query, documentID); err != nil {
		return fmt.Errorf("failed to delete line items from %s: %w", table, err)
	}
	return nil
}

func loadLineItems(ctx context.Context, q querier, table, documentID string) ([]domain.LineItem, error) {
	query := fmt.Sprintf(`
		SELECT line_item_id, document_id, serial_number, vehicle_id, description, rental_basis,
			quantity, unit_price, tax_percent, gross_amount, tax_amount, line_total
		FROM %s
		WHERE document_id = $1
		ORDER BY serial_number;
	`, table)

	rows, err := q.Query(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items from %s: %w", table, err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LineItem, error) {
		var item domain.LineItem
		err := row.Scan(
			&item.LineItemID,
			&item.DocumentID,
			&item.SerialNumber,
			&item.VehicleID,
			&item.Description,
			&item.RentalBasis,
			&item.Quantity,
			&item.UnitPrice,
			&item.TaxPercent,
			&item.GrossAmount,
			&item.TaxAmount,
			&item.LineTotal,
		)
		return item, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan line items from %s: %w", table, err)
	}
	if items == nil {
		items = []domain.LineItem{}
	}
	return items, nil
}
