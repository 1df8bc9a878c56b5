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

const invoiceItemsTable = "invoice_items"

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepository {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.InvoiceRepository = (*PgxInvoiceRepository)(nil)

func (r *PgxInvoiceRepository) IsNumberTaken(ctx context.Context, number, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM invoices WHERE number = $1 AND invoice_id <> $2);`
	var taken bool
	if err := r.Pool.QueryRow(ctx, query, number, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("failed to check invoice number %s: %w", number, err)
	}
	return taken, nil
}

// CreateInvoice inserts the invoice header and its line items in one database
// transaction.
func (r *PgxInvoiceRepository) CreateInvoice(ctx context.Context, invoice domain.Invoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO invoices (invoice_id, number, invoice_date, due_date, customer_id, quote_id,
			purchase_order_id, amount_received, notes, sub_total, total_tax, total,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = tx.Exec(ctx, query,
		invoice.InvoiceID,
		invoice.Number,
		invoice.InvoiceDate,
		invoice.DueDate,
		invoice.CustomerID,
		invoice.QuoteID,
		invoice.PurchaseOrderID,
		invoice.AmountReceived,
		invoice.Notes,
		invoice.Totals.SubTotal,
		invoice.Totals.TotalTax,
		invoice.Totals.Total,
		invoice.CreatedAt,
		invoice.CreatedBy,
		invoice.LastUpdatedAt,
		invoice.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "Invoice", invoice.Number)
	}

	if err := insertLineItems(ctx, tx, invoiceItemsTable, invoice.InvoiceID, invoice.Items); err != nil {
		return translateWriteError(err, "Invoice", invoice.Number)
	}

	return r.Commit(ctx, tx)
}

// UpdateInvoice rewrites the header and, when replaceItems is set, swaps the
// stored item set inside the same transaction.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice, replaceItems bool) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE invoices
		SET number = $2, invoice_date = $3, due_date = $4, customer_id = $5, quote_id = $6,
			purchase_order_id = $7, amount_received = $8, notes = $9,
			sub_total = $10, total_tax = $11, total = $12, last_updated_at = $13, last_updated_by = $14
		WHERE invoice_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		invoice.InvoiceID,
		invoice.Number,
		invoice.InvoiceDate,
		invoice.DueDate,
		invoice.CustomerID,
		invoice.QuoteID,
		invoice.PurchaseOrderID,
		invoice.AmountReceived,
		invoice.Notes,
		invoice.Totals.SubTotal,
		invoice.Totals.TotalTax,
		invoice.Totals.Total,
		invoice.LastUpdatedAt,
		invoice.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "Invoice", invoice.Number)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if replaceItems {
		if err := deleteLineItems(ctx, tx, invoiceItemsTable, invoice.InvoiceID); err != nil {
			return err
		}
		if err := insertLineItems(ctx, tx, invoiceItemsTable, invoice.InvoiceID, invoice.Items); err != nil {
			return translateWriteError(err, "Invoice", invoice.Number)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT invoice_id, number, invoice_date, due_date, customer_id, quote_id,
			purchase_order_id, amount_received, notes, sub_total, total_tax, total,
			created_at, created_by, last_updated_at, last_updated_by
		FROM invoices
		WHERE invoice_id = $1;
	`
	invoice, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	invoice.Items, err = loadLineItems(ctx, r.Pool, invoiceItemsTable, invoiceID)
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, limit, offset int) ([]domain.Invoice, error) {
	query := `
		SELECT invoice_id, number, invoice_date, due_date, customer_id, quote_id,
			purchase_order_id, amount_received, notes, sub_total, total_tax, total,
			created_at, created_by, last_updated_at, last_updated_by
		FROM invoices
		ORDER BY invoice_date DESC, number DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, *invoice)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read invoices: %w", err)
	}

	for i := range invoices {
		items, err := loadLineItems(ctx, r.Pool, invoiceItemsTable, invoices[i].InvoiceID)
		if err != nil {
			return nil, err
		}
		invoices[i].Items = items
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) Exists(ctx context.Context, invoiceID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM invoices WHERE invoice_id = $1);`, invoiceID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check invoice existence %s: %w", invoiceID, err)
	}
	return exists, nil
}

func (r *PgxInvoiceRepository) ListNumbersByQuoteID(ctx context.Context, quoteID string) ([]string, error) {
	query := `SELECT number FROM invoices WHERE quote_id = $1 ORDER BY number;`
	rows, err := r.Pool.Query(ctx, query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices for quote %s: %w", quoteID, err)
	}
	defer rows.Close()

	numbers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (string, error) {
		var number string
		err := row.Scan(&number)
		return number, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan invoice numbers: %w", err)
	}
	return numbers, nil
}

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := row.Scan(
		&invoice.InvoiceID,
		&invoice.Number,
		&invoice.InvoiceDate,
		&invoice.DueDate,
		&invoice.CustomerID,
		&invoice.QuoteID,
		&invoice.PurchaseOrderID,
		&invoice.AmountReceived,
		&invoice.Notes,
		&invoice.Totals.SubTotal,
		&invoice.Totals.TotalTax,
		&invoice.Totals.Total,
		&invoice.CreatedAt,
		&invoice.CreatedBy,
		&invoice.LastUpdatedAt,
		&invoice.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}
