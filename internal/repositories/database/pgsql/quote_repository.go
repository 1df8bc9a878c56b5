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

const quoteItemsTable = "quote_items"

type PgxQuoteRepository struct {
	BaseRepository
}

// newPgxQuoteRepository creates a new repository for quote data.
func newPgxQuoteRepository(pool *pgxpool.Pool) portsrepo.QuoteRepository {
	return &PgxQuoteRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.QuoteRepository = (*PgxQuoteRepository)(nil)

func (r *PgxQuoteRepository) IsNumberTaken(ctx context.Context, number, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM quotes WHERE number = $1 AND quote_id <> $2);`
	var taken bool
	if err := r.Pool.QueryRow(ctx, query, number, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("failed to check quote number %s: %w", number, err)
	}
	return taken, nil
}

// CreateQuote inserts the quote header and its line items in one database
// transaction, so a failed item write never leaves an orphaned header.
func (r *PgxQuoteRepository) CreateQuote(ctx context.Context, quote domain.Quote) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO quotes (quote_id, number, quote_date, customer_id, valid_until, notes,
			sub_total, total_tax, total, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, query,
		quote.QuoteID,
		quote.Number,
		quote.QuoteDate,
		quote.CustomerID,
		quote.ValidUntil,
		quote.Notes,
		quote.Totals.SubTotal,
		quote.Totals.TotalTax,
		quote.Totals.Total,
		quote.CreatedAt,
		quote.CreatedBy,
		quote.LastUpdatedAt,
		quote.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "Quote", quote.Number)
	}

	if err := insertLineItems(ctx, tx, quoteItemsTable, quote.QuoteID, quote.Items); err != nil {
		return translateWriteError(err, "Quote", quote.Number)
	}

	return r.Commit(ctx, tx)
}

// UpdateQuote rewrites the header and, when replaceItems is set, swaps the
// stored item set for quote.Items inside the same transaction.
func (r *PgxQuoteRepository) UpdateQuote(ctx context.Context, quote domain.Quote, replaceItems bool) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE quotes
		SET number = $2, quote_date = $3, customer_id = $4, valid_until = $5, notes = $6,
			sub_total = $7, total_tax = $8, total = $9, last_updated_at = $10, last_updated_by = $11
		WHERE quote_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		quote.QuoteID,
		quote.Number,
		quote.QuoteDate,
		quote.CustomerID,
		quote.ValidUntil,
		quote.Notes,
		quote.Totals.SubTotal,
		quote.Totals.TotalTax,
		quote.Totals.Total,
		quote.LastUpdatedAt,
		quote.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "Quote", quote.Number)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if replaceItems {
		if err := deleteLineItems(ctx, tx, quoteItemsTable, quote.QuoteID); err != nil {
			return err
		}
		if err := insertLineItems(ctx, tx, quoteItemsTable, quote.QuoteID, quote.Items); err != nil {
			return translateWriteError(err, "Quote", quote.Number)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxQuoteRepository) FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	query := `
		SELECT quote_id, number, quote_date, customer_id, valid_until, notes,
			sub_total, total_tax, total, created_at, created_by, last_updated_at, last_updated_by
		FROM quotes
		WHERE quote_id = $1;
	`
	quote, err := scanQuote(r.Pool.QueryRow(ctx, query, quoteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quote %s: %w", quoteID, err)
	}

	quote.Items, err = loadLineItems(ctx, r.Pool, quoteItemsTable, quoteID)
	if err != nil {
		return nil, err
	}
	return quote, nil
}

func (r *PgxQuoteRepository) ListQuotes(ctx context.Context, limit, offset int) ([]domain.Quote, error) {
	query := `
		SELECT quote_id, number, quote_date, customer_id, valid_until, notes,
			sub_total, total_tax, total, created_at, created_by, last_updated_at, last_updated_by
		FROM quotes
		ORDER BY quote_date DESC, number DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotes: %w", err)
	}
	defer rows.Close()

	quotes := []domain.Quote{}
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		quotes = append(quotes, *quote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read quotes: %w", err)
	}

	for i := range quotes {
		items, err := loadLineItems(ctx, r.Pool, quoteItemsTable, quotes[i].QuoteID)
		if err != nil {
			return nil, err
		}
		quotes[i].Items = items
	}
	return quotes, nil
}

func (r *PgxQuoteRepository) DeleteQuote(ctx context.Context, quoteID string) error {
	// quote_items cascades on delete of the header.
	tag, err := r.Pool.Exec(ctx, `DELETE FROM quotes WHERE quote_id = $1;`, quoteID)
	if err != nil {
		return fmt.Errorf("failed to delete quote %s: %w", quoteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxQuoteRepository) Exists(ctx context.Context, quoteID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM quotes WHERE quote_id = $1);`, quoteID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check quote existence %s: %w", quoteID, err)
	}
	return exists, nil
}

func (r *PgxQuoteRepository) ListNumbersReferencingVehicle(ctx context.Context, vehicleID string) ([]string, error) {
	query := `
		SELECT DISTINCT q.number
		FROM quotes q
		JOIN quote_items qi ON qi.document_id = q.quote_id
		WHERE qi.vehicle_id = $1
		ORDER BY q.number;
	`
	rows, err := r.Pool.Query(ctx, query, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotes referencing vehicle %s: %w", vehicleID, err)
	}
	defer rows.Close()

	numbers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (string, error) {
		var number string
		err := row.Scan(&number)
		return number, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan quote numbers: %w", err)
	}
	return numbers, nil
}

func scanQuote(row pgx.Row) (*domain.Quote, error) {
	var quote domain.Quote
	err := row.Scan(
		&quote.QuoteID,
		&quote.Number,
		&quote.QuoteDate,
		&quote.CustomerID,
		&quote.ValidUntil,
		&quote.Notes,
		&quote.Totals.SubTotal,
		&quote.Totals.TotalTax,
		&quote.Totals.Total,
		&quote.CreatedAt,
		&quote.CreatedBy,
		&quote.LastUpdatedAt,
		&quote.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}
