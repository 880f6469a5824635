package quotationRepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hostnhome/database"
	"hostnhome/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const quotationColumns = `
	id, vendor_id, resort_id, guest_name, email, phone,
	check_in, check_out, adults, children, rooms,
	status, total_amount, notes, created_at, updated_at`

// PostgresQuotationRepo implements QuotationRepository on a pgx pool.
type PostgresQuotationRepo struct {
	db *pgxpool.Pool
}

func NewPostgresQuotationRepo(db *pgxpool.Pool) QuotationRepository {
	return &PostgresQuotationRepo{db: db}
}

func scanQuotation(row pgx.Row) (*models.Quotation, error) {
	var q models.Quotation
	err := row.Scan(
		&q.ID,
		&q.VendorID,
		&q.ResortID,
		&q.GuestName,
		&q.Email,
		&q.Phone,
		&q.CheckIn,
		&q.CheckOut,
		&q.Adults,
		&q.Children,
		&q.Rooms,
		&q.Status,
		&q.TotalAmount,
		&q.Notes,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *PostgresQuotationRepo) Create(ctx context.Context, q *models.Quotation) error {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}

	query := `
		INSERT INTO quotations (
			id, vendor_id, resort_id, guest_name, email, phone,
			check_in, check_out, adults, children, rooms,
			status, total_amount, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx,
		query,
		q.ID,
		q.VendorID,
		q.ResortID,
		q.GuestName,
		q.Email,
		q.Phone,
		q.CheckIn,
		q.CheckOut,
		q.Adults,
		q.Children,
		q.Rooms,
		q.Status,
		q.TotalAmount,
		q.Notes,
	).Scan(&q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert quotation: %w", err)
	}
	return nil
}

func (r *PostgresQuotationRepo) GetByID(ctx context.Context, vendorID, id string) (*models.Quotation, error) {
	query := `SELECT` + quotationColumns + `
		FROM quotations
		WHERE id = $1
		  AND ($2::text = '' OR vendor_id = $2)
	`

	q, err := scanQuotation(r.db.QueryRow(ctx, query, id, vendorID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quotation: %w", err)
	}
	return q, nil
}

func (r *PostgresQuotationRepo) List(ctx context.Context, vendorID string, filter models.QuotationFilter) ([]models.Quotation, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if vendorID != "" {
		add("vendor_id = $%d", vendorID)
	}
	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.DateFrom != nil {
		add("created_at >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		add("created_at <= $%d", *filter.DateTo)
	}

	query := `SELECT` + quotationColumns + ` FROM quotations`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}
	defer rows.Close()

	quotations := []models.Quotation{}
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quotation: %w", err)
		}
		quotations = append(quotations, *q)
	}
	return quotations, rows.Err()
}

func (r *PostgresQuotationRepo) UpdateStatus(ctx context.Context, vendorID, id, from, to string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE quotations
		SET status = $4, updated_at = now()
		WHERE id = $1
		  AND ($2::text = '' OR vendor_id = $2)
		  AND status = $3
	`, id, vendorID, from, to)
	if err != nil {
		return fmt.Errorf("failed to update quotation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, vendorID, id); err != nil {
			return err
		}
		return database.ErrConflict
	}
	return nil
}

func (r *PostgresQuotationRepo) Delete(ctx context.Context, vendorID, id string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM quotations
		WHERE id = $1
		  AND ($2::text = '' OR vendor_id = $2)
	`, id, vendorID)
	if err != nil {
		return fmt.Errorf("failed to delete quotation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (r *PostgresQuotationRepo) ExpireBefore(ctx context.Context, cutoff time.Time) (int, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE quotations
		SET status = $1, updated_at = now()
		WHERE status IN ($2, $3)
		  AND check_in < $4
	`, models.QuotationExpired, models.QuotationDraft, models.QuotationSent, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to expire quotations: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
