package resortRepo

import (
	"context"
	"errors"
	"fmt"

	"hostnhome/database"
	"hostnhome/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresResortRepo implements ResortRepository on a pgx pool.
type PostgresResortRepo struct {
	db *pgxpool.Pool
}

func NewPostgresResortRepo(db *pgxpool.Pool) ResortRepository {
	return &PostgresResortRepo{db: db}
}

func scanResort(row pgx.Row) (*models.Resort, error) {
	var (
		res models.Resort
		id  string
	)
	if err := row.Scan(
		&id,
		&res.VendorID,
		&res.Name,
		&res.Location,
		&res.Description,
		&res.Slug,
		&res.Images,
		&res.Amenities,
		&res.Status,
		&res.CreatedAt,
		&res.UpdatedAt,
	); err != nil {
		return nil, err
	}
	res.ID = models.FlexibleID(id)
	return &res, nil
}

func (r *PostgresResortRepo) List(ctx context.Context, vendorID string) ([]models.Resort, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			id, vendor_id, name, location, description, slug,
			images, amenities, status, created_at, updated_at
		FROM resorts
		WHERE ($1::text = '' OR vendor_id = $1)
		ORDER BY created_at DESC
	`, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list resorts: %w", err)
	}
	defer rows.Close()

	resorts := []models.Resort{}
	for rows.Next() {
		res, err := scanResort(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resort: %w", err)
		}
		resorts = append(resorts, *res)
	}
	return resorts, rows.Err()
}

func (r *PostgresResortRepo) GetByID(ctx context.Context, vendorID, id string) (*models.Resort, error) {
	res, err := scanResort(r.db.QueryRow(ctx, `
		SELECT
			id, vendor_id, name, location, description, slug,
			images, amenities, status, created_at, updated_at
		FROM resorts
		WHERE id = $1
		  AND ($2::text = '' OR vendor_id = $2)
	`, id, vendorID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resort: %w", err)
	}
	return res, nil
}

func (r *PostgresResortRepo) Create(ctx context.Context, resort *models.Resort) error {
	if resort.ID == "" {
		resort.ID = models.FlexibleID(uuid.New().String())
	}
	images := resort.Images
	if images == nil {
		images = []string{}
	}
	amenities := resort.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO resorts (
			id, vendor_id, name, location, description, slug,
			images, amenities, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`,
		resort.ID.String(),
		resort.VendorID,
		resort.Name,
		resort.Location,
		resort.Description,
		resort.Slug,
		images,
		amenities,
		resort.Status,
	).Scan(&resort.CreatedAt, &resort.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create resort: %w", err)
	}
	return nil
}

func (r *PostgresResortRepo) SlugExists(ctx context.Context, vendorID, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM resorts
			WHERE slug = $1
			  AND ($2::text = '' OR vendor_id = $2)
		)
	`, slug, vendorID).Scan(&exists)
	return exists, err
}
