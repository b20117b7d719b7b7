package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jayxvj/k2k-world/internal/domain"
)

// CustomRequestRepo defines the persistence operations for custom trip
// requests. There is no delete: leads are kept forever for follow-up.
type CustomRequestRepo interface {
	// Create inserts a new request with status forced to "new" and returns
	// the persisted record.
	Create(ctx context.Context, cr domain.CustomRequest) (domain.CustomRequest, error)

	// List returns all requests newest-created first. Admin callers filter
	// by status client-side.
	List(ctx context.Context) ([]domain.CustomRequest, error)

	// UpdateStatus sets the status of one request and refreshes updated_at.
	// Returns domain.ErrNotFound if the id is absent.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error
}

type pgCustomRequestRepo struct {
	db db
}

// NewCustomRequestRepo constructs a CustomRequestRepo backed by the provided db.
func NewCustomRequestRepo(db db) CustomRequestRepo {
	return &pgCustomRequestRepo{db: db}
}

const customRequestColumns = `id, name, email, phone, destination, travel_start, travel_end,
		group_size, budget, preferences, message, status, created_at, updated_at`

func (r *pgCustomRequestRepo) Create(ctx context.Context, cr domain.CustomRequest) (domain.CustomRequest, error) {
	// Status is not a parameter: new leads always start at 'new'.
	const q = `
		INSERT INTO custom_requests (name, email, phone, destination, travel_start, travel_end,
			group_size, budget, preferences, message)
		VALUES (@name, @email, @phone, @destination, @travel_start, @travel_end,
			@group_size, @budget, @preferences, @message)
		RETURNING ` + customRequestColumns

	args := pgx.NamedArgs{
		"name":         cr.Name,
		"email":        cr.Email,
		"phone":        cr.Phone,
		"destination":  cr.Destination,
		"travel_start": cr.TravelDates.Start,
		"travel_end":   cr.TravelDates.End,
		"group_size":   cr.GroupSize,
		"budget":       cr.Budget,
		"preferences":  cr.Preferences,
		"message":      cr.Message,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanCustomRequest(row)
	if err != nil {
		return domain.CustomRequest{}, fmt.Errorf("repo.CustomRequestRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgCustomRequestRepo) List(ctx context.Context) ([]domain.CustomRequest, error) {
	const q = `
		SELECT ` + customRequestColumns + `
		FROM custom_requests
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CustomRequestRepo.List: %w", err)
	}
	defer rows.Close()

	var out []domain.CustomRequest
	for rows.Next() {
		cr, err := scanCustomRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CustomRequestRepo.List: scan: %w", err)
		}
		out = append(out, cr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CustomRequestRepo.List: rows: %w", err)
	}

	return out, nil
}

func (r *pgCustomRequestRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	const q = `
		UPDATE custom_requests
		SET status = @status, updated_at = now()
		WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "status": string(status)})
	if err != nil {
		return fmt.Errorf("repo.CustomRequestRepo.UpdateStatus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.CustomRequestRepo.UpdateStatus: %w", domain.ErrNotFound)
	}
	return nil
}

func scanCustomRequest(s scanner) (domain.CustomRequest, error) {
	var cr domain.CustomRequest
	err := s.Scan(
		&cr.ID, &cr.Name, &cr.Email, &cr.Phone, &cr.Destination,
		&cr.TravelDates.Start, &cr.TravelDates.End,
		&cr.GroupSize, &cr.Budget, &cr.Preferences, &cr.Message,
		&cr.Status, &cr.CreatedAt, &cr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CustomRequest{}, domain.ErrNotFound
		}
		return domain.CustomRequest{}, err
	}
	return cr, nil
}
