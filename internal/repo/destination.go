// Package repo contains all database access logic for the travel API.
// Each collection has its own file with an interface and a Postgres
// implementation. No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jayxvj/k2k-world/internal/domain"
)

// uniqueViolation is the Postgres error code for a unique constraint breach,
// in practice a duplicate destination slug.
const uniqueViolation = "23505"

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DestinationRepo defines the persistence operations for catalog destinations.
// The service layer depends on this interface, not the Postgres
// implementation, so it can be unit-tested with a mock.
type DestinationRepo interface {
	// Create inserts a new destination and returns the persisted record
	// (with DB-generated id and timestamps populated).
	// Returns domain.ErrConflict if the slug is already taken.
	Create(ctx context.Context, d domain.Destination) (domain.Destination, error)

	// GetByID retrieves a destination by its UUID primary key.
	// Returns domain.ErrNotFound if no destination with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error)

	// GetBySlug retrieves a destination by its unique slug.
	// Returns domain.ErrNotFound if no destination with that slug exists.
	GetBySlug(ctx context.Context, slug string) (domain.Destination, error)

	// List returns destinations newest-created first, optionally restricted
	// to featured ones.
	List(ctx context.Context, featuredOnly bool) ([]domain.Destination, error)

	// Update applies the non-nil fields of patch to an existing destination
	// and returns the updated record. updated_at is always refreshed.
	// Returns domain.ErrNotFound if the id is absent, domain.ErrConflict if
	// a slug change collides with another destination.
	Update(ctx context.Context, id uuid.UUID, patch domain.DestinationPatch) (domain.Destination, error)

	// Delete removes a destination by ID. Returns domain.ErrNotFound if it
	// does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgDestinationRepo is the Postgres implementation of DestinationRepo.
type pgDestinationRepo struct {
	db db
}

// NewDestinationRepo constructs a DestinationRepo backed by the provided db.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewDestinationRepo(db db) DestinationRepo {
	return &pgDestinationRepo{db: db}
}

const destinationColumns = `id, name, slug, price, duration, short_description, description,
		highlights, images, itinerary, inclusions, exclusions,
		featured, show_on_homepage, rating, created_at, updated_at`

func (r *pgDestinationRepo) Create(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	const q = `
		INSERT INTO destinations (name, slug, price, duration, short_description, description,
			highlights, images, itinerary, inclusions, exclusions,
			featured, show_on_homepage, rating)
		VALUES (@name, @slug, @price, @duration, @short_description, @description,
			@highlights, @images, @itinerary, @inclusions, @exclusions,
			@featured, @show_on_homepage, @rating)
		RETURNING ` + destinationColumns

	args := pgx.NamedArgs{
		"name":              d.Name,
		"slug":              d.Slug,
		"price":             d.Price,
		"duration":          d.Duration,
		"short_description": d.ShortDescription,
		"description":       d.Description,
		"highlights":        emptyNotNil(d.Highlights),
		"images":            emptyNotNil(d.Images),
		"itinerary":         emptyItinerary(d.Itinerary),
		"inclusions":        emptyNotNil(d.Inclusions),
		"exclusions":        emptyNotNil(d.Exclusions),
		"featured":          d.Featured,
		"show_on_homepage":  d.ShowOnHomepage,
		"rating":            d.Rating,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanDestination(row)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Create: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgDestinationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	const q = `
		SELECT ` + destinationColumns + `
		FROM destinations
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanDestination(row)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgDestinationRepo) GetBySlug(ctx context.Context, slug string) (domain.Destination, error) {
	const q = `
		SELECT ` + destinationColumns + `
		FROM destinations
		WHERE slug = @slug`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"slug": slug})
	result, err := scanDestination(row)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetBySlug: %w", err)
	}
	return result, nil
}

func (r *pgDestinationRepo) List(ctx context.Context, featuredOnly bool) ([]domain.Destination, error) {
	q := `
		SELECT ` + destinationColumns + `
		FROM destinations`
	if featuredOnly {
		q += `
		WHERE featured`
	}
	q += `
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.List: %w", err)
	}
	defer rows.Close()

	var out []domain.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DestinationRepo.List: scan: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.List: rows: %w", err)
	}

	return out, nil
}

// Update builds the SET clause dynamically from the non-nil patch fields so
// a partial admin edit never clobbers columns it did not mention.
func (r *pgDestinationRepo) Update(ctx context.Context, id uuid.UUID, patch domain.DestinationPatch) (domain.Destination, error) {
	b := sq.Update("destinations").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + destinationColumns)

	if patch.Name != nil {
		b = b.Set("name", *patch.Name)
	}
	if patch.Slug != nil {
		b = b.Set("slug", *patch.Slug)
	}
	if patch.Price != nil {
		b = b.Set("price", *patch.Price)
	}
	if patch.Duration != nil {
		b = b.Set("duration", *patch.Duration)
	}
	if patch.ShortDescription != nil {
		b = b.Set("short_description", *patch.ShortDescription)
	}
	if patch.Description != nil {
		b = b.Set("description", *patch.Description)
	}
	if patch.Highlights != nil {
		b = b.Set("highlights", emptyNotNil(*patch.Highlights))
	}
	if patch.Images != nil {
		b = b.Set("images", emptyNotNil(*patch.Images))
	}
	if patch.Itinerary != nil {
		b = b.Set("itinerary", emptyItinerary(*patch.Itinerary))
	}
	if patch.Inclusions != nil {
		b = b.Set("inclusions", emptyNotNil(*patch.Inclusions))
	}
	if patch.Exclusions != nil {
		b = b.Set("exclusions", emptyNotNil(*patch.Exclusions))
	}
	if patch.Featured != nil {
		b = b.Set("featured", *patch.Featured)
	}
	if patch.ShowOnHomepage != nil {
		b = b.Set("show_on_homepage", *patch.ShowOnHomepage)
	}
	if patch.Rating != nil {
		b = b.Set("rating", *patch.Rating)
	}

	q, args, err := b.ToSql()
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Update: build query: %w", err)
	}

	row := r.db.QueryRow(ctx, q, args...)
	result, err := scanDestination(row)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Update: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgDestinationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM destinations WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.DestinationRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DestinationRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanDestination maps a single database row into a domain.Destination.
// The itinerary jsonb column unmarshals straight into []ItineraryDay via
// pgx's JSON codec.
func scanDestination(s scanner) (domain.Destination, error) {
	var d domain.Destination
	err := s.Scan(
		&d.ID, &d.Name, &d.Slug, &d.Price, &d.Duration,
		&d.ShortDescription, &d.Description,
		&d.Highlights, &d.Images, &d.Itinerary, &d.Inclusions, &d.Exclusions,
		&d.Featured, &d.ShowOnHomepage, &d.Rating,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Destination{}, domain.ErrNotFound
		}
		return domain.Destination{}, err
	}
	return d, nil
}

// mapPgError converts a unique-constraint violation into domain.ErrConflict
// and pgx.ErrNoRows (already translated by the scan helpers) passes through.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrConflict
	}
	return err
}

// emptyNotNil keeps NOT NULL array columns happy when the caller passes nil.
func emptyNotNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func emptyItinerary(it []domain.ItineraryDay) []domain.ItineraryDay {
	if it == nil {
		return []domain.ItineraryDay{}
	}
	return it
}
