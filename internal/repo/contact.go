package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jayxvj/k2k-world/internal/domain"
)

// ContactRepo defines the persistence operations for contact messages.
// Same shape as CustomRequestRepo: create, list newest-first, set status.
type ContactRepo interface {
	Create(ctx context.Context, c domain.Contact) (domain.Contact, error)
	List(ctx context.Context) ([]domain.Contact, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error
}

type pgContactRepo struct {
	db db
}

// NewContactRepo constructs a ContactRepo backed by the provided db.
func NewContactRepo(db db) ContactRepo {
	return &pgContactRepo{db: db}
}

const contactColumns = `id, name, email, phone, subject, message, status, created_at, updated_at`

func (r *pgContactRepo) Create(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	const q = `
		INSERT INTO contacts (name, email, phone, subject, message)
		VALUES (@name, @email, @phone, @subject, @message)
		RETURNING ` + contactColumns

	args := pgx.NamedArgs{
		"name":    c.Name,
		"email":   c.Email,
		"phone":   c.Phone,
		"subject": c.Subject,
		"message": c.Message,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanContact(row)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("repo.ContactRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgContactRepo) List(ctx context.Context) ([]domain.Contact, error) {
	const q = `
		SELECT ` + contactColumns + `
		FROM contacts
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ContactRepo.List: %w", err)
	}
	defer rows.Close()

	var out []domain.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ContactRepo.List: scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ContactRepo.List: rows: %w", err)
	}

	return out, nil
}

func (r *pgContactRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	const q = `
		UPDATE contacts
		SET status = @status, updated_at = now()
		WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "status": string(status)})
	if err != nil {
		return fmt.Errorf("repo.ContactRepo.UpdateStatus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ContactRepo.UpdateStatus: %w", domain.ErrNotFound)
	}
	return nil
}

func scanContact(s scanner) (domain.Contact, error) {
	var c domain.Contact
	err := s.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message,
		&c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Contact{}, domain.ErrNotFound
		}
		return domain.Contact{}, err
	}
	return c, nil
}
