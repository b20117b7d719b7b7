package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/jayxvj/k2k-world/internal/domain"
	"github.com/jayxvj/k2k-world/internal/repo"
	"github.com/jayxvj/k2k-world/internal/seed"
)

// slugPattern is the URL-safe shape required of destination slugs:
// lowercase words separated by single hyphens, e.g. "delhi-agra".
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// CatalogService implements business logic for the public destination
// catalog and its admin CRUD surface.
type CatalogService struct {
	repo       repo.DestinationRepo
	seedSecret string
	log        *slog.Logger
}

// NewCatalogService constructs a CatalogService. seedSecret authorizes the
// seed operation; when empty, seeding is disabled entirely.
func NewCatalogService(r repo.DestinationRepo, seedSecret string, log *slog.Logger) *CatalogService {
	return &CatalogService{repo: r, seedSecret: seedSecret, log: log}
}

// List returns destinations newest-first. featured restricts to the featured
// flag; homepage drops destinations explicitly hidden from the homepage.
// Always returns a non-nil slice so callers can safely range over it.
func (s *CatalogService) List(ctx context.Context, featured, homepage bool) ([]domain.Destination, error) {
	all, err := s.repo.List(ctx, featured)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.List: %w", err)
	}

	out := all
	if homepage {
		out = make([]domain.Destination, 0, len(all))
		for _, d := range all {
			if d.ShowOnHomepage {
				out = append(out, d)
			}
		}
	}
	if out == nil {
		out = []domain.Destination{}
	}
	return out, nil
}

// GetByID returns a single destination. A missing id surfaces as
// domain.ErrNotFound, which read callers render as a not-found state.
func (s *CatalogService) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.CatalogService.GetByID: %w", err)
	}
	return d, nil
}

// GetBySlug returns the destination carrying the given public URL slug.
func (s *CatalogService) GetBySlug(ctx context.Context, slug string) (domain.Destination, error) {
	d, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.CatalogService.GetBySlug: %w", err)
	}
	return d, nil
}

// Create validates and persists a new destination.
// Returns domain.ErrValidation for rule violations and domain.ErrConflict
// when the slug is already taken.
func (s *CatalogService) Create(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	if err := validateDestination(d); err != nil {
		return domain.Destination{}, err
	}
	created, err := s.repo.Create(ctx, d)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.CatalogService.Create: %w", err)
	}
	return created, nil
}

// Update applies a partial edit. Fields the patch does not mention are left
// untouched; fields it does mention are validated against the same rules as
// Create.
func (s *CatalogService) Update(ctx context.Context, id uuid.UUID, patch domain.DestinationPatch) (domain.Destination, error) {
	if err := validatePatch(patch); err != nil {
		return domain.Destination{}, err
	}
	// An empty patch is a no-op: return the current row without writing
	// (and without bumping updated_at).
	if patch.IsZero() {
		return s.GetByID(ctx, id)
	}
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.CatalogService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a destination permanently. There is no soft delete or undo.
func (s *CatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.CatalogService.Delete: %w", err)
	}
	return nil
}

// SeedResult reports the outcome of inserting one sample destination.
type SeedResult struct {
	Name    string    `json:"name"`
	ID      uuid.UUID `json:"id,omitempty"`
	Success bool      `json:"success"`
	Error   string    `json:"error,omitempty"`
}

// Seed bulk-inserts the fixed sample catalog after checking the static
// secret. A wrong or missing secret performs zero writes. Individual insert
// failures (typically an already-seeded slug) are reported per item and do
// not abort the rest.
func (s *CatalogService) Seed(ctx context.Context, secret string) ([]SeedResult, int, error) {
	if s.seedSecret == "" || secret != s.seedSecret {
		return nil, 0, fmt.Errorf("service.CatalogService.Seed: %w", domain.ErrUnauthorized)
	}

	results := make([]SeedResult, 0, len(seed.Destinations))
	seeded := 0
	for _, d := range seed.Destinations {
		created, err := s.repo.Create(ctx, d)
		if err != nil {
			s.log.WarnContext(ctx, "seed insert failed", "name", d.Name, "error", err)
			results = append(results, SeedResult{Name: d.Name, Success: false, Error: "insert failed"})
			continue
		}
		seeded++
		results = append(results, SeedResult{Name: d.Name, ID: created.ID, Success: true})
	}
	return results, seeded, nil
}

// Search filters an already-fetched destination list by case-insensitive
// substring match against name, description, and highlights. An empty query
// returns the input unchanged, in its original order. This is a pure local
// filter: the catalog is small (tens of items), so there is no reason to
// push it into SQL.
func Search(all []domain.Destination, query string) []domain.Destination {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all
	}

	var out []domain.Destination
	for _, d := range all {
		if matchesQuery(d, q) {
			out = append(out, d)
		}
	}
	if out == nil {
		out = []domain.Destination{}
	}
	return out
}

func matchesQuery(d domain.Destination, q string) bool {
	if strings.Contains(strings.ToLower(d.Name), q) ||
		strings.Contains(strings.ToLower(d.Description), q) {
		return true
	}
	for _, h := range d.Highlights {
		if strings.Contains(strings.ToLower(h), q) {
			return true
		}
	}
	return false
}

func validateDestination(d domain.Destination) error {
	var problems []string
	if strings.TrimSpace(d.Name) == "" {
		problems = append(problems, "name is required")
	}
	if d.Slug == "" {
		problems = append(problems, "slug is required")
	} else if !slugPattern.MatchString(d.Slug) {
		problems = append(problems, "slug must be lowercase letters, digits, and hyphens")
	}
	if d.Price <= 0 {
		problems = append(problems, "price must be positive")
	}
	if len(d.Images) == 0 {
		problems = append(problems, "at least one image is required")
	}
	if d.Rating < 0 || d.Rating > 5 {
		problems = append(problems, "rating must be between 0 and 5")
	}
	for _, day := range d.Itinerary {
		if day.Day < 1 {
			problems = append(problems, "itinerary day numbers must start at 1")
			break
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

func validatePatch(p domain.DestinationPatch) error {
	var problems []string
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		problems = append(problems, "name cannot be empty")
	}
	if p.Slug != nil && !slugPattern.MatchString(*p.Slug) {
		problems = append(problems, "slug must be lowercase letters, digits, and hyphens")
	}
	if p.Price != nil && *p.Price <= 0 {
		problems = append(problems, "price must be positive")
	}
	if p.Images != nil && len(*p.Images) == 0 {
		problems = append(problems, "at least one image is required")
	}
	if p.Rating != nil && (*p.Rating < 0 || *p.Rating > 5) {
		problems = append(problems, "rating must be between 0 and 5")
	}
	if p.Itinerary != nil {
		for _, day := range *p.Itinerary {
			if day.Day < 1 {
				problems = append(problems, "itinerary day numbers must start at 1")
				break
			}
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}
