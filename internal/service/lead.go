package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jayxvj/k2k-world/internal/domain"
	"github.com/jayxvj/k2k-world/internal/repo"
)

// LeadService implements the admin triage surface over both lead
// collections: full listings and the status workflow.
type LeadService struct {
	requests repo.CustomRequestRepo
	contacts repo.ContactRepo
}

// NewLeadService constructs a LeadService backed by the provided repos.
func NewLeadService(requests repo.CustomRequestRepo, contacts repo.ContactRepo) *LeadService {
	return &LeadService{requests: requests, contacts: contacts}
}

// ListCustomRequests returns all custom requests newest-first.
// Always returns a non-nil slice.
func (s *LeadService) ListCustomRequests(ctx context.Context) ([]domain.CustomRequest, error) {
	out, err := s.requests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.LeadService.ListCustomRequests: %w", err)
	}
	if out == nil {
		out = []domain.CustomRequest{}
	}
	return out, nil
}

// ListContacts returns all contact messages newest-first.
func (s *LeadService) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	out, err := s.contacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.LeadService.ListContacts: %w", err)
	}
	if out == nil {
		out = []domain.Contact{}
	}
	return out, nil
}

// SetCustomRequestStatus moves a custom request to the given status.
// Any status may be set from any current status, including a no-op re-set;
// the triage workflow is deliberately unordered. Values outside the enum are
// rejected with domain.ErrValidation before the store is touched.
func (s *LeadService) SetCustomRequestStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	if err := checkStatus(status); err != nil {
		return fmt.Errorf("service.LeadService.SetCustomRequestStatus: %w", err)
	}
	if err := s.requests.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("service.LeadService.SetCustomRequestStatus: %w", err)
	}
	return nil
}

// SetContactStatus moves a contact message to the given status.
func (s *LeadService) SetContactStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	if err := checkStatus(status); err != nil {
		return fmt.Errorf("service.LeadService.SetContactStatus: %w", err)
	}
	if err := s.contacts.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("service.LeadService.SetContactStatus: %w", err)
	}
	return nil
}

func checkStatus(status domain.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: status must be one of new, in_progress, closed", domain.ErrValidation)
	}
	return nil
}
