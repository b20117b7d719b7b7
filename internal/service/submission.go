package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jayxvj/k2k-world/internal/domain"
	"github.com/jayxvj/k2k-world/internal/repo"
)

// LeadMailer defines the notifications the submission service depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention and lets tests inject a mock without an SMTP server.
type LeadMailer interface {
	SendCustomRequest(ctx context.Context, cr domain.CustomRequest) error
	SendContact(ctx context.Context, c domain.Contact) error
}

// SubmissionService runs the public form submission state machine for both
// lead types: validate, persist (best effort), notify (best effort,
// attempted regardless of the persistence outcome), aggregate.
//
// The two side effects are independent on purpose: the visitor should get a
// success as long as the agency learned about the lead through at least one
// channel. Only validation failures and a double side-effect failure are
// reported as errors.
type SubmissionService struct {
	requests repo.CustomRequestRepo
	contacts repo.ContactRepo
	mailer   LeadMailer
	log      *slog.Logger
}

// NewSubmissionService constructs a SubmissionService.
func NewSubmissionService(requests repo.CustomRequestRepo, contacts repo.ContactRepo, mailer LeadMailer, log *slog.Logger) *SubmissionService {
	return &SubmissionService{requests: requests, contacts: contacts, mailer: mailer, log: log}
}

// CustomRequestInput is the public custom-trip form payload.
type CustomRequestInput struct {
	Name        string             `json:"name" validate:"required"`
	Email       string             `json:"email" validate:"required,email"`
	Phone       string             `json:"phone" validate:"required"`
	Destination string             `json:"destination" validate:"required"`
	TravelDates domain.TravelDates `json:"travelDates"`
	GroupSize   int                `json:"groupSize" validate:"gte=1"`
	Budget      string             `json:"budget"`
	Preferences string             `json:"preferences"`
	Message     string             `json:"message" validate:"required,min=10"`
}

// ContactInput is the public contact form payload.
type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required,min=10"`
}

// SubmitCustomRequest validates the input, then attempts persistence and
// notification independently. A validation failure returns
// domain.ErrValidation before either side effect runs. Otherwise err is nil
// and the caller inspects the SubmissionResult's outcome.
func (s *SubmissionService) SubmitCustomRequest(ctx context.Context, in CustomRequestInput) (domain.CustomRequest, domain.SubmissionResult, error) {
	if err := validate.Struct(in); err != nil {
		return domain.CustomRequest{}, domain.SubmissionResult{},
			fmt.Errorf("service.SubmissionService.SubmitCustomRequest: %w", wrapValidation(err))
	}

	lead := domain.CustomRequest{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Destination: in.Destination,
		TravelDates: in.TravelDates,
		GroupSize:   in.GroupSize,
		Budget:      in.Budget,
		Preferences: in.Preferences,
		Message:     in.Message,
		Status:      domain.StatusNew,
	}

	var result domain.SubmissionResult

	stored, err := s.requests.Create(ctx, lead)
	if err != nil {
		result.StoreErr = err
		s.log.ErrorContext(ctx, "custom request persistence failed", "error", err)
	} else {
		lead = stored
	}

	// Notification is attempted even when persistence failed: a confirmed
	// email is treated as proof of receipt.
	if err := s.mailer.SendCustomRequest(ctx, lead); err != nil {
		result.NotifyErr = err
		s.log.ErrorContext(ctx, "custom request notification failed", "error", err)
	}

	return lead, result, nil
}

// SubmitContact runs the same state machine for contact messages.
func (s *SubmissionService) SubmitContact(ctx context.Context, in ContactInput) (domain.Contact, domain.SubmissionResult, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Contact{}, domain.SubmissionResult{},
			fmt.Errorf("service.SubmissionService.SubmitContact: %w", wrapValidation(err))
	}

	lead := domain.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Subject: in.Subject,
		Message: in.Message,
		Status:  domain.StatusNew,
	}

	var result domain.SubmissionResult

	stored, err := s.contacts.Create(ctx, lead)
	if err != nil {
		result.StoreErr = err
		s.log.ErrorContext(ctx, "contact persistence failed", "error", err)
	} else {
		lead = stored
	}

	if err := s.mailer.SendContact(ctx, lead); err != nil {
		result.NotifyErr = err
		s.log.ErrorContext(ctx, "contact notification failed", "error", err)
	}

	return lead, result, nil
}
