package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jayxvj/k2k-world/internal/domain"
)

// BookingMailer defines the notification the booking service depends on.
type BookingMailer interface {
	SendBooking(ctx context.Context, b domain.Booking) error
}

// BookingService handles direct booking requests. Bookings are never
// persisted: the internal email is the whole side effect, so unlike the lead forms
// there is no degrade policy — a failed send fails the submission.
type BookingService struct {
	mailer BookingMailer
	log    *slog.Logger
}

// NewBookingService constructs a BookingService.
func NewBookingService(mailer BookingMailer, log *slog.Logger) *BookingService {
	return &BookingService{mailer: mailer, log: log}
}

// BookingInput is the public booking form payload.
type BookingInput struct {
	Name           string `json:"name" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	NumberOfPeople int    `json:"numberOfPeople" validate:"gte=1"`
	StartDate      string `json:"startDate" validate:"required"`
	Destination    string `json:"destination" validate:"required"`
	Message        string `json:"message"`
}

// Submit validates the booking and dispatches the internal notification email.
// Returns domain.ErrValidation for bad input, domain.ErrMailNotConfigured
// when the transport credentials are missing or rejected, or the transport
// error otherwise.
func (s *BookingService) Submit(ctx context.Context, in BookingInput) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("service.BookingService.Submit: %w", wrapValidation(err))
	}

	b := domain.Booking{
		Name:           in.Name,
		Phone:          in.Phone,
		NumberOfPeople: in.NumberOfPeople,
		StartDate:      in.StartDate,
		Destination:    in.Destination,
		Message:        in.Message,
	}

	if err := s.mailer.SendBooking(ctx, b); err != nil {
		s.log.ErrorContext(ctx, "booking notification failed", "destination", b.Destination, "error", err)
		return fmt.Errorf("service.BookingService.Submit: %w", err)
	}
	return nil
}
