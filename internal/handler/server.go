package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jayxvj/k2k-world/internal/domain"
	"github.com/jayxvj/k2k-world/internal/service"
)

// CatalogServicer defines the catalog operations the handlers depend on.
// Defining interfaces here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type CatalogServicer interface {
	List(ctx context.Context, featured, homepage bool) ([]domain.Destination, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error)
	GetBySlug(ctx context.Context, slug string) (domain.Destination, error)
	Create(ctx context.Context, d domain.Destination) (domain.Destination, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.DestinationPatch) (domain.Destination, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Seed(ctx context.Context, secret string) ([]service.SeedResult, int, error)
}

// SubmissionServicer runs the public lead form submissions.
type SubmissionServicer interface {
	SubmitCustomRequest(ctx context.Context, in service.CustomRequestInput) (domain.CustomRequest, domain.SubmissionResult, error)
	SubmitContact(ctx context.Context, in service.ContactInput) (domain.Contact, domain.SubmissionResult, error)
}

// LeadServicer is the admin triage surface.
type LeadServicer interface {
	ListCustomRequests(ctx context.Context) ([]domain.CustomRequest, error)
	ListContacts(ctx context.Context) ([]domain.Contact, error)
	SetCustomRequestStatus(ctx context.Context, id uuid.UUID, status domain.Status) error
	SetContactStatus(ctx context.Context, id uuid.UUID, status domain.Status) error
}

// BookingServicer submits booking requests.
type BookingServicer interface {
	Submit(ctx context.Context, in service.BookingInput) error
}

// AuthServicer signs the admin in.
type AuthServicer interface {
	SignIn(ctx context.Context, email, password string) (string, error)
}

// Server holds the handler dependencies. Methods are split into
// resource-specific files but all operate on this struct.
type Server struct {
	catalog     CatalogServicer
	submissions SubmissionServicer
	leads       LeadServicer
	bookings    BookingServicer
	auth        AuthServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(catalog CatalogServicer, submissions SubmissionServicer, leads LeadServicer, bookings BookingServicer, auth AuthServicer) *Server {
	return &Server{
		catalog:     catalog,
		submissions: submissions,
		leads:       leads,
		bookings:    bookings,
		auth:        auth,
	}
}

// Routes builds the full route tree. adminOnly is the session-guard
// middleware applied to every back-office route; the public catalog reads,
// the three submission forms, seed, and login stay open.
func (s *Server) Routes(adminOnly func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Get("/openapi.yaml", s.handleOpenAPI)

	r.Route("/destinations", func(r chi.Router) {
		r.Get("/", s.handleListDestinations)
		r.Get("/search", s.handleSearchDestinations)
		r.Get("/slug/{slug}", s.handleGetDestinationBySlug)
		r.Get("/{id}", s.handleGetDestination)
		r.With(adminOnly).Post("/", s.handleCreateDestination)
		r.With(adminOnly).Put("/{id}", s.handleUpdateDestination)
		r.With(adminOnly).Delete("/{id}", s.handleDeleteDestination)
	})

	r.Route("/custom-requests", func(r chi.Router) {
		r.Post("/", s.handleSubmitCustomRequest)
		r.With(adminOnly).Get("/", s.handleListCustomRequests)
		r.With(adminOnly).Patch("/{id}/status", s.handleCustomRequestStatus)
	})

	r.Route("/contacts", func(r chi.Router) {
		r.Post("/", s.handleSubmitContact)
		r.With(adminOnly).Get("/", s.handleListContacts)
		r.With(adminOnly).Patch("/{id}/status", s.handleContactStatus)
	})

	r.Post("/bookings", s.handleSubmitBooking)
	r.Post("/seed", s.handleSeed)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", s.handleLogin)
		r.With(adminOnly).Post("/logout", s.handleLogout)
		r.With(adminOnly).Get("/me", s.handleMe)
	})

	return r
}

// parseID pulls the {id} URL parameter as a UUID, writing a 400 itself when
// the value is malformed. The bool reports whether the caller may proceed.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}
