package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jayxvj/k2k-world/internal/auth"
	"github.com/jayxvj/k2k-world/internal/domain"
	"github.com/jayxvj/k2k-world/internal/handler"
	"github.com/jayxvj/k2k-world/internal/middleware"
	"github.com/jayxvj/k2k-world/internal/service"
)

// ---- mock servicers ---------------------------------------------------------
// Hand-written test doubles for the handler's consumer interfaces.
// Each method is a function field — set only the ones your test needs.

type mockCatalogServicer struct {
	list      func(ctx context.Context, featured, homepage bool) ([]domain.Destination, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Destination, error)
	getBySlug func(ctx context.Context, slug string) (domain.Destination, error)
	create    func(ctx context.Context, d domain.Destination) (domain.Destination, error)
	update    func(ctx context.Context, id uuid.UUID, patch domain.DestinationPatch) (domain.Destination, error)
	delete    func(ctx context.Context, id uuid.UUID) error
	seed      func(ctx context.Context, secret string) ([]service.SeedResult, int, error)
}

func (m *mockCatalogServicer) List(ctx context.Context, featured, homepage bool) ([]domain.Destination, error) {
	return m.list(ctx, featured, homepage)
}
func (m *mockCatalogServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	return m.getByID(ctx, id)
}
func (m *mockCatalogServicer) GetBySlug(ctx context.Context, slug string) (domain.Destination, error) {
	return m.getBySlug(ctx, slug)
}
func (m *mockCatalogServicer) Create(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	return m.create(ctx, d)
}
func (m *mockCatalogServicer) Update(ctx context.Context, id uuid.UUID, patch domain.DestinationPatch) (domain.Destination, error) {
	return m.update(ctx, id, patch)
}
func (m *mockCatalogServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockCatalogServicer) Seed(ctx context.Context, secret string) ([]service.SeedResult, int, error) {
	return m.seed(ctx, secret)
}

var _ handler.CatalogServicer = (*mockCatalogServicer)(nil)

type mockSubmissionServicer struct {
	submitCustomRequest func(ctx context.Context, in service.CustomRequestInput) (domain.CustomRequest, domain.SubmissionResult, error)
	submitContact       func(ctx context.Context, in service.ContactInput) (domain.Contact, domain.SubmissionResult, error)
}

func (m *mockSubmissionServicer) SubmitCustomRequest(ctx context.Context, in service.CustomRequestInput) (domain.CustomRequest, domain.SubmissionResult, error) {
	return m.submitCustomRequest(ctx, in)
}
func (m *mockSubmissionServicer) SubmitContact(ctx context.Context, in service.ContactInput) (domain.Contact, domain.SubmissionResult, error) {
	return m.submitContact(ctx, in)
}

var _ handler.SubmissionServicer = (*mockSubmissionServicer)(nil)

type mockLeadServicer struct {
	listCustomRequests     func(ctx context.Context) ([]domain.CustomRequest, error)
	listContacts           func(ctx context.Context) ([]domain.Contact, error)
	setCustomRequestStatus func(ctx context.Context, id uuid.UUID, status domain.Status) error
	setContactStatus       func(ctx context.Context, id uuid.UUID, status domain.Status) error
}

func (m *mockLeadServicer) ListCustomRequests(ctx context.Context) ([]domain.CustomRequest, error) {
	return m.listCustomRequests(ctx)
}
func (m *mockLeadServicer) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	return m.listContacts(ctx)
}
func (m *mockLeadServicer) SetCustomRequestStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	return m.setCustomRequestStatus(ctx, id, status)
}
func (m *mockLeadServicer) SetContactStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	return m.setContactStatus(ctx, id, status)
}

var _ handler.LeadServicer = (*mockLeadServicer)(nil)

type mockBookingServicer struct {
	submit func(ctx context.Context, in service.BookingInput) error
}

func (m *mockBookingServicer) Submit(ctx context.Context, in service.BookingInput) error {
	return m.submit(ctx, in)
}

var _ handler.BookingServicer = (*mockBookingServicer)(nil)

type mockAuthServicer struct {
	signIn func(ctx context.Context, email, password string) (string, error)
}

func (m *mockAuthServicer) SignIn(ctx context.Context, email, password string) (string, error) {
	return m.signIn(ctx, email, password)
}

var _ handler.AuthServicer = (*mockAuthServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// testTokens is the session manager shared by handler tests; adminToken
// issues valid tokens against it.
var testTokens = auth.NewJWTManager("handler-test-secret", time.Hour)

// deps bundles the five servicer mocks; zero-value fields are fine for
// routes the test never hits.
type deps struct {
	catalog     handler.CatalogServicer
	submissions handler.SubmissionServicer
	leads       handler.LeadServicer
	bookings    handler.BookingServicer
	auth        handler.AuthServicer
}

// newTestRouter wires a Server with the given mocks behind the real admin
// guard, mirroring how main.go assembles the route tree.
func newTestRouter(d deps) http.Handler {
	srv := handler.NewServer(d.catalog, d.submissions, d.leads, d.bookings, d.auth)
	return srv.Routes(middleware.RequireAdmin(testTokens))
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := testTokens.GenerateToken("admin@ktokworld.com")
	require.NoError(t, err)
	return token
}

func bytesReader(s string) *bytes.Reader {
	return bytes.NewReader([]byte(s))
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// testEnvelope mirrors the response envelope for decoding in assertions.
type testEnvelope struct {
	Success  bool              `json:"success"`
	Data     json.RawMessage   `json:"data"`
	Error    string            `json:"error"`
	Message  string            `json:"message"`
	Warnings []string          `json:"warnings"`
	Details  map[string]string `json:"details"`
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) testEnvelope {
	t.Helper()
	var env testEnvelope
	require.NoError(t, json.NewDecoder(body).Decode(&env))
	return env
}
