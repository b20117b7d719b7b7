package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayxvj/k2k-world/internal/domain"
	"github.com/jayxvj/k2k-world/internal/service"
)

func contactPayload() map[string]any {
	return map[string]any{
		"name":    "Rahul Verma",
		"email":   "rahul@example.com",
		"subject": "Honeymoon packages",
		"message": "Do you have any winter honeymoon packages for Manali?",
	}
}

func contactFixture() domain.Contact {
	return domain.Contact{
		ID:      uuid.New(),
		Name:    "Rahul Verma",
		Email:   "rahul@example.com",
		Subject: "Honeymoon packages",
		Status:  domain.StatusNew,
	}
}

func TestSubmitContact_201(t *testing.T) {
	fixture := contactFixture()
	h := newTestRouter(deps{submissions: &mockSubmissionServicer{
		submitContact: func(_ context.Context, in service.ContactInput) (domain.Contact, domain.SubmissionResult, error) {
			assert.Equal(t, "Honeymoon packages", in.Subject)
			return fixture, domain.SubmissionResult{}, nil
		},
	}})

	req := httptest.NewRequest(http.MethodPost, "/contacts", jsonBody(t, contactPayload()))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec.Body)
	assert.True(t, env.Success)
	assert.Contains(t, env.Message, "message sent")

	var got domain.Contact
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, fixture.ID, got.ID)
}

func TestSubmitContact_DegradedStillSucceeds(t *testing.T) {
	h := newTestRouter(deps{submissions: &mockSubmissionServicer{
		submitContact: func(_ context.Context, _ service.ContactInput) (domain.Contact, domain.SubmissionResult, error) {
			return contactFixture(), domain.SubmissionResult{NotifyErr: errors.New("dial tcp: timeout")}, nil
		},
	}})

	req := httptest.NewRequest(http.MethodPost, "/contacts", jsonBody(t, contactPayload()))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec.Body)
	assert.True(t, env.Success)
	require.Len(t, env.Warnings, 1)
}

func TestListContacts_200(t *testing.T) {
	h := newTestRouter(deps{leads: &mockLeadServicer{
		listContacts: func(_ context.Context) ([]domain.Contact, error) {
			return []domain.Contact{contactFixture()}, nil
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListContacts_401_NoToken(t *testing.T) {
	h := newTestRouter(deps{leads: &mockLeadServicer{}})

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestContactStatus_200(t *testing.T) {
	var gotID uuid.UUID
	id := uuid.New()
	h := newTestRouter(deps{leads: &mockLeadServicer{
		setContactStatus: func(_ context.Context, reqID uuid.UUID, status domain.Status) error {
			gotID = reqID
			assert.Equal(t, domain.StatusClosed, status)
			return nil
		},
	}})

	req := httptest.NewRequest(http.MethodPatch,
		"/contacts/"+id.String()+"/status",
		jsonBody(t, map[string]string{"status": "closed"}))
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, gotID)
}
