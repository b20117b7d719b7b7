package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayxvj/k2k-world/internal/domain"
)

func TestLogin_200(t *testing.T) {
	h := newTestRouter(deps{auth: &mockAuthServicer{
		signIn: func(_ context.Context, email, password string) (string, error) {
			assert.Equal(t, "admin@ktokworld.com", email)
			assert.Equal(t, "pw12345678", password)
			return "signed.jwt.token", nil
		},
	}})

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		jsonBody(t, map[string]string{"email": "admin@ktokworld.com", "password": "pw12345678"}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec.Body)
	var data map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "signed.jwt.token", data["token"])
}

func TestLogin_400_MissingFields(t *testing.T) {
	h := newTestRouter(deps{auth: &mockAuthServicer{}})

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		jsonBody(t, map[string]string{"email": "admin@ktokworld.com"}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_401_BadCredentials(t *testing.T) {
	h := newTestRouter(deps{auth: &mockAuthServicer{
		signIn: func(_ context.Context, _, _ string) (string, error) {
			return "", fmt.Errorf("svc: %w", domain.ErrUnauthorized)
		},
	}})

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		jsonBody(t, map[string]string{"email": "admin@ktokworld.com", "password": "wrong"}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestLogin_503_NotConfigured verifies an unconfigured admin identity is
// reported as a service problem, not a credential problem.
func TestLogin_503_NotConfigured(t *testing.T) {
	h := newTestRouter(deps{auth: &mockAuthServicer{
		signIn: func(_ context.Context, _, _ string) (string, error) {
			return "", fmt.Errorf("svc: %w", domain.ErrAuthNotConfigured)
		},
	}})

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		jsonBody(t, map[string]string{"email": "admin@ktokworld.com", "password": "pw"}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	env := decodeEnvelope(t, rec.Body)
	assert.Contains(t, env.Error, "not configured")
}

func TestMe_200_ReturnsTokenSubject(t *testing.T) {
	h := newTestRouter(deps{})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec.Body)
	var data map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "admin@ktokworld.com", data["email"])
}

func TestMe_401_NoToken(t *testing.T) {
	h := newTestRouter(deps{})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout_200(t *testing.T) {
	h := newTestRouter(deps{})

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
