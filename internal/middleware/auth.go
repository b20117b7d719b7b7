package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jayxvj/k2k-world/internal/auth"
)

type contextKey string

// adminEmailKey carries the authenticated admin identity through the
// request context, set by RequireAdmin and read via AdminEmail.
const adminEmailKey contextKey = "adminEmail"

// RequireAdmin gates the back-office routes behind a valid Bearer session
// token. Requests without one get 401 and a pointer to the login entry
// point — the API analog of the admin shell redirecting to /admin/login.
func RequireAdmin(tokens *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				unauthorized(w)
				return
			}

			email, err := tokens.ValidateToken(token)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), adminEmailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminEmail returns the authenticated admin identity stored by
// RequireAdmin, or "" when the request did not pass through it.
func AdminEmail(ctx context.Context) string {
	email, _ := ctx.Value(adminEmailKey).(string)
	return email
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}
	return h[len(prefix):], true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   "unauthorized",
		"message": "sign in at /auth/login",
	})
}
