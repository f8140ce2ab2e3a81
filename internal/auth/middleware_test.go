package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAuth(t *testing.T) {
	tokens := NewTokens("test-secret")

	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		seenID = uid
		w.WriteHeader(http.StatusOK)
	})
	guarded := RequireAuth(tokens, zerolog.Nop())(next)

	t.Run("no cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meals", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"unauthorized"}`, rec.Body.String())
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/meals", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "tampered"})

		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := jwt.MapClaims{
			"sub": "user-123",
			"exp": time.Now().Add(-time.Hour).Unix(),
		}
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/meals", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: tok})

		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"unauthorized"}`, rec.Body.String())
	})

	t.Run("valid token", func(t *testing.T) {
		tok, err := tokens.Sign("user-123")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/meals", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: tok})

		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-123", seenID)
	})
}
