package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"dailydiet/internal/auth"
	"dailydiet/internal/config"
	httpx "dailydiet/internal/http"
	"dailydiet/internal/meal"
)

type testEnv struct {
	router http.Handler
	users  *auth.MemoryUserStore
	meals  *meal.MemoryStore
	tokens *auth.Tokens
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := config.Config{
		HTTPAddr:   ":0",
		BcryptCost: bcrypt.MinCost,
	}
	users := auth.NewMemoryUserStore()
	meals := meal.NewMemoryStore()
	tokens := auth.NewTokens("test-secret")

	return &testEnv{
		router: httpx.NewRouter(cfg, zerolog.Nop(), users, meals, tokens),
		users:  users,
		meals:  meals,
		tokens: tokens,
	}
}

// signedUpUser seeds a user directly and returns it with a valid token cookie.
func (e *testEnv) signedUpUser(t *testing.T, name, email, password string) (auth.User, *http.Cookie) {
	t.Helper()

	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)

	u, err := e.users.Create(t.Context(), auth.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	require.NoError(t, err)

	tok, err := e.tokens.Sign(u.ID)
	require.NoError(t, err)

	return u, &http.Cookie{Name: "token", Value: tok}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
