package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"dailydiet/internal/auth"
	"dailydiet/internal/metrics"
)

const tokenCookieMaxAge = int(auth.TokenTTL / time.Second)

type UserHandler struct {
	Users        auth.UserStore
	Tokens       *auth.Tokens
	Agg          *metrics.Aggregator
	BcryptCost   int
	CookieSecure bool
	Log          zerolog.Logger
}

type signupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if len(req.Name) < 4 || len(req.Name) > 32 {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if len(req.Password) < 4 || len(req.Password) > 32 {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	hash, err := auth.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	_, err = h.Users.Create(r.Context(), auth.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			respondError(w, http.StatusBadRequest, "email already used")
			return
		}
		h.Log.Error().Err(err).Msg("signup failed")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

type signinReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signin never reveals whether the email or the password was wrong; both paths
// return the same 401 body.
func (h *UserHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	u, err := h.Users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			respondError(w, http.StatusUnauthorized, "authentication error")
			return
		}
		h.Log.Error().Err(err).Msg("signin lookup failed")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	ok, err := auth.CheckPassword(u.PasswordHash, req.Password)
	if err != nil {
		// Malformed digest is a misconfiguration, not a bad password.
		h.Log.Error().Err(err).Msg("malformed password digest")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication error")
		return
	}

	token, err := h.Tokens.Sign(u.ID)
	if err != nil {
		h.Log.Error().Err(err).Msg("token signing failed")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   tokenCookieMaxAge,
		HttpOnly: true,
		Secure:   h.CookieSecure,
	})
	w.WriteHeader(http.StatusOK)
}

// Metrics is the one guarded route that re-checks the user row: a valid token
// for a deleted account still gets 401 here, matching the signin contract.
func (h *UserHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	if _, err := h.Users.GetByID(r.Context(), uid); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			respondError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		h.Log.Error().Err(err).Msg("metrics user lookup failed")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	summary, err := h.Agg.Summary(r.Context(), uid)
	if err != nil {
		h.Log.Error().Err(err).Msg("metrics aggregation failed")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"metrics": summary})
}
