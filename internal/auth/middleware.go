package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
)

type ctxKey string

const userIDKey ctxKey = "user_id"

func UserIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(userIDKey)
	id, ok := v.(string)
	return id, ok
}

// RequireAuth reads the token cookie, verifies it and puts the resolved user id
// on the request context. Every failure is the same 401; expired vs malformed
// is only visible in the logs.
//
// The guard never touches the datastore: a deleted user's still-valid token
// keeps working until it expires. Staleness is bounded by TokenTTL.
func RequireAuth(tokens *Tokens, log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie("token")
			if err != nil || c.Value == "" {
				unauthorized(w)
				return
			}

			uid, err := tokens.Verify(c.Value)
			if err != nil {
				if errors.Is(err, ErrTokenExpired) {
					log.Debug().Str("path", r.URL.Path).Msg("rejected expired token")
				} else {
					log.Debug().Str("path", r.URL.Path).Msg("rejected invalid token")
				}
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "unauthorized"})
}
