package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL bounds how long an issued credential stays usable.
const TokenTTL = 7 * 24 * time.Hour

var (
	// ErrTokenExpired means the signature checked out but the exp claim lapsed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers everything else: malformed, tampered, wrong alg.
	ErrTokenInvalid = errors.New("invalid token")
)

// Tokens signs and verifies identity tokens. The signing secret is injected at
// construction; there is no package-level key.
type Tokens struct {
	secret []byte
}

func NewTokens(secret string) *Tokens {
	return &Tokens{secret: []byte(secret)}
}

// Sign issues a token carrying exactly the owner's user id.
func (t *Tokens) Sign(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(TokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}

// Verify checks signature and expiry and returns the embedded user id.
// Both error values must be treated as a rejection by callers; the split only
// matters for logging.
func (t *Tokens) Verify(tokenStr string) (string, error) {
	tok, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !tok.Valid {
		return "", ErrTokenInvalid
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalid
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrTokenInvalid
	}
	return sub, nil
}
