package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/okoskela/bloglist-server/internal/apperr"
)

// DefaultTokenTTL is the expiry window used when the configuration
// does not override it.
const DefaultTokenTTL = time.Hour

// Claims binds a user's id (subject) and username into a signed token.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// TokenCodec signs and verifies bearer tokens. The secret and expiry
// window are fixed at construction so tests can supply their own.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given user. The token is the sole proof
// of authentication; nothing is retained server-side.
func (c *TokenCodec) Issue(userID, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Username: username,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the claims. Expired
// tokens are reported distinctly from malformed or forged ones so the
// caller can tell "log in again" from "malformed request".
func (c *TokenCodec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Method)
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.Wrap(apperr.KindTokenExpired, "token expired", err)
		}
		return nil, apperr.Wrap(apperr.KindTokenInvalid, "token invalid", err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, apperr.New(apperr.KindTokenInvalid, "token invalid")
	}
	return claims, nil
}
