// Package middleware implements the authentication chain: TokenExtractor
// pulls the bearer token out of the Authorization header, UserExtractor
// verifies it and resolves the user behind it.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/okoskela/bloglist-server/internal/apperr"
	"github.com/okoskela/bloglist-server/internal/auth"
	"github.com/okoskela/bloglist-server/internal/httpx"
	"github.com/okoskela/bloglist-server/internal/models"
)

const bearerPrefix = "bearer "

// ExtractToken returns the bearer token from an Authorization header
// value, or "" when the header is absent or not a bearer credential.
// A missing token is a normal state here; whether it is fatal is the
// route's decision.
func ExtractToken(authorization string) string {
	if len(authorization) >= len(bearerPrefix) &&
		strings.EqualFold(authorization[:len(bearerPrefix)], bearerPrefix) {
		return authorization[len(bearerPrefix):]
	}
	return ""
}

// TokenExtractor stores the bearer token, when present, in the request
// context. It never rejects a request.
func TokenExtractor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := ExtractToken(r.Header.Get("Authorization")); token != "" {
			r = r.WithContext(auth.WithToken(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}

// UserResolver is the slice of the user store the extractor needs to
// turn a token subject into a live user.
type UserResolver interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// UserExtractor verifies the extracted token and attaches the resolved
// identity to the request context. With required=true a missing token
// rejects the request; with required=false the request passes through
// anonymously and the handler decides what that means.
func UserExtractor(codec *auth.TokenCodec, users UserResolver, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := auth.TokenFrom(r.Context())
			if !ok {
				if required {
					httpx.Error(w, apperr.New(apperr.KindTokenMissing, "token missing"))
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			claims, err := codec.Verify(token)
			if err != nil {
				httpx.Error(w, err)
				return
			}

			user, err := users.GetUserByID(r.Context(), claims.Subject)
			if err != nil || user == nil {
				httpx.Error(w, apperr.New(apperr.KindUserNotFound, "user not found"))
				return
			}

			identity := auth.Identity{UserID: user.ID.Hex(), Username: user.Username}
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		})
	}
}
