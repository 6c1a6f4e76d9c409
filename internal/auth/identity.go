package auth

import "context"

type contextKey int

const (
	tokenKey contextKey = iota
	identityKey
)

// Identity is the request-scoped result of token verification: the
// resolved user behind the bearer token. It lives only in the request
// context and is never cached across requests.
type Identity struct {
	UserID   string
	Username string
}

// WithToken stores an extracted bearer token in the context.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFrom returns the extracted bearer token, if any.
func TokenFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}

// WithIdentity attaches a resolved identity to the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom returns the resolved identity, if the request was
// authenticated.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
