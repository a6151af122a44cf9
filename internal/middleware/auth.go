package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"
	"github.com/mmynk/tal3a/internal/auth"
	"github.com/mmynk/tal3a/internal/models"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// PrincipalKey is the context key for the authenticated caller.
const PrincipalKey contextKey = "principal"

// GetPrincipal extracts the caller from the context.
// Returns the empty principal if the request was not authenticated.
func GetPrincipal(ctx context.Context) models.Principal {
	p, _ := ctx.Value(PrincipalKey).(models.Principal)
	return p
}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	if info := callInfoFrom(ctx); info != nil {
		info.Principal = p
	}
	return context.WithValue(ctx, PrincipalKey, p)
}

func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// RequireAuth returns an interceptor that rejects requests without a valid
// bearer token and puts the verified principal in the request context.
func RequireAuth(verifier auth.Verifier) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			token, ok := bearerToken(authHeader)
			if !ok {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			principal, err := verifier.Verify(token)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			return next(WithPrincipal(ctx, principal), req)
		}
	}
}

// OptionalAuth returns an interceptor that verifies a bearer token when one
// is present but lets anonymous requests through.
func OptionalAuth(verifier auth.Verifier) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if token, ok := bearerToken(req.Header().Get("Authorization")); ok {
				// Invalid tokens are ignored for optional auth.
				if principal, err := verifier.Verify(token); err == nil {
					ctx = WithPrincipal(ctx, principal)
				}
			}
			return next(ctx, req)
		}
	}
}
