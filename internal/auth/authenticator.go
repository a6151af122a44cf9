package auth

import "github.com/mmynk/tal3a/internal/models"

// Verifier turns a bearer credential into the caller's principal.
// The engine never authenticates anyone itself; it trusts whatever principal
// the configured Verifier returns. JWTManager is the HMAC token
// implementation; an OAuth or session-backed one can be swapped in without
// touching the services.
type Verifier interface {
	Verify(token string) (models.Principal, error)
}
