// Package identity models the external identity authority the platform
// delegates authentication to. The rest of the application only talks to the
// Service interface and to per-client Sessions; it never reaches into the
// authority's own credential records.
package identity

import (
	"context"
	"errors"
)

// Identity is the record owned by the identity service. The application only
// observes it.
type Identity struct {
	UID   string
	Email string
}

// Error codes surfaced by the identity service. Every code maps into exactly
// one entry of the application-level taxonomy in the auth package.
var (
	ErrEmailInUse          = errors.New("identity: email already in use")
	ErrInvalidEmail        = errors.New("identity: invalid email format")
	ErrWeakPassword        = errors.New("identity: password too weak")
	ErrOperationNotAllowed = errors.New("identity: email/password sign-in disabled")
	ErrUserNotFound        = errors.New("identity: user not found")
	ErrWrongPassword       = errors.New("identity: wrong password")
	ErrUserDisabled        = errors.New("identity: user disabled")
	ErrTooManyRequests     = errors.New("identity: too many requests")
	ErrNetwork             = errors.New("identity: network failure")
)

// Service is the authority for credential verification and account creation.
type Service interface {
	// CreateAccount provisions a new account with the raw password and
	// returns its identity.
	CreateAccount(ctx context.Context, email, password string) (Identity, error)
	// Authenticate verifies the raw password against the service's own
	// credential record and returns the identity on success.
	Authenticate(ctx context.Context, email, password string) (Identity, error)
}
