package auth

import (
	"errors"

	"github.com/Hasini-Stu/tasknew/identity"
)

// Kind classifies an authentication failure for callers and the UI.
type Kind string

const (
	KindDuplicateAccount   Kind = "duplicate_account"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindInvalidEmailFormat Kind = "invalid_email_format"
	KindWeakPassword       Kind = "weak_password"
	KindAuthDisabled       Kind = "auth_disabled"
	KindNetworkError       Kind = "network_error"
	KindAccountDisabled    Kind = "account_disabled"
	KindRateLimited        Kind = "rate_limited"
	KindUnknown            Kind = "unknown"
)

// Error carries a taxonomy kind plus a user-facing message. For KindUnknown
// the raw provider detail lives only in the wrapped cause, never in Message.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// KindOf returns the taxonomy kind of err, or KindUnknown for anything that
// is not an *Error.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

// User-facing messages. The web client renders these verbatim.
const (
	msgDuplicateAccount = "An account with this email already exists"
	msgInvalidCreds     = "Invalid email or password"
	msgInvalidEmail     = "Invalid email format"
	msgWeakPassword     = "Password should be at least 6 characters"
	msgAuthDisabled     = "Email/password authentication is not enabled"
	msgNetwork          = "Network error. Please check your connection."
	msgDisabled         = "This account has been disabled."
	msgRateLimited      = "Too many failed attempts. Please try again later."
)

// mapIdentityError folds every identity-service error code into exactly one
// taxonomy kind. Unmapped errors become KindUnknown with the fallback message;
// the original error is preserved as the cause for logs.
func mapIdentityError(err error, fallback string) *Error {
	switch {
	case errors.Is(err, identity.ErrEmailInUse):
		return newError(KindDuplicateAccount, msgDuplicateAccount, err)
	case errors.Is(err, identity.ErrUserNotFound), errors.Is(err, identity.ErrWrongPassword):
		return newError(KindInvalidCredentials, msgInvalidCreds, err)
	case errors.Is(err, identity.ErrInvalidEmail):
		return newError(KindInvalidEmailFormat, msgInvalidEmail, err)
	case errors.Is(err, identity.ErrWeakPassword):
		return newError(KindWeakPassword, msgWeakPassword, err)
	case errors.Is(err, identity.ErrOperationNotAllowed):
		return newError(KindAuthDisabled, msgAuthDisabled, err)
	case errors.Is(err, identity.ErrNetwork):
		return newError(KindNetworkError, msgNetwork, err)
	case errors.Is(err, identity.ErrUserDisabled):
		return newError(KindAccountDisabled, msgDisabled, err)
	case errors.Is(err, identity.ErrTooManyRequests):
		return newError(KindRateLimited, msgRateLimited, err)
	default:
		return newError(KindUnknown, fallback, err)
	}
}
