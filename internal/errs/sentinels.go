// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Sentinels shared by the repository, service and handler layers. Handlers
// translate these to HTTP status codes with errors.Is; nothing else should
// string-match error text.
var (
	// ErrUnauthenticated indicates a missing, malformed, expired or forged
	// token, or a token whose user no longer exists.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrAccountDisabled indicates the resolved user's active flag is false.
	ErrAccountDisabled = errors.New("account disabled")

	// ErrForbidden indicates a role or ownership mismatch.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidID indicates a malformed resource identifier.
	ErrInvalidID = errors.New("invalid id")

	// ErrEmailTaken indicates a registration attempt with an email that is
	// already in use.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials indicates a failed login. Deliberately covers both
	// unknown email and wrong password.
	ErrInvalidCredentials = errors.New("incorrect email or password")
)
