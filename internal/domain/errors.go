package domain

import "errors"

// Sentinel errors shared across services, repositories, and handlers.
// Handlers map these to HTTP status codes; nothing else is exposed to clients.
var (
	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrEmailTaken is returned when registration hits the email uniqueness
	// constraint. The database constraint is the final arbiter; this error is
	// only ever derived from it, never from a check-then-insert.
	ErrEmailTaken = errors.New("email already in use")

	// ErrInvalidCredentials covers both "no such user" and "wrong password".
	// The two cases are deliberately indistinguishable to the client.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrForbidden means the caller is authenticated but does not own the
	// resource it is trying to mutate.
	ErrForbidden = errors.New("forbidden")

	// ErrAlreadyLiked is returned when a user likes a post twice.
	ErrAlreadyLiked = errors.New("post already liked")

	// ErrUnderage is returned when the registrant's age is below the platform minimum.
	ErrUnderage = errors.New("age below platform minimum")

	// ErrConsentRequired is returned when a minor registers without parental consent.
	ErrConsentRequired = errors.New("parental consent required for minors")
)
