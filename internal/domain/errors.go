package domain

import "errors"

// Sentinel errors shared across services and repositories. Controllers map
// these onto HTTP statuses; anything unrecognized becomes a 500.
var (
	// ErrNotFound is returned when a referenced user, registration, or
	// payment does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when a request field is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidState is returned when the request is well-formed but a
	// domain precondition is unmet (e.g. rejecting an abstract that has no
	// fallback event configured).
	ErrInvalidState = errors.New("invalid state")

	// ErrConflict is returned on duplicate state transitions, such as
	// checking in an already-checked-in code or re-rejecting an abstract.
	ErrConflict = errors.New("conflict")

	// ErrNotCheckedIn is returned when event attendance is marked for a
	// user who has not checked in at the venue.
	ErrNotCheckedIn = errors.New("user not checked in")

	// ErrUnauthorized is returned for a missing, invalid, or forged
	// session credential.
	ErrUnauthorized = errors.New("unauthorized")
)
