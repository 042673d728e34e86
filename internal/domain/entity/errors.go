package entity

import (
	"errors"
)

// Sentinel errors for the service layer. The REST boundary maps them to
// status codes; everything else wraps them with fmt.Errorf("%w").
var (
	// ErrUnauthorized means no valid session accompanied a gated operation.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials means the password did not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDepotMismatch means the station master exists but is bound to a
	// different depot than the one selected at login. Kept distinct from
	// ErrInvalidCredentials so the login form can say so.
	ErrDepotMismatch = errors.New("station master is not assigned to this depot")

	// ErrBadRequest means the submitted payload was empty or unparseable.
	ErrBadRequest = errors.New("bad request")
)
