package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. a password exceeding the bcrypt length limit).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a create collides with an existing row,
// e.g. inserting an item or user whose client-assigned ID is already taken.
// Handlers should map this to HTTP 400.
var ErrConflict = errors.New("already exists")

// ErrUnauthorized is returned by the auth service when login credentials do
// not match the configured account.
// Handlers should map this to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")
