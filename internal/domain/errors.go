package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// record does not exist. On read paths this is a normal outcome (handlers
// map it to HTTP 404); on update/delete paths it is an error.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (missing required field, malformed email, short message).
// Handlers map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a write would violate a uniqueness
// constraint, in practice a duplicate destination slug. HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrUnauthorized covers both a failed admin sign-in and a wrong seed
// secret. HTTP 401. Invalid-credential detail is intentionally not
// distinguished from unknown-email so the login form can't be used to probe
// for the admin address.
var ErrUnauthorized = errors.New("unauthorized")

// ErrAuthNotConfigured is returned by sign-in when the admin identity
// variables are not set. It must stay distinguishable from ErrUnauthorized:
// "not configured" needs an operator fix, not a password retry. HTTP 503.
var ErrAuthNotConfigured = errors.New("auth not configured")

// ErrMailNotConfigured is returned by the notification sender when SMTP
// credentials are missing or rejected. Callers use it to produce a
// user-meaningful message instead of a raw transport error.
var ErrMailNotConfigured = errors.New("mail transport not configured")
