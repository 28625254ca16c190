package dashboard

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("user not found or password incorrect")
	ErrOutcomeRequired    = errors.New("a completed task needs an outcome")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrImmutableField     = errors.New("technician and date cannot change after creation")
	ErrNotSaturday        = errors.New("extra shifts can only be registered on a Saturday")
	ErrNotTechnician      = errors.New("only technicians can do this")
	ErrValidation         = errors.New("validation failed")
	ErrEmailTaken         = errors.New("email already in use")
)
