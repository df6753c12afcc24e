package store

import (
	"errors"

	"gorm.io/gorm"
)

// Business-rule failures are values, not panics: handlers branch on these
// with errors.Is and map each one to a specific HTTP status. Anything else
// coming out of a store method is an infrastructure failure.
var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = gorm.ErrRecordNotFound

	// ErrEmailTaken is returned by UserStore.Create when the email is in use.
	ErrEmailTaken = errors.New("email already in use")

	// ErrForbidden is returned when the caller does not own the resource.
	ErrForbidden = errors.New("not the owner of this resource")

	// ErrAlreadyApplied is returned on a duplicate (job, seeker) application.
	ErrAlreadyApplied = errors.New("already applied to this job")
)
