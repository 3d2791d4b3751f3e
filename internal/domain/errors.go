package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateRegistration is returned when the same user registers
	// twice for the same event. The transaction is rolled back.
	ErrDuplicateRegistration = errors.New("already registered for this event")

	// ErrCapacityExceeded is returned when an event has no remaining seats.
	// The transaction is rolled back.
	ErrCapacityExceeded = errors.New("event is at full capacity")
)
