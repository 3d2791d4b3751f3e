package domain

import (
	"context"
	"time"
)

// Registration statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Registration links one user to one event. At most one registration exists
// per (user, event) pair; this is enforced both by the registration
// transaction and by a unique index.
// swagger:model Registration
type Registration struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	EventID      string    `json:"event_id"`
	Status       string    `json:"status"`
	RegisteredAt time.Time `json:"registered_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Registrant is a registration joined with the registrant's identity, for the
// per-event listing.
// swagger:model Registrant
type Registrant struct {
	RegistrationID string    `json:"registration_id"`
	Status         string    `json:"status"`
	RegisteredAt   time.Time `json:"registered_at"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
}

// RegistrationRequest is a registration attempt that has already passed
// field-level validation at the HTTP boundary.
type RegistrationRequest struct {
	FirstName  string
	LastName   string
	Email      string
	Age        int
	EventTitle string
}

// RegistrationOutcome is the result of a committed registration.
type RegistrationOutcome struct {
	Registration *Registration
	User         *User
	Event        *Event
}

// RegistrationStore executes the atomic registration unit against the
// datastore: find-or-create the user, find-or-create the event (seeded from
// the given catalog entry when non-nil, refreshed from it when the event
// already exists), duplicate and capacity checks, registration insert and
// counter increment. Every step runs in one transaction; on
// ErrDuplicateRegistration, ErrCapacityExceeded, or any datastore error the
// transaction is rolled back and no partial writes survive.
type RegistrationStore interface {
	Register(ctx context.Context, req *RegistrationRequest, catalogEntry *CatalogEntry) (*RegistrationOutcome, error)
}

// RegistrationRepository defines read-side access to registrations.
type RegistrationRepository interface {
	ListByEventID(ctx context.Context, eventID string) ([]*Registrant, error)
}

// RegistrationService is the business entry point for a registration attempt.
// After a successful commit it triggers a best-effort confirmation email that
// never affects the returned result.
type RegistrationService interface {
	Register(ctx context.Context, req *RegistrationRequest) (*RegistrationOutcome, error)
}
