package domain

import (
	"context"
	"time"
)

// Event represents a community event users can register for. Rows are created
// lazily the first time a registration references a title not yet stored,
// seeded from the event catalog when a matching entry exists.
// swagger:model Event
type Event struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Date             time.Time `json:"date"`
	Location         string    `json:"location"`
	Capacity         int       `json:"capacity"`
	RegisteredCount  int       `json:"registered_count"`
	RegistrationOpen bool      `json:"registration_open"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// IsFull reports whether the event has no remaining seats.
func (e *Event) IsFull() bool {
	return e.RegisteredCount >= e.Capacity
}

// EventRepository defines read-side access to stored events. All writes to
// events happen inside the registration transaction (RegistrationStore).
type EventRepository interface {
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
}

// EventService defines the read-side operations exposed over HTTP.
type EventService interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	// ListRegistrants returns the registrations for an event together with
	// the registrant's name and email. Returns ErrNotFound for an unknown event.
	ListRegistrants(ctx context.Context, eventID string) ([]*Registrant, error)
}
