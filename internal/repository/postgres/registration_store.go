package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"communityregistration/internal/domain"
)

// Events created lazily by a registration get this capacity regardless of the
// column default, matching the seeding rules for both catalog-backed and
// placeholder events.
const lazyEventCapacity = 100

// placeholderLocation is used when a registration references an event the
// catalog doesn't know about.
const placeholderLocation = "To be announced"

type registrationStore struct {
	DB *sql.DB
}

// NewRegistrationStore returns a RegistrationStore backed by Postgres.
func NewRegistrationStore(db *sql.DB) domain.RegistrationStore {
	return &registrationStore{DB: db}
}

// Register runs the whole registration attempt in one transaction. The event
// row is read with SELECT ... FOR UPDATE, so concurrent attempts for the same
// event serialize on the row lock and cannot both commit past the capacity
// check. See the duplicate/capacity checks below for the rejection paths.
func (s *registrationStore) Register(ctx context.Context, req *domain.RegistrationRequest, catalogEntry *domain.CatalogEntry) (outcome *domain.RegistrationOutcome, err error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC()

	user, err := s.findOrCreateUser(ctx, tx, req, now)
	if err != nil {
		return nil, err
	}

	event, err := s.resolveEvent(ctx, tx, req.EventTitle, catalogEntry, now)
	if err != nil {
		return nil, err
	}

	var existingID string
	dupErr := tx.QueryRowContext(ctx,
		`SELECT id FROM registrations WHERE user_id = $1 AND event_id = $2`,
		user.ID, event.ID,
	).Scan(&existingID)
	if dupErr == nil {
		err = domain.ErrDuplicateRegistration
		return nil, err
	}
	if !errors.Is(dupErr, sql.ErrNoRows) {
		err = fmt.Errorf("check existing registration: %w", dupErr)
		return nil, err
	}

	if event.IsFull() {
		err = domain.ErrCapacityExceeded
		return nil, err
	}

	reg := &domain.Registration{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		EventID:      event.ID,
		Status:       domain.StatusConfirmed,
		RegisteredAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO registrations (id, user_id, event_id, status, registered_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		reg.ID, reg.UserID, reg.EventID, reg.Status, reg.RegisteredAt, reg.CreatedAt, reg.UpdatedAt,
	); err != nil {
		err = fmt.Errorf("insert registration: %w", err)
		return nil, err
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE events SET registered_count = registered_count + 1, updated_at = $2 WHERE id = $1`,
		event.ID, now,
	); err != nil {
		err = fmt.Errorf("increment registered count: %w", err)
		return nil, err
	}
	event.RegisteredCount++
	event.UpdatedAt = now

	if err = tx.Commit(); err != nil {
		err = fmt.Errorf("commit transaction: %w", err)
		return nil, err
	}

	return &domain.RegistrationOutcome{
		Registration: reg,
		User:         user,
		Event:        event,
	}, nil
}

// findOrCreateUser looks the user up by email and inserts a new row with the
// request's defaults when absent. Existing users are never mutated here.
func (s *registrationStore) findOrCreateUser(ctx context.Context, tx *sql.Tx, req *domain.RegistrationRequest, now time.Time) (*domain.User, error) {
	u := &domain.User{}
	err := tx.QueryRowContext(ctx,
		`SELECT id, first_name, last_name, email, age, created_at, updated_at
		 FROM users
		 WHERE email = $1`,
		req.Email,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Age, &u.CreatedAt, &u.UpdatedAt)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	u = domain.NewUser(req.FirstName, req.LastName, req.Email, req.Age, now, now)
	u.ID = uuid.NewString()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO users (id, first_name, last_name, email, age, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.FirstName, u.LastName, u.Email, u.Age, u.CreatedAt, u.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// resolveEvent locks and returns the event row for the given title, creating
// it when absent. When the catalog knows the title, an existing event's date
// and location are refreshed from the catalog (the catalog is the source of
// truth for both), and a new event is seeded from it.
func (s *registrationStore) resolveEvent(ctx context.Context, tx *sql.Tx, title string, entry *domain.CatalogEntry, now time.Time) (*domain.Event, error) {
	e := &domain.Event{}
	err := tx.QueryRowContext(ctx,
		`SELECT id, title, description, date, location, capacity, registered_count, registration_open, created_at, updated_at
		 FROM events
		 WHERE title = $1
		 FOR UPDATE`,
		title,
	).Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.Capacity,
		&e.RegisteredCount, &e.RegistrationOpen, &e.CreatedAt, &e.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return s.createEvent(ctx, tx, title, entry, now)
	}
	if err != nil {
		return nil, fmt.Errorf("lock event row: %w", err)
	}

	if entry != nil {
		if _, err := tx.ExecContext(ctx,
			`UPDATE events SET date = $2, location = $3, updated_at = $4 WHERE id = $1`,
			e.ID, entry.Date, entry.Location, now,
		); err != nil {
			return nil, fmt.Errorf("refresh event from catalog: %w", err)
		}
		e.Date = entry.Date
		e.Location = entry.Location
		e.UpdatedAt = now
	}
	return e, nil
}

func (s *registrationStore) createEvent(ctx context.Context, tx *sql.Tx, title string, entry *domain.CatalogEntry, now time.Time) (*domain.Event, error) {
	e := &domain.Event{
		ID:               uuid.NewString(),
		Title:            title,
		Date:             now,
		Location:         placeholderLocation,
		Capacity:         lazyEventCapacity,
		RegisteredCount:  0,
		RegistrationOpen: true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if entry != nil {
		e.Description = entry.Description
		e.Date = entry.Date
		e.Location = entry.Location
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO events (id, title, description, date, location, capacity, registered_count, registration_open, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		e.ID, e.Title, e.Description, e.Date, e.Location, e.Capacity,
		e.RegisteredCount, e.RegistrationOpen, e.CreatedAt, e.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return e, nil
}
