package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"communityregistration/internal/domain"

	"github.com/stretchr/testify/require"
)

// fakeEventRepo implements domain.EventRepository for tests.
type fakeEventRepo struct {
	byID    map[string]*domain.Event
	list    []*domain.Event
	listErr error
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

// fakeRegistrationRepo implements domain.RegistrationRepository for tests.
type fakeRegistrationRepo struct {
	byEvent map[string][]*domain.Registrant
	err     error
}

func (f *fakeRegistrationRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.Registrant, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byEvent[eventID], nil
}

func TestEventService_ListEvents(t *testing.T) {
	ev := &domain.Event{ID: "ev-1", Title: "Game Jam Weekend", Date: time.Now(), Capacity: 100}
	svc := NewEventService(&fakeEventRepo{list: []*domain.Event{ev}}, &fakeRegistrationRepo{})

	events, err := svc.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "ev-1", events[0].ID)
}

func TestEventService_ListEvents_NilBecomesEmpty(t *testing.T) {
	svc := NewEventService(&fakeEventRepo{}, &fakeRegistrationRepo{})

	events, err := svc.ListEvents(context.Background())
	require.NoError(t, err)
	require.NotNil(t, events)
	require.Empty(t, events)
}

func TestEventService_ListRegistrants(t *testing.T) {
	ev := &domain.Event{ID: "ev-1", Title: "Game Jam Weekend"}
	regs := []*domain.Registrant{{RegistrationID: "reg-1", FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}}
	svc := NewEventService(
		&fakeEventRepo{byID: map[string]*domain.Event{"ev-1": ev}},
		&fakeRegistrationRepo{byEvent: map[string][]*domain.Registrant{"ev-1": regs}},
	)

	got, err := svc.ListRegistrants(context.Background(), "ev-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "jane@example.com", got[0].Email)
}

func TestEventService_ListRegistrants_UnknownEvent(t *testing.T) {
	svc := NewEventService(&fakeEventRepo{}, &fakeRegistrationRepo{})

	_, err := svc.ListRegistrants(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_ListRegistrants_RepoError(t *testing.T) {
	ev := &domain.Event{ID: "ev-1"}
	svc := NewEventService(
		&fakeEventRepo{byID: map[string]*domain.Event{"ev-1": ev}},
		&fakeRegistrationRepo{err: errors.New("boom")},
	)

	_, err := svc.ListRegistrants(context.Background(), "ev-1")
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrNotFound)
}
