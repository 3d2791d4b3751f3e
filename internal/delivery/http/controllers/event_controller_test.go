package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"communityregistration/internal/delivery/http/helpers"
	"communityregistration/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventService implements domain.EventService for tests.
type fakeEventService struct {
	events      []*domain.Event
	registrants map[string][]*domain.Registrant
	err         error
}

func (f *fakeEventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func (f *fakeEventService) ListRegistrants(ctx context.Context, eventID string) ([]*domain.Registrant, error) {
	if f.err != nil {
		return nil, f.err
	}
	regs, ok := f.registrants[eventID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return regs, nil
}

const testEventID = "11111111-2222-3333-4444-555555555555"

func TestEventController_ListEvents(t *testing.T) {
	ctrl := NewEventController(testLogger(), &fakeEventService{
		events: []*domain.Event{{ID: testEventID, Title: "Game Jam Weekend", Capacity: 100, RegisteredCount: 7}},
	})

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := httptest.NewRecorder()
	ctrl.ListEvents(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope helpers.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Nil(t, envelope.Error)
	items, ok := envelope.Data.([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
}

func TestEventController_ListRegistrants(t *testing.T) {
	ctrl := NewEventController(testLogger(), &fakeEventService{
		registrants: map[string][]*domain.Registrant{
			testEventID: {{RegistrationID: "reg-1", FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/events/"+testEventID+"/registrations", nil)
	req.SetPathValue("eventID", testEventID)
	rec := httptest.NewRecorder()
	ctrl.ListRegistrants(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope helpers.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Nil(t, envelope.Error)
}

func TestEventController_ListRegistrants_InvalidID(t *testing.T) {
	ctrl := NewEventController(testLogger(), &fakeEventService{})

	req := httptest.NewRequest(http.MethodGet, "/events/not-a-uuid/registrations", nil)
	req.SetPathValue("eventID", "not-a-uuid")
	rec := httptest.NewRecorder()
	ctrl.ListRegistrants(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEventController_ListRegistrants_NotFound(t *testing.T) {
	ctrl := NewEventController(testLogger(), &fakeEventService{registrants: map[string][]*domain.Registrant{}})

	req := httptest.NewRequest(http.MethodGet, "/events/"+testEventID+"/registrations", nil)
	req.SetPathValue("eventID", testEventID)
	rec := httptest.NewRecorder()
	ctrl.ListRegistrants(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var envelope helpers.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, helpers.ErrCodeNotFound, envelope.Error.Code)
}
