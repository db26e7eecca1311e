package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gather.link/models"
)

func newEventFixture() (*memStore, *EventService) {
	store := newMemStore()
	svc := &EventService{
		events: &fakeEventRepo{store: store},
		photos: &fakePhotoRepo{},
	}
	return store, svc
}

func TestCreateEventAppliesDefaults(t *testing.T) {
	_, svc := newEventFixture()

	event, err := svc.CreateEvent(context.Background(), 1, CreateEventInput{
		Title: "Launch Party",
		Date:  time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, 100, event.MaxGuests)
	assert.Equal(t, 10, event.TableSize)
	assert.True(t, event.IsActive)
	assert.Equal(t, uint(1), event.AdminID)
}

func TestCreateEventKeepsExplicitCapacities(t *testing.T) {
	_, svc := newEventFixture()

	event, err := svc.CreateEvent(context.Background(), 1, CreateEventInput{
		Title:     "Dinner",
		Date:      time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC),
		MaxGuests: 24,
		TableSize: 6,
	})

	require.NoError(t, err)
	assert.Equal(t, 24, event.MaxGuests)
	assert.Equal(t, 6, event.TableSize)
}

func TestCreateEventValidation(t *testing.T) {
	_, svc := newEventFixture()
	date := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		input CreateEventInput
		want  error
	}{
		{"missing title", CreateEventInput{Date: date}, ErrEventTitleRequired},
		{"blank title", CreateEventInput{Title: "  ", Date: date}, ErrEventTitleRequired},
		{"missing date", CreateEventInput{Title: "Party"}, ErrEventDateRequired},
		{"negative guests", CreateEventInput{Title: "Party", Date: date, MaxGuests: -1}, ErrEventInvalidInput},
		{"negative table size", CreateEventInput{Title: "Party", Date: date, TableSize: -1}, ErrEventInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateEvent(context.Background(), 1, tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGetEventForAdminOwnership(t *testing.T) {
	store, svc := newEventFixture()
	store.addEvent(&models.Event{BaseModel: models.BaseModel{ID: 1}, Title: "Party", AdminID: 1})

	event, err := svc.GetEventForAdmin(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "Party", event.Title)

	_, err = svc.GetEventForAdmin(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrEventForbidden)

	_, err = svc.GetEventForAdmin(context.Background(), 99, 1)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestGetPublicEventLoadsPhotos(t *testing.T) {
	store, svc := newEventFixture()
	store.addEvent(&models.Event{BaseModel: models.BaseModel{ID: 1}, Title: "Party", IsActive: true})
	require.NoError(t, svc.photos.Create(context.Background(), &models.EventPhoto{
		Filename: "a.jpg", URL: "/uploads/a.jpg", EventID: 1,
	}))

	event, err := svc.GetPublicEvent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, event.Photos, 1)
	assert.Equal(t, "/uploads/a.jpg", event.Photos[0].URL)
}

func TestUpdateEventPartial(t *testing.T) {
	store, svc := newEventFixture()
	store.addEvent(&models.Event{
		BaseModel: models.BaseModel{ID: 1},
		Title:     "Party",
		Location:  "Almaty",
		MaxGuests: 100,
		TableSize: 10,
		IsActive:  true,
		AdminID:   1,
	})

	newTitle := "Party v2"
	inactive := false
	event, err := svc.UpdateEvent(context.Background(), 1, 1, UpdateEventInput{
		Title:    &newTitle,
		IsActive: &inactive,
	})

	require.NoError(t, err)
	assert.Equal(t, "Party v2", event.Title)
	assert.False(t, event.IsActive)
	// Untouched fields survive.
	assert.Equal(t, "Almaty", event.Location)
	assert.Equal(t, 100, event.MaxGuests)
}

func TestUpdateEventValidation(t *testing.T) {
	store, svc := newEventFixture()
	store.addEvent(&models.Event{BaseModel: models.BaseModel{ID: 1}, Title: "Party", AdminID: 1})

	blank := "  "
	_, err := svc.UpdateEvent(context.Background(), 1, 1, UpdateEventInput{Title: &blank})
	assert.ErrorIs(t, err, ErrEventTitleRequired)

	zero := 0
	_, err = svc.UpdateEvent(context.Background(), 1, 1, UpdateEventInput{MaxGuests: &zero})
	assert.ErrorIs(t, err, ErrEventInvalidInput)

	_, err = svc.UpdateEvent(context.Background(), 1, 2, UpdateEventInput{})
	assert.ErrorIs(t, err, ErrEventForbidden)
}

func TestDeleteEvent(t *testing.T) {
	store, svc := newEventFixture()
	store.addEvent(&models.Event{BaseModel: models.BaseModel{ID: 1}, Title: "Party", AdminID: 1})

	require.ErrorIs(t, svc.DeleteEvent(context.Background(), 1, 2), ErrEventForbidden)
	require.NoError(t, svc.DeleteEvent(context.Background(), 1, 1))
	assert.ErrorIs(t, svc.DeleteEvent(context.Background(), 1, 1), ErrEventNotFound)
}
