package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRSVPStatusValid(t *testing.T) {
	assert.True(t, RSVPStatusYes.Valid())
	assert.True(t, RSVPStatusNo.Valid())
	assert.True(t, RSVPStatusMaybe.Valid())

	// PENDING is a stored default, not a submittable answer.
	assert.False(t, RSVPStatusPending.Valid())
	assert.False(t, RSVPStatus("yes").Valid())
	assert.False(t, RSVPStatus("").Valid())
}

func TestEventPublicViewDropsAdminFields(t *testing.T) {
	event := Event{
		BaseModel:   BaseModel{ID: 3},
		Title:       "Launch Party",
		Description: "Open bar",
		Date:        time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC),
		Location:    "Almaty",
		MaxGuests:   50,
		TableSize:   5,
		AdminID:     42,
		Guests:      []Guest{{Name: "Alice"}},
	}

	view := event.PublicView()

	assert.Equal(t, uint(3), view.ID)
	assert.Equal(t, "Launch Party", view.Title)
	assert.Equal(t, "Almaty", view.Location)
	// The public projection carries no guest list or capacity settings.
	assert.Equal(t, PublicEventView{
		ID:          3,
		Title:       "Launch Party",
		Description: "Open bar",
		Date:        event.Date,
		Location:    "Almaty",
	}, view)
}
