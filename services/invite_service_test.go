package services

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gather.link/models"
)

func TestBuildInvite(t *testing.T) {
	store := newMemStore()
	store.addEvent(&models.Event{
		BaseModel: models.BaseModel{ID: 7},
		Title:     "Launch Party",
		Date:      time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC),
		Location:  "Almaty",
		IsActive:  true,
	})
	svc := &InviteService{
		events:  &fakeEventRepo{store: store},
		baseURL: "https://gather.link",
	}

	invite, err := svc.BuildInvite(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "https://gather.link/event/7", invite.InviteURL)
	assert.Equal(t, uint(7), invite.Event.ID)
	assert.Equal(t, "Launch Party", invite.Event.Title)
	assert.Equal(t, "Almaty", invite.Event.Location)

	require.True(t, strings.HasPrefix(invite.QRCode, "data:image/png;base64,"))
	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(invite.QRCode, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestBuildInviteUnknownEvent(t *testing.T) {
	svc := &InviteService{
		events:  &fakeEventRepo{store: newMemStore()},
		baseURL: "https://gather.link",
	}

	_, err := svc.BuildInvite(context.Background(), 99)
	assert.ErrorIs(t, err, ErrEventNotFound)
}
