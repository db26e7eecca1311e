package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"gather.link/repositories"

	qrcode "github.com/skip2/go-qrcode"
)

// InviteQR is the QR endpoint response: the image as a data URL, the URL it
// encodes and a summary of the event.
type InviteQR struct {
	QRCode    string       `json:"qrCode"`
	InviteURL string       `json:"inviteUrl"`
	Event     EventSummary `json:"event"`
}

type EventSummary struct {
	ID       uint      `json:"id"`
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
}

// IInviteService produces QR invites for events.
type IInviteService interface {
	BuildInvite(ctx context.Context, eventID uint) (*InviteQR, error)
}

type InviteService struct {
	events  repositories.IEventRepository
	baseURL string
}

func NewInviteService(baseURL string) IInviteService {
	return &InviteService{
		events:  repositories.NewEventRepository(),
		baseURL: baseURL,
	}
}

// BuildInvite encodes {baseURL}/event/{id} as a 300px PNG data URL.
func (s *InviteService) BuildInvite(ctx context.Context, eventID uint) (*InviteQR, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	inviteURL := fmt.Sprintf("%s/event/%d", s.baseURL, event.ID)
	png, err := qrcode.Encode(inviteURL, qrcode.Medium, 300)
	if err != nil {
		return nil, err
	}

	return &InviteQR{
		QRCode:    "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		InviteURL: inviteURL,
		Event: EventSummary{
			ID:       event.ID,
			Title:    event.Title,
			Date:     event.Date,
			Location: event.Location,
		},
	}, nil
}

var _ IInviteService = (*InviteService)(nil)
