package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gather.link/models"
	"gather.link/repositories"
)

// IExportService produces the guest list CSV for an event owner.
type IExportService interface {
	ExportGuests(ctx context.Context, eventID, adminID uint) (data []byte, filename string, err error)
}

type ExportService struct {
	events repositories.IEventRepository
	guests repositories.IGuestRepository
}

func NewExportService() IExportService {
	return &ExportService{
		events: repositories.NewEventRepository(),
		guests: repositories.NewGuestRepository(),
	}
}

var csvHeader = []string{"Name", "Email", "Phone", "RSVP Status", "Meal Choice", "Table Number", "Created At"}

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]`)

// ExportGuests builds the CSV, one row per guest in submission order (newest
// first). Fields containing commas are quoted by the writer.
func (s *ExportService) ExportGuests(ctx context.Context, eventID, adminID uint) ([]byte, string, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", ErrEventNotFound
		}
		return nil, "", err
	}
	if event.AdminID != adminID {
		return nil, "", ErrEventForbidden
	}

	guests, err := s.guests.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, "", err
	}
	for _, guest := range guests {
		if err := w.Write(guestRow(guest)); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := strings.ToLower(filenameSanitizer.ReplaceAllString(event.Title, "_")) + "_guests.csv"
	return buf.Bytes(), filename, nil
}

func guestRow(guest models.Guest) []string {
	tableNumber := ""
	if guest.Table != nil {
		tableNumber = strconv.Itoa(guest.Table.Number)
	}
	return []string{
		guest.Name,
		guest.Email,
		guest.Phone,
		string(guest.RSVPStatus),
		guest.MealChoice,
		tableNumber,
		guest.CreatedAt.UTC().Format(time.RFC3339),
	}
}

var _ IExportService = (*ExportService)(nil)
