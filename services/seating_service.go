package services

import (
	"context"
	"errors"

	"gather.link/configs/configslog"
	"gather.link/models"
	"gather.link/repositories"

	"go.uber.org/zap"
)

// SeatingOutcome reports what the assignment step did. It is a value, not an
// error: the RSVP path logs a failed outcome and carries on, because seating
// is best-effort once the guest row is written.
type SeatingOutcome struct {
	Assigned     bool
	TableID      uint
	TableNumber  int
	CreatedTable bool
	Err          error
}

// Failed reports whether the assignment hit a store error.
func (o SeatingOutcome) Failed() bool { return o.Err != nil }

// ISeatingService places confirmed guests at tables.
type ISeatingService interface {
	AssignTableToGuest(ctx context.Context, guest *models.Guest) SeatingOutcome
}

// SeatingService implements first-fit assignment: the first table in creation
// order that already seats a confirmed guest is the only candidate; if it is
// full (or no table qualifies) a new table is created, even when a later
// table still has room. Empty tables stay invisible until seeded.
type SeatingService struct {
	events repositories.IEventRepository
	tables repositories.ITableRepository
	guests repositories.IGuestRepository
}

func NewSeatingService() ISeatingService {
	return &SeatingService{
		events: repositories.NewEventRepository(),
		tables: repositories.NewTableRepository(),
		guests: repositories.NewGuestRepository(),
	}
}

func (s *SeatingService) AssignTableToGuest(ctx context.Context, guest *models.Guest) SeatingOutcome {
	// Only unseated, confirmed guests are eligible. Re-submitting YES for a
	// seated guest never reassigns.
	if guest.TableID != nil || guest.RSVPStatus != models.RSVPStatusYes {
		return SeatingOutcome{}
	}

	table, err := s.tables.FindFirstOccupied(ctx, guest.EventID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return SeatingOutcome{Err: err}
	}

	if err == nil && len(table.Guests) < table.Capacity {
		if err := s.guests.AssignTable(ctx, guest.ID, table.ID); err != nil {
			return SeatingOutcome{Err: err}
		}
		guest.TableID = &table.ID
		configslog.Log.Info("guest seated",
			zap.Uint("guestID", guest.ID), zap.Uint("eventID", guest.EventID),
			zap.Int("tableNumber", table.Number))
		return SeatingOutcome{Assigned: true, TableID: table.ID, TableNumber: table.Number}
	}

	// No qualifying table, or the first qualifying one is full: open a new
	// table with the next sequential number and the event's configured size.
	event, err := s.events.FindByID(ctx, guest.EventID)
	if err != nil {
		return SeatingOutcome{Err: err}
	}

	count, err := s.tables.CountByEventID(ctx, guest.EventID)
	if err != nil {
		return SeatingOutcome{Err: err}
	}

	newTable := models.Table{
		Number:   int(count) + 1,
		Capacity: event.TableSize,
		EventID:  event.ID,
	}
	if err := s.tables.Create(ctx, &newTable); err != nil {
		return SeatingOutcome{Err: err}
	}
	if err := s.guests.AssignTable(ctx, guest.ID, newTable.ID); err != nil {
		return SeatingOutcome{Err: err}
	}
	guest.TableID = &newTable.ID
	configslog.Log.Info("guest seated at new table",
		zap.Uint("guestID", guest.ID), zap.Uint("eventID", guest.EventID),
		zap.Int("tableNumber", newTable.Number))
	return SeatingOutcome{Assigned: true, TableID: newTable.ID, TableNumber: newTable.Number, CreatedTable: true}
}

var _ ISeatingService = (*SeatingService)(nil)
