package services

import (
	"context"
	"os"
	"testing"
	"time"

	"gather.link/configs/configslog"
	"gather.link/models"
	"gather.link/repositories"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	os.Exit(m.Run())
}

// memStore is a shared in-memory backing store for the fake repositories, so
// the seating fake can see guests the RSVP fake created.
type memStore struct {
	events      map[uint]*models.Event
	guests      map[uint]*models.Guest
	tables      []*models.Table
	nextGuestID uint
	nextTableID uint
}

func newMemStore() *memStore {
	return &memStore{
		events: make(map[uint]*models.Event),
		guests: make(map[uint]*models.Guest),
	}
}

func (s *memStore) addEvent(event *models.Event) *models.Event {
	s.events[event.ID] = event
	return event
}

type fakeEventRepo struct {
	store   *memStore
	findErr error
}

func (r *fakeEventRepo) Create(ctx context.Context, event *models.Event) error {
	s := r.store
	event.ID = uint(len(s.events) + 1)
	s.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	event, ok := r.store.events[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return event, nil
}

func (r *fakeEventRepo) FindByIDFull(ctx context.Context, id uint) (*models.Event, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeEventRepo) FindActive(ctx context.Context) ([]models.Event, error) {
	var out []models.Event
	for _, event := range r.store.events {
		if event.IsActive {
			out = append(out, *event)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) FindByAdminID(ctx context.Context, adminID uint) ([]repositories.EventWithGuestCount, error) {
	var out []repositories.EventWithGuestCount
	for _, event := range r.store.events {
		if event.AdminID == adminID {
			out = append(out, repositories.EventWithGuestCount{Event: *event})
		}
	}
	return out, nil
}

func (r *fakeEventRepo) Update(ctx context.Context, event *models.Event, fields map[string]interface{}) error {
	stored, ok := r.store.events[event.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	for column, value := range fields {
		switch column {
		case "title":
			stored.Title = value.(string)
		case "description":
			stored.Description = value.(string)
		case "date":
			stored.Date = value.(time.Time)
		case "location":
			stored.Location = value.(string)
		case "max_guests":
			stored.MaxGuests = value.(int)
		case "table_size":
			stored.TableSize = value.(int)
		case "is_active":
			stored.IsActive = value.(bool)
		}
	}
	return nil
}

func (r *fakeEventRepo) Delete(ctx context.Context, event *models.Event) error {
	delete(r.store.events, event.ID)
	return nil
}

type fakeGuestRepo struct {
	store     *memStore
	createErr error
	saveErr   error
	assignErr error
}

func (r *fakeGuestRepo) Create(ctx context.Context, guest *models.Guest) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.store.nextGuestID++
	guest.ID = r.store.nextGuestID
	stored := *guest
	r.store.guests[guest.ID] = &stored
	return nil
}

func (r *fakeGuestRepo) Save(ctx context.Context, guest *models.Guest) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	stored := *guest
	r.store.guests[guest.ID] = &stored
	return nil
}

func (r *fakeGuestRepo) FindByID(ctx context.Context, id uint) (*models.Guest, error) {
	guest, ok := r.store.guests[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *guest
	return &copied, nil
}

func (r *fakeGuestRepo) FindByEmailOrPhone(ctx context.Context, eventID uint, email, phone string) (*models.Guest, error) {
	if email != "" {
		if guest := r.findByField(eventID, func(g *models.Guest) bool { return g.Email == email }); guest != nil {
			return guest, nil
		}
	}
	if phone != "" {
		if guest := r.findByField(eventID, func(g *models.Guest) bool { return g.Phone == phone }); guest != nil {
			return guest, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeGuestRepo) findByField(eventID uint, match func(*models.Guest) bool) *models.Guest {
	for id := uint(1); id <= r.store.nextGuestID; id++ {
		guest, ok := r.store.guests[id]
		if !ok || guest.EventID != eventID {
			continue
		}
		if match(guest) {
			copied := *guest
			return &copied
		}
	}
	return nil
}

func (r *fakeGuestRepo) FindByEventID(ctx context.Context, eventID uint) ([]models.Guest, error) {
	var out []models.Guest
	for id := uint(1); id <= r.store.nextGuestID; id++ {
		if guest, ok := r.store.guests[id]; ok && guest.EventID == eventID {
			out = append(out, *guest)
		}
	}
	return out, nil
}

func (r *fakeGuestRepo) AssignTable(ctx context.Context, guestID, tableID uint) error {
	if r.assignErr != nil {
		return r.assignErr
	}
	guest, ok := r.store.guests[guestID]
	if !ok {
		return repositories.ErrNotFound
	}
	id := tableID
	guest.TableID = &id
	return nil
}

type fakeTableRepo struct {
	store     *memStore
	createErr error
}

func (r *fakeTableRepo) Create(ctx context.Context, table *models.Table) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.store.nextTableID++
	table.ID = r.store.nextTableID
	r.store.tables = append(r.store.tables, table)
	return nil
}

// FindFirstOccupied mirrors the store query: the first table in creation
// order holding at least one confirmed guest, with Guests filtered to YES.
func (r *fakeTableRepo) FindFirstOccupied(ctx context.Context, eventID uint) (*models.Table, error) {
	for _, table := range r.store.tables {
		if table.EventID != eventID {
			continue
		}
		var confirmed []models.Guest
		for id := uint(1); id <= r.store.nextGuestID; id++ {
			guest, ok := r.store.guests[id]
			if !ok || guest.TableID == nil || *guest.TableID != table.ID {
				continue
			}
			if guest.RSVPStatus == models.RSVPStatusYes {
				confirmed = append(confirmed, *guest)
			}
		}
		if len(confirmed) > 0 {
			copied := *table
			copied.Guests = confirmed
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeTableRepo) CountByEventID(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	for _, table := range r.store.tables {
		if table.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (r *fakeTableRepo) FindByEventID(ctx context.Context, eventID uint) ([]models.Table, error) {
	var out []models.Table
	for _, table := range r.store.tables {
		if table.EventID == eventID {
			out = append(out, *table)
		}
	}
	return out, nil
}

type fakePhotoRepo struct {
	photos []models.EventPhoto
}

func (r *fakePhotoRepo) Create(ctx context.Context, photo *models.EventPhoto) error {
	photo.ID = uint(len(r.photos) + 1)
	r.photos = append(r.photos, *photo)
	return nil
}

func (r *fakePhotoRepo) FindByEventID(ctx context.Context, eventID uint) ([]models.EventPhoto, error) {
	var out []models.EventPhoto
	for _, photo := range r.photos {
		if photo.EventID == eventID {
			out = append(out, photo)
		}
	}
	return out, nil
}

var (
	_ repositories.IEventRepository = (*fakeEventRepo)(nil)
	_ repositories.IGuestRepository = (*fakeGuestRepo)(nil)
	_ repositories.ITableRepository = (*fakeTableRepo)(nil)
	_ repositories.IPhotoRepository = (*fakePhotoRepo)(nil)
)
