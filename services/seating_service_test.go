package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gather.link/models"
)

type seatingFixture struct {
	store   *memStore
	events  *fakeEventRepo
	guests  *fakeGuestRepo
	tables  *fakeTableRepo
	service *SeatingService
}

func newSeatingFixture(tableSize int) *seatingFixture {
	store := newMemStore()
	store.addEvent(&models.Event{
		BaseModel: models.BaseModel{ID: 1},
		Title:     "Launch Party",
		TableSize: tableSize,
		IsActive:  true,
	})
	f := &seatingFixture{
		store:  store,
		events: &fakeEventRepo{store: store},
		guests: &fakeGuestRepo{store: store},
		tables: &fakeTableRepo{store: store},
	}
	f.service = &SeatingService{events: f.events, tables: f.tables, guests: f.guests}
	return f
}

func (f *seatingFixture) addConfirmedGuest(t *testing.T, name string) *models.Guest {
	t.Helper()
	guest := &models.Guest{Name: name, RSVPStatus: models.RSVPStatusYes, EventID: 1}
	require.NoError(t, f.guests.Create(context.Background(), guest))
	return guest
}

func TestAssignTableToGuestCreatesFirstTable(t *testing.T) {
	f := newSeatingFixture(10)
	guest := f.addConfirmedGuest(t, "Alice")

	outcome := f.service.AssignTableToGuest(context.Background(), guest)

	require.False(t, outcome.Failed())
	assert.True(t, outcome.Assigned)
	assert.True(t, outcome.CreatedTable)
	assert.Equal(t, 1, outcome.TableNumber)
	require.NotNil(t, guest.TableID)

	require.Len(t, f.store.tables, 1)
	assert.Equal(t, 10, f.store.tables[0].Capacity)
}

func TestAssignTableToGuestFillsOccupiedTable(t *testing.T) {
	f := newSeatingFixture(2)
	first := f.addConfirmedGuest(t, "Alice")
	second := f.addConfirmedGuest(t, "Bob")

	f.service.AssignTableToGuest(context.Background(), first)
	outcome := f.service.AssignTableToGuest(context.Background(), second)

	require.False(t, outcome.Failed())
	assert.True(t, outcome.Assigned)
	assert.False(t, outcome.CreatedTable)
	assert.Equal(t, 1, outcome.TableNumber)
	require.Len(t, f.store.tables, 1)
}

func TestAssignTableToGuestOpensNewTableWhenFirstIsFull(t *testing.T) {
	f := newSeatingFixture(2)
	for _, name := range []string{"Alice", "Bob"} {
		guest := f.addConfirmedGuest(t, name)
		f.service.AssignTableToGuest(context.Background(), guest)
	}

	third := f.addConfirmedGuest(t, "Carol")
	outcome := f.service.AssignTableToGuest(context.Background(), third)

	require.False(t, outcome.Failed())
	assert.True(t, outcome.CreatedTable)
	assert.Equal(t, 2, outcome.TableNumber)
	require.Len(t, f.store.tables, 2)
}

// Only the first occupied table is a candidate: when it is full a new table
// opens even though a later table still has seats.
func TestAssignTableToGuestIgnoresLaterTableWithRoom(t *testing.T) {
	f := newSeatingFixture(2)

	// Table 1 full, table 2 half full.
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		guest := f.addConfirmedGuest(t, name)
		f.service.AssignTableToGuest(context.Background(), guest)
	}
	require.Len(t, f.store.tables, 2)

	dave := f.addConfirmedGuest(t, "Dave")
	outcome := f.service.AssignTableToGuest(context.Background(), dave)

	require.False(t, outcome.Failed())
	assert.True(t, outcome.CreatedTable)
	assert.Equal(t, 3, outcome.TableNumber)
}

// A table nobody confirmed into is invisible to assignment.
func TestAssignTableToGuestSkipsEmptyTable(t *testing.T) {
	f := newSeatingFixture(10)
	empty := &models.Table{Number: 1, Capacity: 10, EventID: 1}
	require.NoError(t, f.tables.Create(context.Background(), empty))

	guest := f.addConfirmedGuest(t, "Alice")
	outcome := f.service.AssignTableToGuest(context.Background(), guest)

	require.False(t, outcome.Failed())
	assert.True(t, outcome.CreatedTable)
	assert.Equal(t, 2, outcome.TableNumber)
	assert.NotEqual(t, empty.ID, outcome.TableID)
}

func TestAssignTableToGuestSkipsSeatedGuest(t *testing.T) {
	f := newSeatingFixture(10)
	guest := f.addConfirmedGuest(t, "Alice")
	tableID := uint(7)
	guest.TableID = &tableID

	outcome := f.service.AssignTableToGuest(context.Background(), guest)

	assert.False(t, outcome.Assigned)
	assert.False(t, outcome.Failed())
	assert.Empty(t, f.store.tables)
}

func TestAssignTableToGuestSkipsDeclinedGuest(t *testing.T) {
	f := newSeatingFixture(10)
	guest := &models.Guest{Name: "Alice", RSVPStatus: models.RSVPStatusNo, EventID: 1}
	require.NoError(t, f.guests.Create(context.Background(), guest))

	outcome := f.service.AssignTableToGuest(context.Background(), guest)

	assert.False(t, outcome.Assigned)
	assert.Empty(t, f.store.tables)
}

func TestAssignTableToGuestReportsStoreError(t *testing.T) {
	f := newSeatingFixture(10)
	f.guests.assignErr = errors.New("connection reset")
	guest := f.addConfirmedGuest(t, "Alice")

	outcome := f.service.AssignTableToGuest(context.Background(), guest)

	assert.True(t, outcome.Failed())
	assert.False(t, outcome.Assigned)
	assert.Nil(t, guest.TableID)
}
