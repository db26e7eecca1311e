package models

// RSVPStatus is a guest's answer to the invitation.
type RSVPStatus string

const (
	RSVPStatusPending RSVPStatus = "PENDING"
	RSVPStatusYes     RSVPStatus = "YES"
	RSVPStatusNo      RSVPStatus = "NO"
	RSVPStatusMaybe   RSVPStatus = "MAYBE"
)

// Valid reports whether s is a status a guest may submit. PENDING is the
// initial state only and never accepted from the outside.
func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPStatusYes, RSVPStatusNo, RSVPStatusMaybe:
		return true
	}
	return false
}

// Guest is one invitee of one event. Identity for upsert purposes is
// (event, email) or (event, phone), first match wins; guests are never
// deleted by the RSVP flow.
type Guest struct {
	BaseModel
	Name       string     `gorm:"type:varchar(150);not null" json:"name"`
	Email      string     `gorm:"type:varchar(150);index" json:"email"`
	Phone      string     `gorm:"type:varchar(30);index" json:"phone"`
	RSVPStatus RSVPStatus `gorm:"type:varchar(10);not null;default:'PENDING';index" json:"rsvpStatus"`
	MealChoice string     `gorm:"type:varchar(100)" json:"mealChoice"`
	EventID    uint       `gorm:"index;not null" json:"eventId"`
	TableID    *uint      `gorm:"index" json:"tableId"`

	Event Event  `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Table *Table `gorm:"foreignKey:TableID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"table,omitempty"`
}
