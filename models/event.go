package models

import "time"

// Event is an occasion guests RSVP to. MaxGuests and TableSize are capacity
// configuration; TableSize is copied onto each table at creation time.
type Event struct {
	BaseModel
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"index;type:timestamptz;not null" json:"date"`
	Location    string    `gorm:"type:varchar(255)" json:"location"`
	MaxGuests   int       `gorm:"default:100" json:"maxGuests"`
	TableSize   int       `gorm:"default:10" json:"tableSize"`
	IsActive    bool      `gorm:"default:true;index" json:"isActive"`
	AdminID     uint      `gorm:"index;not null" json:"adminId"`

	Admin  User         `gorm:"foreignKey:AdminID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	Guests []Guest      `gorm:"foreignKey:EventID" json:"guests,omitempty"`
	Tables []Table      `gorm:"foreignKey:EventID" json:"tables,omitempty"`
	Photos []EventPhoto `gorm:"foreignKey:EventID" json:"photos,omitempty"`
}

// PublicEventView is the reduced field set served to unauthenticated callers.
type PublicEventView struct {
	ID          uint         `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Date        time.Time    `json:"date"`
	Location    string       `json:"location"`
	Photos      []EventPhoto `json:"photos,omitempty"`
}

// PublicView projects the event down to its public fields.
func (e *Event) PublicView() PublicEventView {
	return PublicEventView{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Location:    e.Location,
		Photos:      e.Photos,
	}
}
