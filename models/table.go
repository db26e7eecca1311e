package models

// Table seats confirmed guests. Number is a contiguous per-event sequence
// starting at 1, assigned in creation order and never reused; Capacity is
// copied from the event's TableSize when the table is created. Tables are
// never deleted or resized.
type Table struct {
	BaseModel
	Number   int  `gorm:"not null;index:idx_tables_event_number,unique" json:"number"`
	Capacity int  `gorm:"not null" json:"capacity"`
	EventID  uint `gorm:"not null;index:idx_tables_event_number,unique" json:"eventId"`

	Event  Event   `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Guests []Guest `gorm:"foreignKey:TableID" json:"guests,omitempty"`
}
