package models

// EventPhoto is an uploaded photo attached to an event by its owner.
type EventPhoto struct {
	BaseModel
	Filename string `gorm:"type:varchar(255);not null" json:"filename"`
	URL      string `gorm:"type:varchar(500);not null" json:"url"`
	Caption  string `gorm:"type:varchar(255)" json:"caption"`
	EventID  uint   `gorm:"index;not null" json:"eventId"`

	Event Event `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
