package models

// User is an event administrator. Sessions reference users by ID; passwords
// are stored as bcrypt hashes.
type User struct {
	BaseModel
	Name         string `gorm:"type:varchar(150);not null" json:"name"`
	Email        string `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	IsSystem     bool   `gorm:"default:false" json:"-"`

	Events []Event `gorm:"foreignKey:AdminID" json:"-"`
}
