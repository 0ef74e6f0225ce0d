package models

import (
	"time"
)

// Bookmark represents a user saving a tuit for later.
type Bookmark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	TuitID    uint      `gorm:"not null;index" json:"tuit_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Tuit Tuit `gorm:"foreignKey:TuitID" json:"tuit,omitempty"`
}
