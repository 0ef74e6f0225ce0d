package models

import (
	"time"
)

// Message represents a directed, timestamped text from one user to another.
// Messages are returned in storage insertion order; there is no delivery or
// read-receipt state.
type Message struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	Message string    `gorm:"type:text;not null" json:"message"`
	FromID  uint      `gorm:"not null;index" json:"from_id"`
	ToID    uint      `gorm:"not null;index" json:"to_id"`
	SentOn  time.Time `gorm:"autoCreateTime" json:"sent_on"`

	// Relationships
	From User `gorm:"foreignKey:FromID" json:"from,omitempty"`
	To   User `gorm:"foreignKey:ToID" json:"to,omitempty"`
}
