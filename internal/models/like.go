package models

import (
	"time"
)

// ReactionType distinguishes a like from a dislike on the same record.
type ReactionType string

const (
	ReactionLiked    ReactionType = "LIKED"
	ReactionDisliked ReactionType = "DISLIKED"
)

// Like represents a user's reaction to a tuit.
// The combination of UserID and TuitID must be unique: a pair holds at most
// one reaction, and the Type field says which kind it currently is.
type Like struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	UserID    uint         `gorm:"not null;uniqueIndex:idx_like_user_tuit" json:"user_id"`
	TuitID    uint         `gorm:"not null;uniqueIndex:idx_like_user_tuit" json:"tuit_id"`
	Type      ReactionType `gorm:"type:varchar(10);not null" json:"type"`
	CreatedAt time.Time    `json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Tuit Tuit `gorm:"foreignKey:TuitID" json:"tuit,omitempty"`
}
