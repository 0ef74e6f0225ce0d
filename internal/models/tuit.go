// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// TuitStats is the counters block embedded in every tuit.
// Likes and Dislikes are never stored; they are aliases computed per query
// from the likes table, so they always equal the true count of reaction rows.
type TuitStats struct {
	Replies  int `json:"replies"`
	Retuits  int `json:"retuits"`
	Likes    int `gorm:"->;-:migration" json:"likes"`
	Dislikes int `gorm:"->;-:migration" json:"dislikes"`
}

// Tuit represents a post in the Tuiter application.
type Tuit struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Tuit       string         `gorm:"type:text;not null" json:"tuit"`
	PostedByID uint           `gorm:"not null;index" json:"posted_by_id"`
	PostedBy   User           `gorm:"foreignKey:PostedByID" json:"posted_by"`
	Stats      TuitStats      `gorm:"embedded;embeddedPrefix:stats_" json:"stats"`
	PostedOn   time.Time      `gorm:"autoCreateTime" json:"posted_on"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
