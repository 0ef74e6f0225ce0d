// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// AccountType represents the type of a user's account.
type AccountType string

const (
	// AccountTypePersonal is the default account type.
	AccountTypePersonal AccountType = "PERSONAL"
	// AccountTypeAcademic marks an academic account.
	AccountTypeAcademic AccountType = "ACADEMIC"
	// AccountTypeProfessional marks a professional account.
	AccountTypeProfessional AccountType = "PROFESSIONAL"
)

// MaritalStatus represents a user's marital status.
type MaritalStatus string

const (
	MaritalStatusSingle  MaritalStatus = "SINGLE"
	MaritalStatusMarried MaritalStatus = "MARRIED"
	MaritalStatusWidowed MaritalStatus = "WIDOWED"
)

// Location is a latitude/longitude pair attached to a user's profile.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// User represents a Tuiter account.
// Deleting a user does not cascade to their tuits, likes, follows,
// bookmarks or messages.
type User struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Username      string         `gorm:"unique;not null" json:"username"`
	Password      string         `gorm:"not null" json:"-"`
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	Email         string         `gorm:"unique;not null" json:"email"`
	ProfilePhoto  string         `json:"profile_photo"`
	HeaderImage   string         `json:"header_image"`
	AccountType   AccountType    `gorm:"type:varchar(20);default:'PERSONAL'" json:"account_type"`
	MaritalStatus MaritalStatus  `gorm:"type:varchar(20);default:'SINGLE'" json:"marital_status"`
	Biography     string         `json:"biography"`
	DateOfBirth   *time.Time     `json:"date_of_birth,omitempty"`
	Location      *Location      `gorm:"embedded;embeddedPrefix:location_" json:"location,omitempty"`
	Joined        time.Time      `gorm:"autoCreateTime" json:"joined"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	Tuits         []Tuit         `gorm:"foreignKey:PostedByID" json:"tuits,omitempty"`
}
