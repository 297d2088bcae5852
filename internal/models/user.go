// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a user account in the Chirp application.
//
// Deletion is a visibility flag, not a physical removal: Deleted/DeletedAt
// are flipped by the user service and every default lookup filters
// deleted = false. Username and email are unique among non-deleted rows only,
// so there is deliberately no DB-level unique constraint on either column —
// the application layer is the uniqueness authority and a soft-deleted row
// frees its username for reuse.
type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Username  string     `gorm:"not null;index" json:"username"`
	Email     string     `gorm:"not null;index" json:"email"`
	Password  string     `gorm:"not null" json:"-"`
	Deleted   bool       `gorm:"not null;default:false;index" json:"-"`
	DeletedAt *time.Time `json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Tweets    []Tweet    `gorm:"foreignKey:UserID" json:"tweets,omitempty"`
}
