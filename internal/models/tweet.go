package models

import (
	"time"
)

// Tweet types. A REPLY tweet is always linked to an ORIGINAL through a Reply row.
const (
	TweetTypeOriginal = "ORIGINAL"
	TweetTypeReply    = "REPLY"
)

// Tweet represents a tweet (or a reply tweet) in the Chirp application.
// Tweets are hard-deleted by their owner; they survive the owner's soft
// delete to preserve historical likes and replies.
type Tweet struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content string `gorm:"type:text;not null" json:"content"`
	Type    string `gorm:"type:varchar(10);not null;default:'ORIGINAL'" json:"type"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// Liked indicates whether the current requesting user liked this tweet (computed)
	Liked     bool      `gorm:"->" json:"liked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
