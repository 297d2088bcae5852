package models

import (
	"time"
)

// Like represents a user's like on a tweet.
// The composite unique index serializes concurrent like toggles: two racing
// creates for the same (tweet, user) pair collapse into one row, and the
// repository treats the unique violation as "already liked".
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TweetID   uint      `gorm:"not null;uniqueIndex:idx_tweet_user" json:"tweet_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_tweet_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	Tweet Tweet `gorm:"foreignKey:TweetID;constraint:OnDelete:CASCADE" json:"tweet,omitempty"`
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
