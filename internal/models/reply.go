package models

// Reply links a reply tweet to the original tweet it answers.
// TweetID must reference an ORIGINAL tweet and ReplyID a REPLY tweet;
// replies to replies are unsupported. The link row is created in the same
// transaction as the reply tweet itself.
type Reply struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	TweetID uint `gorm:"not null;index" json:"tweet_id"`
	ReplyID uint `gorm:"not null;uniqueIndex" json:"reply_id"`

	Tweet      Tweet `gorm:"foreignKey:TweetID;constraint:OnDelete:CASCADE" json:"tweet,omitempty"`
	ReplyTweet Tweet `gorm:"foreignKey:ReplyID;constraint:OnDelete:CASCADE" json:"reply_tweet,omitempty"`
}

// TableName specifies the table name for GORM
func (Reply) TableName() string {
	return "replies"
}
