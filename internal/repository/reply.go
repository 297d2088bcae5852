package repository

import (
	"context"

	"chirp/internal/models"
	"chirp/internal/observability"

	"gorm.io/gorm"
)

// ReplyRepository defines the interface for reply data operations
type ReplyRepository interface {
	CreateWithTweet(ctx context.Context, parentID uint, tweet *models.Tweet) error
	GetForTweet(ctx context.Context, tweetID uint, limit, offset int, currentUserID uint) ([]*models.Tweet, error)
	CountForTweet(ctx context.Context, tweetID uint) (int64, error)
}

// replyRepository implements ReplyRepository
type replyRepository struct {
	db  *gorm.DB
	log *observability.RepoLogger
}

// NewReplyRepository creates a new reply repository
func NewReplyRepository(db *gorm.DB) ReplyRepository {
	return &replyRepository{db: db, log: observability.NewRepoLogger("replies")}
}

// CreateWithTweet persists the reply tweet and its link row in one
// transaction, so a reply can never exist without its parent association.
func (r *replyRepository) CreateWithTweet(ctx context.Context, parentID uint, tweet *models.Tweet) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tweet).Error; err != nil {
			return err
		}
		link := models.Reply{TweetID: parentID, ReplyID: tweet.ID}
		return tx.Create(&link).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	r.log.LogCreate(ctx, map[string]interface{}{"tweet_id": parentID, "reply_id": tweet.ID})
	return nil
}

// GetForTweet lists the reply tweets for a parent, oldest first.
func (r *replyRepository) GetForTweet(ctx context.Context, tweetID uint, limit, offset int, currentUserID uint) ([]*models.Tweet, error) {
	var tweets []*models.Tweet
	if err := applyTweetDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Joins("JOIN replies ON replies.reply_id = tweets.id").
		Where("replies.tweet_id = ?", tweetID).
		Order("tweets.created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&tweets).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tweets, nil
}

func (r *replyRepository) CountForTweet(ctx context.Context, tweetID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Reply{}).
		Where("tweet_id = ?", tweetID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
