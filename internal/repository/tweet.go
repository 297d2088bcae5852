// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"chirp/internal/models"
	"chirp/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TweetRepository defines the interface for tweet data operations
type TweetRepository interface {
	Create(ctx context.Context, tweet *models.Tweet) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Tweet, error)
	GetByIDAndOwner(ctx context.Context, id, userID uint) (*models.Tweet, error)
	GetOriginalByID(ctx context.Context, id uint) (*models.Tweet, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Tweet, error)
	List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Tweet, error)
	Feed(ctx context.Context, userID uint, limit, offset int) ([]*models.Tweet, error)
	Update(ctx context.Context, tweet *models.Tweet) error
	Delete(ctx context.Context, id uint) error
	IsLiked(ctx context.Context, userID, tweetID uint) (bool, error)
	Like(ctx context.Context, userID, tweetID uint) error
	Unlike(ctx context.Context, userID, tweetID uint) error
}

// tweetRepository implements TweetRepository
type tweetRepository struct {
	db  *gorm.DB
	log *observability.RepoLogger
}

// NewTweetRepository creates a new tweet repository
func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db, log: observability.NewRepoLogger("tweets")}
}

// applyTweetDetails adds subqueries to fetch the like count and liked status
// in a single query. likes_count and liked map onto read-only Tweet fields.
func applyTweetDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "tweets.*, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.tweet_id = tweets.id) as likes_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.tweet_id = tweets.id AND likes.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery + ", false as liked")
}

// activeAuthors restricts tweets to those whose author is not soft-deleted.
func activeAuthors(db *gorm.DB) *gorm.DB {
	return db.Where("tweets.user_id IN (SELECT id FROM users WHERE deleted = ?)", false)
}

func (r *tweetRepository) Create(ctx context.Context, tweet *models.Tweet) error {
	if err := r.db.WithContext(ctx).Create(tweet).Error; err != nil {
		return models.NewInternalError(err)
	}
	r.log.LogCreate(ctx, map[string]interface{}{"id": tweet.ID, "user_id": tweet.UserID, "type": tweet.Type})
	return nil
}

func (r *tweetRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := applyTweetDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		First(&tweet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Tweet", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &tweet, nil
}

// GetByIDAndOwner fetches a tweet only when it belongs to userID. A tweet
// that exists but belongs to someone else is reported the same way as a
// missing one, so callers cannot probe other users' tweet IDs.
func (r *tweetRepository) GetByIDAndOwner(ctx context.Context, id, userID uint) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&tweet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundMessageError("Tweet not found")
		}
		return nil, models.NewInternalError(err)
	}
	return &tweet, nil
}

// GetOriginalByID fetches a tweet only when it is an original (not a reply).
func (r *tweetRepository) GetOriginalByID(ctx context.Context, id uint) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := r.db.WithContext(ctx).
		Where("id = ? AND type = ?", id, models.TweetTypeOriginal).
		First(&tweet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundMessageError("Tweet not found")
		}
		return nil, models.NewInternalError(err)
	}
	return &tweet, nil
}

func (r *tweetRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Tweet, error) {
	var tweets []*models.Tweet
	if err := applyTweetDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Where("user_id = ? AND type = ?", userID, models.TweetTypeOriginal).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&tweets).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tweets, nil
}

func (r *tweetRepository) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Tweet, error) {
	var tweets []*models.Tweet
	if err := activeAuthors(applyTweetDetails(r.db.WithContext(ctx), currentUserID)).
		Preload("User").
		Where("type = ?", models.TweetTypeOriginal).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&tweets).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tweets, nil
}

// Feed returns originals from accounts the user follows, plus the user's own.
func (r *tweetRepository) Feed(ctx context.Context, userID uint, limit, offset int) ([]*models.Tweet, error) {
	var tweets []*models.Tweet
	if err := activeAuthors(applyTweetDetails(r.db.WithContext(ctx), userID)).
		Preload("User").
		Where("type = ?", models.TweetTypeOriginal).
		Where("(tweets.user_id IN (SELECT followed_id FROM follows WHERE follower_id = ?) OR tweets.user_id = ?)", userID, userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&tweets).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tweets, nil
}

func (r *tweetRepository) Update(ctx context.Context, tweet *models.Tweet) error {
	if err := r.db.WithContext(ctx).Save(tweet).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *tweetRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Tweet{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	r.log.LogDelete(ctx, map[string]interface{}{"id": id})
	return nil
}

func (r *tweetRepository) IsLiked(ctx context.Context, userID, tweetID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// Like inserts the like row. The (tweet_id, user_id) unique index makes the
// insert a no-op when the like already exists, so concurrent toggles cannot
// create duplicates.
func (r *tweetRepository) Like(ctx context.Context, userID, tweetID uint) error {
	like := models.Like{TweetID: tweetID, UserID: userID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *tweetRepository) Unlike(ctx context.Context, userID, tweetID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Delete(&models.Like{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
