package service

import (
	"context"

	"chirp/internal/models"
	"chirp/internal/observability"
	"chirp/internal/repository"
	"chirp/internal/validation"
)

// TweetService provides tweet and like business logic.
type TweetService struct {
	tweetRepo repository.TweetRepository
	userRepo  repository.UserRepository
}

// CreateTweetInput carries the fields for creating an original tweet.
type CreateTweetInput struct {
	UserID  uint
	Content string
}

// UpdateTweetInput carries the fields for editing a tweet.
type UpdateTweetInput struct {
	UserID  uint
	TweetID uint
	Content string
}

// NewTweetService returns a new TweetService.
func NewTweetService(tweetRepo repository.TweetRepository, userRepo repository.UserRepository) *TweetService {
	return &TweetService{
		tweetRepo: tweetRepo,
		userRepo:  userRepo,
	}
}

// CreateTweet creates an original tweet for the user.
func (s *TweetService) CreateTweet(ctx context.Context, in CreateTweetInput) (*models.Tweet, error) {
	if err := validation.ValidateTweetContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	tweet := &models.Tweet{
		UserID:  in.UserID,
		Content: in.Content,
		Type:    models.TweetTypeOriginal,
	}
	if err := s.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, err
	}

	// Re-read so the response carries the like projections and author.
	return s.tweetRepo.GetByID(ctx, tweet.ID, in.UserID)
}

// GetTweet returns a tweet with like projections for the viewing user.
func (s *TweetService) GetTweet(ctx context.Context, id, currentUserID uint) (*models.Tweet, error) {
	return s.tweetRepo.GetByID(ctx, id, currentUserID)
}

// ListTweets returns the global timeline of originals, newest first.
func (s *TweetService) ListTweets(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Tweet, error) {
	return s.tweetRepo.List(ctx, limit, offset, currentUserID)
}

// ListUserTweets returns a user's originals, newest first.
func (s *TweetService) ListUserTweets(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Tweet, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.tweetRepo.GetByUserID(ctx, userID, limit, offset, currentUserID)
}

// GetFeed returns originals from followed accounts plus the user's own.
func (s *TweetService) GetFeed(ctx context.Context, userID uint, limit, offset int) ([]*models.Tweet, error) {
	return s.tweetRepo.Feed(ctx, userID, limit, offset)
}

// UpdateTweet edits a tweet's content. The tweet is fetched by (id, owner)
// so a tweet owned by someone else reads as not found.
func (s *TweetService) UpdateTweet(ctx context.Context, in UpdateTweetInput) (*models.Tweet, error) {
	tweet, err := s.tweetRepo.GetByIDAndOwner(ctx, in.TweetID, in.UserID)
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateTweetContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	tweet.Content = in.Content
	if err := s.tweetRepo.Update(ctx, tweet); err != nil {
		return nil, err
	}
	return s.tweetRepo.GetByID(ctx, tweet.ID, in.UserID)
}

// DeleteTweet removes a tweet the user owns.
func (s *TweetService) DeleteTweet(ctx context.Context, userID, tweetID uint) error {
	tweet, err := s.tweetRepo.GetByIDAndOwner(ctx, tweetID, userID)
	if err != nil {
		return err
	}
	return s.tweetRepo.Delete(ctx, tweet.ID)
}

// ToggleLike likes the tweet if not liked, unlikes otherwise. The tweet must
// exist; the composite unique index on likes keeps concurrent toggles from
// double-counting.
func (s *TweetService) ToggleLike(ctx context.Context, userID, tweetID uint) (*ToggleResult, error) {
	if _, err := s.tweetRepo.GetByID(ctx, tweetID, 0); err != nil {
		return nil, err
	}

	liked, err := s.tweetRepo.IsLiked(ctx, userID, tweetID)
	if err != nil {
		return nil, err
	}

	if liked {
		if err := s.tweetRepo.Unlike(ctx, userID, tweetID); err != nil {
			return nil, err
		}
		observability.RecordToggle("like", ToggleActionRemoved)
		return &ToggleResult{Action: ToggleActionRemoved, Message: "Tweet unliked"}, nil
	}

	if err := s.tweetRepo.Like(ctx, userID, tweetID); err != nil {
		return nil, err
	}
	observability.RecordToggle("like", ToggleActionCreated)
	return &ToggleResult{Action: ToggleActionCreated, Message: "Tweet liked"}, nil
}
