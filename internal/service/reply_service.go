package service

import (
	"context"

	"chirp/internal/models"
	"chirp/internal/repository"
	"chirp/internal/validation"
)

// ReplyService provides reply business logic. Replies are tweets of type
// REPLY linked to an original; replying to a reply is not allowed.
type ReplyService struct {
	replyRepo repository.ReplyRepository
	tweetRepo repository.TweetRepository
}

// CreateReplyInput carries the fields for creating a reply.
type CreateReplyInput struct {
	UserID  uint
	TweetID uint
	Content string
}

// NewReplyService returns a new ReplyService.
func NewReplyService(replyRepo repository.ReplyRepository, tweetRepo repository.TweetRepository) *ReplyService {
	return &ReplyService{
		replyRepo: replyRepo,
		tweetRepo: tweetRepo,
	}
}

// CreateReply creates a reply under an original tweet. A missing parent and
// a parent that is itself a reply both read as not found.
func (s *ReplyService) CreateReply(ctx context.Context, in CreateReplyInput) (*models.Tweet, error) {
	parent, err := s.tweetRepo.GetOriginalByID(ctx, in.TweetID)
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateTweetContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	reply := &models.Tweet{
		UserID:  in.UserID,
		Content: in.Content,
		Type:    models.TweetTypeReply,
	}
	if err := s.replyRepo.CreateWithTweet(ctx, parent.ID, reply); err != nil {
		return nil, err
	}

	return s.tweetRepo.GetByID(ctx, reply.ID, in.UserID)
}

// ListReplies returns a page of replies under a tweet, oldest first, along
// with the total reply count so callers can paginate.
func (s *ReplyService) ListReplies(ctx context.Context, tweetID uint, limit, offset int, currentUserID uint) ([]*models.Tweet, int64, error) {
	if _, err := s.tweetRepo.GetByID(ctx, tweetID, 0); err != nil {
		return nil, 0, err
	}
	replies, err := s.replyRepo.GetForTweet(ctx, tweetID, limit, offset, currentUserID)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.replyRepo.CountForTweet(ctx, tweetID)
	if err != nil {
		return nil, 0, err
	}
	return replies, count, nil
}
