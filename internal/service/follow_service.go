package service

import (
	"context"
	"fmt"

	"chirp/internal/models"
	"chirp/internal/observability"
	"chirp/internal/repository"
)

// Toggle action values shared by like and follow toggles.
const (
	ToggleActionCreated = "created"
	ToggleActionRemoved = "removed"
)

// ToggleResult describes the outcome of a like or follow toggle.
type ToggleResult struct {
	Action  string `json:"action"`
	Message string `json:"message"`
}

// FollowService provides follow-relationship business logic.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// ToggleFollow follows the target user if not followed, unfollows otherwise.
// Following yourself is rejected, and the target must be an active account.
func (s *FollowService) ToggleFollow(ctx context.Context, userID, targetID uint) (*ToggleResult, error) {
	if userID == targetID {
		return nil, models.NewSelfReferenceError("Cannot follow yourself")
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	existing, err := s.followRepo.GetByPair(ctx, userID, targetID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := s.followRepo.Delete(ctx, userID, targetID); err != nil {
			return nil, err
		}
		observability.RecordToggle("follow", ToggleActionRemoved)
		return &ToggleResult{
			Action:  ToggleActionRemoved,
			Message: fmt.Sprintf("Successfully unfollowed user %s", target.Username),
		}, nil
	}

	follow := &models.Follow{FollowerID: userID, FollowedID: targetID}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		return nil, err
	}
	observability.RecordToggle("follow", ToggleActionCreated)
	return &ToggleResult{
		Action:  ToggleActionCreated,
		Message: fmt.Sprintf("Successfully followed user %s", target.Username),
	}, nil
}

// GetFollowers lists active accounts following the user.
func (s *FollowService) GetFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.GetFollowers(ctx, userID, limit, offset)
}

// GetFollowing lists active accounts the user follows.
func (s *FollowService) GetFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.GetFollowing(ctx, userID, limit, offset)
}

// GetFollowCounts returns follower and following counts for the user.
func (s *FollowService) GetFollowCounts(ctx context.Context, userID uint) (followers, following int64, err error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return 0, 0, err
	}
	followers, err = s.followRepo.CountFollowers(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	following, err = s.followRepo.CountFollowing(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	return followers, following, nil
}
