package service

import (
	"context"

	"chirp/internal/models"
)

type userRepoStub struct {
	getByIDFn           func(context.Context, uint) (*models.User, error)
	getAnyByIDFn        func(context.Context, uint) (*models.User, error)
	getByIDWithTweetsFn func(context.Context, uint, int) (*models.User, error)
	getByEmailFn        func(context.Context, string) (*models.User, error)
	getByUsernameFn     func(context.Context, string) (*models.User, error)
	createFn            func(context.Context, *models.User) error
	updateFn            func(context.Context, *models.User) error
	listFn              func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetAnyByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getAnyByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDWithTweets(ctx context.Context, id uint, limit int) (*models.User, error) {
	return s.getByIDWithTweetsFn(ctx, id, limit)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:           func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getAnyByIDFn:        func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByIDWithTweetsFn: func(context.Context, uint, int) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:        func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn:     func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:            func(context.Context, *models.User) error { return nil },
		updateFn:            func(context.Context, *models.User) error { return nil },
		listFn:              func(context.Context, int, int) ([]models.User, error) { return nil, nil },
	}
}

type tweetRepoStub struct {
	createFn          func(context.Context, *models.Tweet) error
	getByIDFn         func(context.Context, uint, uint) (*models.Tweet, error)
	getByIDAndOwnerFn func(context.Context, uint, uint) (*models.Tweet, error)
	getOriginalByIDFn func(context.Context, uint) (*models.Tweet, error)
	getByUserIDFn     func(context.Context, uint, int, int, uint) ([]*models.Tweet, error)
	listFn            func(context.Context, int, int, uint) ([]*models.Tweet, error)
	feedFn            func(context.Context, uint, int, int) ([]*models.Tweet, error)
	updateFn          func(context.Context, *models.Tweet) error
	deleteFn          func(context.Context, uint) error
	isLikedFn         func(context.Context, uint, uint) (bool, error)
	likeFn            func(context.Context, uint, uint) error
	unlikeFn          func(context.Context, uint, uint) error
}

func (s *tweetRepoStub) Create(ctx context.Context, tweet *models.Tweet) error {
	return s.createFn(ctx, tweet)
}
func (s *tweetRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Tweet, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *tweetRepoStub) GetByIDAndOwner(ctx context.Context, id, userID uint) (*models.Tweet, error) {
	return s.getByIDAndOwnerFn(ctx, id, userID)
}
func (s *tweetRepoStub) GetOriginalByID(ctx context.Context, id uint) (*models.Tweet, error) {
	return s.getOriginalByIDFn(ctx, id)
}
func (s *tweetRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Tweet, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset, currentUserID)
}
func (s *tweetRepoStub) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Tweet, error) {
	return s.listFn(ctx, limit, offset, currentUserID)
}
func (s *tweetRepoStub) Feed(ctx context.Context, userID uint, limit, offset int) ([]*models.Tweet, error) {
	return s.feedFn(ctx, userID, limit, offset)
}
func (s *tweetRepoStub) Update(ctx context.Context, tweet *models.Tweet) error {
	return s.updateFn(ctx, tweet)
}
func (s *tweetRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *tweetRepoStub) IsLiked(ctx context.Context, userID, tweetID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, tweetID)
}
func (s *tweetRepoStub) Like(ctx context.Context, userID, tweetID uint) error {
	return s.likeFn(ctx, userID, tweetID)
}
func (s *tweetRepoStub) Unlike(ctx context.Context, userID, tweetID uint) error {
	return s.unlikeFn(ctx, userID, tweetID)
}

func noopTweetRepo() *tweetRepoStub {
	return &tweetRepoStub{
		createFn:          func(context.Context, *models.Tweet) error { return nil },
		getByIDFn:         func(context.Context, uint, uint) (*models.Tweet, error) { return &models.Tweet{}, nil },
		getByIDAndOwnerFn: func(context.Context, uint, uint) (*models.Tweet, error) { return &models.Tweet{}, nil },
		getOriginalByIDFn: func(context.Context, uint) (*models.Tweet, error) { return &models.Tweet{}, nil },
		getByUserIDFn: func(context.Context, uint, int, int, uint) ([]*models.Tweet, error) {
			return nil, nil
		},
		listFn:    func(context.Context, int, int, uint) ([]*models.Tweet, error) { return nil, nil },
		feedFn:    func(context.Context, uint, int, int) ([]*models.Tweet, error) { return nil, nil },
		updateFn:  func(context.Context, *models.Tweet) error { return nil },
		deleteFn:  func(context.Context, uint) error { return nil },
		isLikedFn: func(context.Context, uint, uint) (bool, error) { return false, nil },
		likeFn:    func(context.Context, uint, uint) error { return nil },
		unlikeFn:  func(context.Context, uint, uint) error { return nil },
	}
}

type followRepoStub struct {
	createFn         func(context.Context, *models.Follow) error
	getByPairFn      func(context.Context, uint, uint) (*models.Follow, error)
	deleteFn         func(context.Context, uint, uint) error
	getFollowersFn   func(context.Context, uint, int, int) ([]models.User, error)
	getFollowingFn   func(context.Context, uint, int, int) ([]models.User, error)
	countFollowersFn func(context.Context, uint) (int64, error)
	countFollowingFn func(context.Context, uint) (int64, error)
}

func (s *followRepoStub) Create(ctx context.Context, follow *models.Follow) error {
	return s.createFn(ctx, follow)
}
func (s *followRepoStub) GetByPair(ctx context.Context, followerID, followedID uint) (*models.Follow, error) {
	return s.getByPairFn(ctx, followerID, followedID)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followedID uint) error {
	return s.deleteFn(ctx, followerID, followedID)
}
func (s *followRepoStub) GetFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	return s.getFollowersFn(ctx, userID, limit, offset)
}
func (s *followRepoStub) GetFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	return s.getFollowingFn(ctx, userID, limit, offset)
}
func (s *followRepoStub) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowersFn(ctx, userID)
}
func (s *followRepoStub) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowingFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createFn:         func(context.Context, *models.Follow) error { return nil },
		getByPairFn:      func(context.Context, uint, uint) (*models.Follow, error) { return nil, nil },
		deleteFn:         func(context.Context, uint, uint) error { return nil },
		getFollowersFn:   func(context.Context, uint, int, int) ([]models.User, error) { return nil, nil },
		getFollowingFn:   func(context.Context, uint, int, int) ([]models.User, error) { return nil, nil },
		countFollowersFn: func(context.Context, uint) (int64, error) { return 0, nil },
		countFollowingFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type replyRepoStub struct {
	createWithTweetFn func(context.Context, uint, *models.Tweet) error
	getForTweetFn     func(context.Context, uint, int, int, uint) ([]*models.Tweet, error)
	countForTweetFn   func(context.Context, uint) (int64, error)
}

func (s *replyRepoStub) CreateWithTweet(ctx context.Context, parentID uint, tweet *models.Tweet) error {
	return s.createWithTweetFn(ctx, parentID, tweet)
}
func (s *replyRepoStub) GetForTweet(ctx context.Context, tweetID uint, limit, offset int, currentUserID uint) ([]*models.Tweet, error) {
	return s.getForTweetFn(ctx, tweetID, limit, offset, currentUserID)
}
func (s *replyRepoStub) CountForTweet(ctx context.Context, tweetID uint) (int64, error) {
	return s.countForTweetFn(ctx, tweetID)
}

func noopReplyRepo() *replyRepoStub {
	return &replyRepoStub{
		createWithTweetFn: func(context.Context, uint, *models.Tweet) error { return nil },
		getForTweetFn: func(context.Context, uint, int, int, uint) ([]*models.Tweet, error) {
			return nil, nil
		},
		countForTweetFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}
