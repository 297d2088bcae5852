// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"chirp/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts, nextID: 1000}
}

// BuildTweet constructs an original tweet struct populated like CreateTweet
// but does not persist it. Useful for batching.
func (f *Factory) BuildTweet(user *models.User, overrides ...func(*models.Tweet)) *models.Tweet {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	tweet := &models.Tweet{
		Content: generateTweetContent(r.Intn(3) + 1),
		UserID:  user.ID,
		Type:    models.TweetTypeOriginal,
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	minsBack := r.Intn(60)
	tweet.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(tweet)
	}
	return tweet
}

// CreateTweetsBatch persists multiple tweets in a single DB call when possible.
func (f *Factory) CreateTweetsBatch(tweets []*models.Tweet) error {
	if f.opts.DryRun {
		for _, tw := range tweets {
			f.nextID++
			tw.ID = f.nextID
		}
		log.Printf("[dry-run] CreateTweetsBatch: %d tweets (no DB write)", len(tweets))
		return nil
	}
	return f.db.Create(&tweets).Error
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Name:     gofakeit.Name(),
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s", user.Username)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateTweet constructs and persists a sample original tweet for the given user.
func (f *Factory) CreateTweet(user *models.User, overrides ...func(*models.Tweet)) (*models.Tweet, error) {
	tweet := f.BuildTweet(user, overrides...)

	if f.opts.DryRun {
		f.nextID++
		tweet.ID = f.nextID
		log.Printf("[dry-run] CreateTweet: user=%d content=%q", tweet.UserID, tweet.Content)
		return tweet, nil
	}

	if err := f.db.Create(tweet).Error; err != nil {
		return nil, err
	}
	return tweet, nil
}

// CreateReply persists a reply tweet under the given parent along with its
// link row, mirroring what the API does in one transaction.
func (f *Factory) CreateReply(user *models.User, parent *models.Tweet, overrides ...func(*models.Tweet)) (*models.Tweet, error) {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	reply := &models.Tweet{
		Content: generateTweetContent(r.Intn(2) + 1),
		UserID:  user.ID,
		Type:    models.TweetTypeReply,
	}
	for _, override := range overrides {
		override(reply)
	}

	if f.opts.DryRun {
		f.nextID++
		reply.ID = f.nextID
		log.Printf("[dry-run] CreateReply: user=%d parent=%d", reply.UserID, parent.ID)
		return reply, nil
	}

	err := f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(reply).Error; err != nil {
			return err
		}
		link := &models.Reply{TweetID: parent.ID, ReplyID: reply.ID}
		return tx.Create(link).Error
	})
	if err != nil {
		return nil, err
	}
	return reply, nil
}

// CreateLike persists a like from `user` on `tweet`. Duplicate pairs are
// silently absorbed, matching the toggle semantics of the API.
func (f *Factory) CreateLike(user *models.User, tweet *models.Tweet) error {
	if f.opts.DryRun {
		return nil
	}
	like := &models.Like{
		UserID:  user.ID,
		TweetID: tweet.ID,
	}
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error
}

// CreateFollow persists a follow edge between two users. Duplicate pairs are
// silently absorbed.
func (f *Factory) CreateFollow(follower, followed *models.User) error {
	if f.opts.DryRun {
		return nil
	}
	follow := &models.Follow{
		FollowerID: follower.ID,
		FollowedID: followed.ID,
	}
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(follow).Error
}
