// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"chirp/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumTweets   int
	ShouldClean bool
	// MaxDays bounds the backdated created_at spread on generated tweets.
	MaxDays int
	// DryRun builds entities without touching the database.
	DryRun bool
	// SkipBcrypt stores a plaintext password to speed up large dev seeds.
	SkipBcrypt bool
}

var (
	firstNames = []string{
		"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda",
		"William", "Elizabeth", "David", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
		"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Nancy", "Daniel", "Lisa",
		"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
		"Steven", "Kimberly", "Paul", "Emily", "Andrew", "Donna", "Joshua", "Michelle",
		"Kenneth", "Dorothy", "Kevin", "Carol", "Brian", "Amanda", "George", "Melissa",
	}

	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
		"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
		"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
		"Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young",
		"Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
	}

	adjectives = []string{
		"amazing", "incredible", "fascinating", "challenging", "excited", "happy", "proud",
		"grateful", "inspired", "motivated", "curious", "passionate", "creative", "innovative",
		"beautiful", "elegant", "robust", "scalable", "secure", "fast", "reliable", "dynamic",
	}

	nouns = []string{
		"project", "team", "community", "code", "design", "architecture", "system", "app",
		"website", "platform", "framework", "library", "tool", "solution", "idea", "concept",
		"challenge", "opportunity", "goal", "dream", "journey", "experience", "lesson", "skill",
	}

	verbs = []string{
		"built", "created", "designed", "developed", "launched", "deployed", "shipped",
		"fixed", "solved", "learned", "discovered", "explored", "mastered", "shared",
		"improved", "optimized", "refactored", "debugged", "tested", "validated",
	}
)

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d tweets...", opts.NumUsers, opts.NumTweets)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	f := NewFactory(db, opts)

	users, err := createUsers(f, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d test users created", len(users))

	tweets, err := createTweets(f, users, opts.NumTweets)
	if err != nil {
		return fmt.Errorf("failed to create tweets: %w", err)
	}
	log.Printf("%d tweets created", len(tweets))

	if err := createFollowMesh(f, users); err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}

	if err := createLikes(f, users, tweets); err != nil {
		return fmt.Errorf("failed to create likes: %w", err)
	}

	if err := createReplies(f, users, tweets); err != nil {
		return fmt.Errorf("failed to create replies: %w", err)
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE replies, likes, follows, tweets, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func generateRandomName() (string, string) {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	first := firstNames[r.Intn(len(firstNames))]
	last := lastNames[r.Intn(len(lastNames))]
	return first, last
}

func generateUsername(first, last string) string {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	formats := []string{"%s%s", "%s_%s", "%s%d", "%s_%d"}
	format := formats[r.Intn(len(formats))]

	switch format {
	case "%s%d", "%s_%d":
		return strings.ToLower(fmt.Sprintf(format, first, r.Intn(1000)))
	default:
		return strings.ToLower(fmt.Sprintf(format, first, last))
	}
}

func generateSentence() string {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	adj := adjectives[r.Intn(len(adjectives))]
	noun := nouns[r.Intn(len(nouns))]
	verb := verbs[r.Intn(len(verbs))]

	templates := []string{
		"Just %s an %s %s.",
		"The %s %s was %s.",
		"I %s this %s %s!",
		"What an %s %s to %s.",
		"Time to %s the %s %s.",
	}

	template := templates[r.Intn(len(templates))]
	return fmt.Sprintf(template, verb, adj, noun)
}

// generateTweetContent builds short multi-sentence content that always fits
// the 280-character limit.
func generateTweetContent(sentences int) string {
	var sb strings.Builder
	for i := 0; i < sentences; i++ {
		next := generateSentence()
		if sb.Len()+len(next)+1 > 280 {
			break
		}
		sb.WriteString(next)
		sb.WriteString(" ")
	}
	return strings.TrimSpace(sb.String())
}

func createUsers(f *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)

	// Always include some specific users for consistency if cleaning
	if count >= 3 {
		baseUsers := []string{"alice", "bob", "test"}
		for _, u := range baseUsers {
			user, err := f.CreateUser(func(user *models.User) {
				user.Name = strings.ToUpper(u[:1]) + u[1:] + " Example"
				user.Username = u
				user.Email = fmt.Sprintf("%s@example.com", u)
				user.Password = string(hashedPassword)
			})
			if err == nil {
				users = append(users, user)
			}
		}
	}

	for i := len(users); i < count; i++ {
		user, err := f.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, user)

		if i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}

	return users, nil
}

func createTweets(f *Factory, users []*models.User, count int) ([]*models.Tweet, error) {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	tweets := make([]*models.Tweet, 0, count)

	for i := 0; i < count; i++ {
		user := users[r.Intn(len(users))]
		tweet, err := f.CreateTweet(user)
		if err != nil {
			return nil, err
		}
		tweets = append(tweets, tweet)

		if i%100 == 0 {
			log.Printf("Created %d tweets...", i)
		}
	}

	return tweets, nil
}

// createFollowMesh wires a sparse random follow graph. Self-follows are
// skipped and duplicate pairs are absorbed by the composite unique index.
func createFollowMesh(f *Factory, users []*models.User) error {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, follower := range users {
		// each user follows roughly a fifth of the network
		n := len(users) / 5
		if n == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			target := users[r.Intn(len(users))]
			if target.ID == follower.ID {
				continue
			}
			if err := f.CreateFollow(follower, target); err != nil {
				return err
			}
		}
	}
	return nil
}

func createLikes(f *Factory, users []*models.User, tweets []*models.Tweet) error {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, tweet := range tweets {
		n := r.Intn(len(users)/2 + 1)
		for i := 0; i < n; i++ {
			user := users[r.Intn(len(users))]
			if err := f.CreateLike(user, tweet); err != nil {
				return err
			}
		}
	}
	return nil
}

func createReplies(f *Factory, users []*models.User, tweets []*models.Tweet) error {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, tweet := range tweets {
		if r.Float32() > 0.4 {
			continue
		}
		n := r.Intn(3) + 1
		for i := 0; i < n; i++ {
			user := users[r.Intn(len(users))]
			if _, err := f.CreateReply(user, tweet); err != nil {
				return err
			}
		}
	}
	return nil
}
