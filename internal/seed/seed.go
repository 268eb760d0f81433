// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"secretely/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls the size and shape of the seeded dataset.
type Options struct {
	Users          int
	SecretsPerUser int
	WYRs           int
	FriendDensity  float64 // probability that any user pair gets a request
	AcceptRate     float64 // probability that a request gets accepted
	Password       string  // shared login password for every seeded user
}

// DefaultOptions returns a small but connected dataset.
func DefaultOptions() Options {
	return Options{
		Users:          20,
		SecretsPerUser: 3,
		WYRs:           15,
		FriendDensity:  0.2,
		AcceptRate:     0.7,
		Password:       "SeededPass12",
	}
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run seeds the whole dataset: users, friendships, secrets, WYRs, likes,
// and comments.
func (f *Factory) Run() error {
	users, err := f.CreateUsers(f.opts.Users)
	if err != nil {
		return err
	}
	if err := f.CreateFriendships(users); err != nil {
		return err
	}
	posts, err := f.CreateSecrets(users)
	if err != nil {
		return err
	}
	wyrs, err := f.CreateWYRs()
	if err != nil {
		return err
	}
	posts = append(posts, wyrs...)
	if err := f.CreateEngagement(users, posts); err != nil {
		return err
	}

	log.Printf("Seeded %d users, %d posts", len(users), len(posts))
	return nil
}

// CreateUsers persists n fake users sharing one known password.
func (f *Factory) CreateUsers(n int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(f.opts.Password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), f.rng.Intn(100000)),
			Name:     gofakeit.Name(),
			Email:    fmt.Sprintf("%d_%s", i, gofakeit.Email()),
			Password: string(hashed),
		}
		if err := f.db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("failed to seed user %d: %w", i, err)
		}
		users = append(users, user)
	}
	return users, nil
}

// CreateFriendships wires random friend requests between user pairs,
// accepting a fraction of them.
func (f *Factory) CreateFriendships(users []*models.User) error {
	for i := range users {
		for j := i + 1; j < len(users); j++ {
			if f.rng.Float64() >= f.opts.FriendDensity {
				continue
			}
			sender, receiver := users[i], users[j]
			if f.rng.Intn(2) == 0 {
				sender, receiver = receiver, sender
			}
			request := &models.FriendRequest{
				SenderID:   sender.ID,
				ReceiverID: receiver.ID,
				Accepted:   f.rng.Float64() < f.opts.AcceptRate,
			}
			if err := f.db.Create(request).Error; err != nil {
				return fmt.Errorf("failed to seed friendship: %w", err)
			}
		}
	}
	return nil
}

// CreateSecrets gives each user a handful of secrets, some anonymous,
// some private.
func (f *Factory) CreateSecrets(users []*models.User) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, len(users)*f.opts.SecretsPerUser)
	for _, user := range users {
		for i := 0; i < f.opts.SecretsPerUser; i++ {
			post := &models.Post{
				IsPublic: f.rng.Float64() < 0.6,
				ClientIP: gofakeit.IPv4Address(),
				Language: gofakeit.RandomString([]string{"en", "de", "fr", "es", "pt-BR"}),
				Type:     models.PostTypeSecret,
				Secret:   &models.Secret{Text: gofakeit.HipsterSentence(10)},
			}
			// Roughly a third of secrets are anonymous.
			if f.rng.Intn(3) != 0 {
				post.OwnerID = &user.ID
			}
			if err := f.db.Create(post).Error; err != nil {
				return nil, fmt.Errorf("failed to seed secret: %w", err)
			}
			posts = append(posts, post)
		}
	}
	return posts, nil
}

// CreateWYRs seeds would-you-rather posts. WYRs carry no owner.
func (f *Factory) CreateWYRs() ([]*models.Post, error) {
	posts := make([]*models.Post, 0, f.opts.WYRs)
	for i := 0; i < f.opts.WYRs; i++ {
		post := &models.Post{
			IsPublic: true,
			ClientIP: gofakeit.IPv4Address(),
			Language: "en",
			Type:     models.PostTypeWYR,
			WYR: &models.WYR{
				OptionOne: gofakeit.HipsterSentence(6),
				OptionTwo: gofakeit.HipsterSentence(6),
			},
		}
		if err := f.db.Create(post).Error; err != nil {
			return nil, fmt.Errorf("failed to seed wyr: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// CreateEngagement sprinkles likes and comments across the posts.
func (f *Factory) CreateEngagement(users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		for _, user := range users {
			if f.rng.Float64() < 0.15 {
				like := &models.Like{UserID: user.ID, PostID: post.ID}
				if err := f.db.Create(like).Error; err != nil {
					return fmt.Errorf("failed to seed like: %w", err)
				}
			}
			if f.rng.Float64() < 0.05 {
				comment := &models.Comment{
					UserID: user.ID,
					PostID: post.ID,
					Text:   gofakeit.HipsterSentence(8),
				}
				if err := f.db.Create(comment).Error; err != nil {
					return fmt.Errorf("failed to seed comment: %w", err)
				}
			}
		}
	}
	return nil
}
