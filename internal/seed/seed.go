// Package seed populates the database with generated test data.
package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"glimpse/internal/database"
	"glimpse/internal/models"
	"glimpse/internal/repository"
	"glimpse/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plaintext password given to every seeded account.
const TestPassword = "password123"

var usernameScrub = regexp.MustCompile(`[^a-z0-9_]`)

// Seeder creates fake users, posts, follows, likes, and comments. Edge writes
// go through the relationship service so both sides of every edge stay
// consistent with what the API itself would produce.
type Seeder struct {
	db       *mongo.Database
	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository

	relationships *service.RelationshipService
	postSvc       *service.PostService
	commentSvc    *service.CommentService
}

// NewSeeder wires a Seeder over the given database.
func NewSeeder(db *mongo.Database) *Seeder {
	users := repository.NewUserRepository(db)
	posts := repository.NewPostRepository(db)
	comments := repository.NewCommentRepository(db)

	return &Seeder{
		db:            db,
		users:         users,
		posts:         posts,
		comments:      comments,
		relationships: service.NewRelationshipService(users, posts),
		postSvc:       service.NewPostService(posts, users, comments),
		commentSvc:    service.NewCommentService(comments, posts),
	}
}

// ClearAll drops every collection so seeding starts from an empty database.
func (s *Seeder) ClearAll(ctx context.Context) error {
	log.Println("Clearing existing data...")
	for _, name := range []string{
		database.CommentsCollection,
		database.PostsCollection,
		database.UsersCollection,
	} {
		if err := s.db.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("dropping %s: %w", name, err)
		}
	}
	return database.EnsureIndexes(ctx, s.db)
}

// SeedUsers creates n accounts, all sharing TestPassword.
func (s *Seeder) SeedUsers(ctx context.Context, n int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		person := gofakeit.Person()
		username := usernameScrub.ReplaceAllString(
			strings.ToLower(gofakeit.Username()), "_")
		// Numeric suffix keeps usernames unique across the batch.
		username = fmt.Sprintf("%.14s_%d", username, i)

		user := &models.User{
			ID:         primitive.NewObjectID(),
			Name:       person.FirstName + " " + person.LastName,
			Username:   username,
			Email:      fmt.Sprintf("%s@%s", username, gofakeit.DomainName()),
			Password:   string(hashed),
			ProfilePic: gofakeit.ImageURL(320, 320),
			Biography:  gofakeit.Sentence(8),
			Posts:      []primitive.ObjectID{},
			Followers:  []primitive.ObjectID{},
			Following:  []primitive.ObjectID{},
			Likes:      []primitive.ObjectID{},
			Saved:      []primitive.ObjectID{},
			CreatedAt:  time.Now().UTC(),
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("creating user %s: %w", username, err)
		}
		users = append(users, user)
	}

	log.Printf("Created %d users", len(users))
	return users, nil
}

// SeedPosts creates n posts spread over random owners.
func (s *Seeder) SeedPosts(ctx context.Context, users []*models.User, n int) ([]*models.PostDetail, error) {
	posts := make([]*models.PostDetail, 0, n)
	for i := 0; i < n; i++ {
		owner := users[rand.Intn(len(users))]

		images := make([]string, 1+rand.Intn(3))
		for j := range images {
			images[j] = gofakeit.ImageURL(640, 640)
		}

		caption := ""
		if rand.Intn(4) > 0 {
			caption = gofakeit.Sentence(6 + rand.Intn(10))
		}

		post, err := s.postSvc.CreatePost(ctx, service.CreatePostInput{
			UserID:  owner.ID,
			Images:  images,
			Caption: caption,
		})
		if err != nil {
			return nil, fmt.Errorf("creating post for %s: %w", owner.Username, err)
		}
		posts = append(posts, post)
	}

	log.Printf("Created %d posts", len(posts))
	return posts, nil
}

// SeedEngagement wires follows, likes, saves, and comments between the seeded
// users and posts.
func (s *Seeder) SeedEngagement(ctx context.Context, users []*models.User, posts []*models.PostDetail) error {
	follows, likes, saves, commentCount := 0, 0, 0, 0

	for _, user := range users {
		for i := 0; i < 2+rand.Intn(4); i++ {
			target := users[rand.Intn(len(users))]
			if target.ID == user.ID {
				continue
			}
			result, err := s.relationships.ToggleFollow(ctx, user.ID, target.Username)
			if err != nil {
				return fmt.Errorf("following %s: %w", target.Username, err)
			}
			if result.Created {
				follows++
			}
		}

		for i := 0; i < rand.Intn(6); i++ {
			post := posts[rand.Intn(len(posts))]
			result, err := s.relationships.ToggleLike(ctx, user.ID, post.ID)
			if err != nil {
				return fmt.Errorf("liking post: %w", err)
			}
			if result.Created {
				likes++
			}
		}

		for i := 0; i < rand.Intn(3); i++ {
			post := posts[rand.Intn(len(posts))]
			result, err := s.relationships.ToggleSave(ctx, user.ID, post.ID)
			if err != nil {
				return fmt.Errorf("saving post: %w", err)
			}
			if result.Created {
				saves++
			}
		}

		for i := 0; i < rand.Intn(4); i++ {
			post := posts[rand.Intn(len(posts))]
			if _, err := s.commentSvc.CreateComment(ctx, service.CreateCommentInput{
				UserID: user.ID,
				PostID: post.ID,
				Text:   gofakeit.Sentence(4 + rand.Intn(12)),
			}); err != nil {
				return fmt.Errorf("commenting: %w", err)
			}
			commentCount++
		}
	}

	log.Printf("Created %d follows, %d likes, %d saves, %d comments",
		follows, likes, saves, commentCount)
	return nil
}
