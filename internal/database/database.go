// Package database manages the MongoDB connection and collection indexes.
package database

import (
	"context"
	"fmt"
	"time"

	"glimpse/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	UsersCollection    = "users"
	PostsCollection    = "posts"
	CommentsCollection = "comments"
)

// Connect establishes the MongoDB connection and returns the application database.
func Connect(cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.MongoDB)
	if err := EnsureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	return db, nil
}

// EnsureIndexes creates the indexes the application relies on.
//
// The unique indexes on username and email are the authority for registration
// races: the application-level duplicate pre-check is best effort only, and a
// concurrent second insert must be rejected here.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	users := db.Collection(UsersCollection)
	unique := options.Index().SetUnique(true)

	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	})
	if err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}

	posts := db.Collection(PostsCollection)
	_, err = posts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("post indexes: %w", err)
	}

	comments := db.Collection(CommentsCollection)
	_, err = comments.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "post", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("comment indexes: %w", err)
	}

	return nil
}

// Disconnect closes the underlying client with a bounded timeout.
func Disconnect(db *mongo.Database) error {
	if db == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return db.Client().Disconnect(ctx)
}
