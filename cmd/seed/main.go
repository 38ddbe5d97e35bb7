// Command main runs the database seeder for Glimpse.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"glimpse/internal/config"
	"glimpse/internal/database"
	"glimpse/internal/seed"

	"github.com/brianvoe/gofakeit/v6"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numPosts := flag.Int("posts", 100, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	fakerSeed := flag.Int64("seed", 0, "Faker seed (0 for random)")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d posts, clean=%v\n", *numUsers, *numPosts, *shouldClean)

	gofakeit.Seed(*fakerSeed)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Disconnect(db); err != nil {
			log.Printf("Disconnect error: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(ctx); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	users, err := s.SeedUsers(ctx, *numUsers)
	if err != nil {
		log.Fatalf("User seeding failed: %v", err)
	}

	posts, err := s.SeedPosts(ctx, users, *numPosts)
	if err != nil {
		log.Fatalf("Post seeding failed: %v", err)
	}

	if err := s.SeedEngagement(ctx, users, posts); err != nil {
		log.Fatalf("Engagement seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with test data.")
	log.Printf("All test users have the password: %s", seed.TestPassword)
}
