package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"usersvc/internal/config"
	"usersvc/internal/db"
	"usersvc/internal/model"
	"usersvc/internal/repository"
)

var sampleUserNames = []string{"alice", "bob", "carol", "dave"}

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	seeded := 0
	for _, name := range sampleUserNames {
		userName := name
		if created := userRepo.Create(ctx, &model.User{UserName: &userName}); created != nil {
			seeded++
		} else {
			log.Printf("Skipping user %q: create failed", name)
		}
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users created: %d of %d", seeded, len(sampleUserNames))
}
