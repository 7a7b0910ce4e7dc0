// Command main runs the database seeder for Pinboard.
package main

import (
	"flag"
	"log"

	"pinboard/internal/config"
	"pinboard/internal/database"
	"pinboard/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numPins := flag.Int("pins", 200, "Number of pins to create")
	numBoards := flag.Int("boards", 50, "Number of boards to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("fast", false, "Skip bcrypt hashing for faster seeding (dev only)")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d pins, %d boards, clean=%v\n",
		*numUsers, *numPins, *numBoards, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = seed.Seed(database.DB, seed.Options{
		NumUsers:    *numUsers,
		NumPins:     *numPins,
		NumBoards:   *numBoards,
		ShouldClean: *shouldClean,
		SkipBcrypt:  *skipBcrypt,
	})
	if err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Println("📧 All test users have the password: password123")
}
