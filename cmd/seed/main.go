// Command main runs the database seeder for Tuiter.
package main

import (
	"flag"
	"log"

	"tuiter/internal/config"
	"tuiter/internal/database"
	"tuiter/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numTuits := flag.Int("tuits", 150, "Number of tuits to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "Store plaintext passwords (faster, dev only)")
	flag.Parse()

	log.Println("Tuiter Database Seeder")
	log.Printf("Target: %d users, %d tuits, clean=%v\n", *numUsers, *numTuits, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{
		NumUsers:    *numUsers,
		NumTuits:    *numTuits,
		ShouldClean: *shouldClean,
		SkipBcrypt:  *skipBcrypt,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done. Test users have the password: password123")
}
