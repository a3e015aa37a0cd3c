// Command main runs the database seeder for JoinMe.
package main

import (
	"flag"
	"log"

	"joinme/internal/config"
	"joinme/internal/database"
	"joinme/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numPosts := flag.Int("posts", 120, "Number of posts to create")
	centerLat := flag.Float64("lat", 52.52, "Latitude of the seeded community center")
	centerLng := flag.Float64("lng", 13.405, "Longitude of the seeded community center")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d posts around (%.4f, %.4f), clean=%v\n",
		*numUsers, *numPosts, *centerLat, *centerLng, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err = database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(database.DB)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("❌ Cleanup failed: %v", err)
		}
	}

	if err := s.SeedCommunity(*centerLat, *centerLng, *numUsers, *numPosts); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Println("📧 All test users have the password: password123")
}
