// Command seed populates the database with demo data for development.
package main

import (
	"flag"
	"log"

	"secretely/internal/config"
	"secretely/internal/database"
	"secretely/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Users, "users", opts.Users, "number of users to create")
	flag.IntVar(&opts.SecretsPerUser, "secrets", opts.SecretsPerUser, "secrets per user")
	flag.IntVar(&opts.WYRs, "wyrs", opts.WYRs, "number of would-you-rather posts")
	flag.Float64Var(&opts.FriendDensity, "density", opts.FriendDensity, "friend request probability per user pair")
	flag.Float64Var(&opts.AcceptRate, "accept", opts.AcceptRate, "acceptance probability per request")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.NewFactory(db, opts).Run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}
