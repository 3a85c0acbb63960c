package main

import (
	"context"
	"flag"
	"log"
	"time"

	"content-service/config"
	"content-service/internal/seed"
	"content-service/internal/store"
	"content-service/internal/util"
)

func main() {
	reset := flag.Bool("reset", false,
		"delete ALL existing products and factory updates (every locale) before seeding")
	flag.Parse()

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	db, err := store.NewStore(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	if *reset {
		log.Println("WARNING: -reset deletes every product and factory update before seeding")
	}

	res, err := seed.Run(ctx, db, seed.Options{Reset: *reset})
	if err != nil {
		log.Fatalf("Bootstrap failed: %v", err)
	}

	log.Printf("Bootstrap complete: products=%d, updates=%d, skipped=%d",
		res.ProductsCreated, res.UpdatesCreated, res.Skipped)
}
