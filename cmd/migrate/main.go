package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ignite/networking-ai/internal/config"
	"github.com/ignite/networking-ai/internal/repository/postgres"
)

func main() {
	listOnly := false
	for _, a := range os.Args[1:] {
		if a == "--list" {
			listOnly = true
		}
	}

	if listOnly {
		names, err := postgres.Migrations()
		if err != nil {
			log.Fatal(err)
		}
		for _, n := range names {
			fmt.Println(" ", n)
		}
		fmt.Printf("Total: %d migrations\n", len(names))
		return
	}

	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Database.InMemory() {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := postgres.Open(cfg.Database.URL, cfg.Database.Name, 1)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ping: %v", err)
	}
	log.Println("Connected to database")

	if err := postgres.Migrate(ctx, db, cfg.Database.Name); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Printf("Schema %q is up to date", cfg.Database.Name)
}
