package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/purushothaman-98/cinema-wall/internal/config"
	"github.com/purushothaman-98/cinema-wall/internal/mongodb"
)

func main() {
	reset := flag.Bool("reset", false, "drop all existing indexes before recreating them")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := mongodb.NewDB(client, cfg.MongoDB)

	if *reset {
		if err := mongodb.DeleteAllIndexes(ctx, db.Database()); err != nil {
			log.Fatalf("Failed to delete indexes: %v", err)
		}
	}

	if err := mongodb.EnsureIndexes(ctx, db.Database()); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	fmt.Println("✅ All indexes created successfully!")
}
