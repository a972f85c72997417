package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/purushothaman-98/cinema-wall/internal/config"
	"github.com/purushothaman-98/cinema-wall/internal/mongodb"
	"github.com/purushothaman-98/cinema-wall/internal/narrative"
	"github.com/purushothaman-98/cinema-wall/internal/server"
	"github.com/purushothaman-98/cinema-wall/internal/services/consensus"
	"github.com/purushothaman-98/cinema-wall/internal/tmdb"
)

func main() {
	godotenv.Load()

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

	weights := consensus.DefaultLexiconWeights()
	if cfg.LexiconWeightsFile != "" {
		weights, err = consensus.LoadLexiconWeights(cfg.LexiconWeightsFile)
		if err != nil {
			log.Fatalf("Failed to load lexicon weights: %v", err)
		}
		log.Printf("Loaded lexicon weights from %s", cfg.LexiconWeightsFile)
	}

	var fetcher consensus.MetadataFetcher
	if cfg.TmdbAPIKey != "" {
		fetcher = tmdb.NewClient(cfg.TmdbAPIKey)
	} else {
		log.Println("TMDB_API_KEY not set, metadata enrichment disabled")
	}

	var generator narrative.Generator
	if cfg.GeminiAPIKey != "" {
		gemini, err := narrative.NewGeminiGenerator(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Fatalf("Failed to create narrative generator: %v", err)
		}
		generator = narrative.NewRetryingGenerator(gemini, narrative.DefaultRetryPolicy())
	} else {
		log.Println("GEMINI_API_KEY not set, narrative generation disabled")
	}

	aggregator := consensus.NewAggregator(consensus.NewScorer(weights), fetcher)
	handler := server.NewServer(db, aggregator, narrative.NewService(db, generator))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	log.Printf("Server is running on port %s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
