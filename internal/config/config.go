package config

import (
	"fmt"
	"os"
)

// Config holds everything the process reads from the environment. It is built
// once in main and passed by reference to the components that need it, so no
// package reads os.Getenv after startup.
type Config struct {
	MongoURI string
	MongoDB  string
	Port     string

	TmdbAPIKey   string
	GeminiAPIKey string

	// Optional YAML file overriding the default lexicon weights.
	LexiconWeightsFile string
}

const defaultDatabaseName = "cinemawall"

// Load reads the configuration from environment variables. MONGODB_URI is the
// only required value; the TMDB and Gemini keys are optional and their absence
// just disables enrichment / narrative generation.
func Load() (*Config, error) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		return nil, fmt.Errorf("MONGODB_URI is required (e.g. mongodb://localhost:27017)")
	}

	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = defaultDatabaseName
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		MongoURI:           uri,
		MongoDB:            dbName,
		Port:               port,
		TmdbAPIKey:         os.Getenv("TMDB_API_KEY"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		LexiconWeightsFile: os.Getenv("LEXICON_WEIGHTS_FILE"),
	}, nil
}
