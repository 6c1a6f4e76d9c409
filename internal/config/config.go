package config

import (
	"os"
	"time"

	"github.com/okoskela/bloglist-server/internal/auth"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port     string
	MongoURI string
	MongoDB  string
	Secret   string
	TokenTTL time.Duration
}

func Load() *Config {
	return &Config{
		Port:     getenv("PORT", "3003"),
		MongoURI: getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:  getenv("MONGO_DB", "bloglist"),
		Secret:   getenv("SECRET", ""),
		TokenTTL: getduration("TOKEN_TTL", auth.DefaultTokenTTL),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
