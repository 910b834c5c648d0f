package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr   = ":8080"
	defaultDSN    = "travel.db"
	defaultJWTTTL = "24h"
)

type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
}

// Load reads configuration from the environment, falling back to local
// development defaults. A .env file is honored when present.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Addr:        getEnv("ADDR", defaultAddr),
		DatabaseURL: getEnv("DATABASE_URL", defaultDSN),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTTL:      getDuration("JWT_TTL", defaultJWTTTL),
	}

	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is empty, using insecure development secret")
		cfg.JWTSecret = "dev-secret-change-me"
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key, fallback string) time.Duration {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("WARNING: invalid %s=%q, falling back to %s", key, raw, fallback)
		d, _ = time.ParseDuration(fallback)
	}
	return d
}
