package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Dosada05/tournament-engine/brackets"
	"github.com/Dosada05/tournament-engine/storage"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  int
	DatabaseURL string // empty keeps tournaments in memory

	// EngineSeed fixes the engine's randomness when set.
	EngineSeed       *uint64
	DefaultGroupSize int

	CORSAllowedOrigins []string
	SportPresetsFile   string

	R2 storage.CloudflareR2UploaderConfig
}

// Load reads configuration from the environment, after an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	groupSize, err := intEnv("DEFAULT_GROUP_SIZE", brackets.DefaultGroupSize)
	if err != nil {
		return nil, err
	}
	if groupSize < 2 {
		return nil, fmt.Errorf("DEFAULT_GROUP_SIZE must be at least 2, got %d", groupSize)
	}

	cfg := &Config{
		ServerPort:         port,
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DefaultGroupSize:   groupSize,
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS"), []string{"*"}),
		SportPresetsFile:   os.Getenv("SPORT_PRESETS_FILE"),
		R2: storage.CloudflareR2UploaderConfig{
			AccountID:       os.Getenv("R2_ACCOUNT_ID"),
			AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
			BucketName:      os.Getenv("R2_BUCKET_NAME"),
			PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
		},
	}

	if raw := os.Getenv("ENGINE_SEED"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ENGINE_SEED environment variable: %w", err)
		}
		cfg.EngineSeed = &seed
	}

	return cfg, nil
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return v, nil
}

func splitList(raw string, fallback []string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
