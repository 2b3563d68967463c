package configs

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnvFor reads a single environment variable, loading .env first
// when the file exists. Deployed environments set variables directly.
func LoadEnvFor(v string) string {
	_ = godotenv.Load()
	return os.Getenv(v)
}

// LoadEnvOr reads an environment variable with a fallback value.
func LoadEnvOr(v, fallback string) string {
	if x := LoadEnvFor(v); x != "" {
		return x
	}
	return fallback
}
