package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config stores the tool's environment-driven settings. Flags override
// the values that have a flag equivalent.
type Config struct {
	OutputDir   string // empty means "alongside the input file"
	FontPath    string // TTF for labels; empty uses the built-in face
	CatalogPath string // sqlite catalog location
	LogLevel    string
	LogPath     string // empty disables the file sink
	ServeAddr   string

	// Optional S3 publishing of rendered previews.
	S3Bucket   string
	S3Region   string
	S3Endpoint string
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Load reads configuration from the environment, consulting a .env file
// first. godotenv.Load never overrides variables already set.
func Load() *Config {
	godotenv.Load()

	return &Config{
		OutputDir:   os.Getenv("STEPVIEW_OUTPUT_DIR"),
		FontPath:    os.Getenv("STEPVIEW_FONT_PATH"),
		CatalogPath: getEnv("STEPVIEW_CATALOG_PATH", "stepview.db"),
		LogLevel:    getEnv("STEPVIEW_LOG_LEVEL", "info"),
		LogPath:     os.Getenv("STEPVIEW_LOG_PATH"),
		ServeAddr:   getEnv("STEPVIEW_SERVE_ADDR", ":8080"),
		S3Bucket:    os.Getenv("STEPVIEW_S3_BUCKET"),
		S3Region:    getEnv("STEPVIEW_S3_REGION", "us-east-1"),
		S3Endpoint:  os.Getenv("STEPVIEW_S3_ENDPOINT"),
	}
}
