package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment, loading
// a .env file first when one is present in the working directory. Missing
// variables leave the current value untouched.
func parseEnv(cfg *Config) {
	_ = godotenv.Load() // ok if missing

	setIfPresent := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setIfPresent("ADDRESS", &cfg.EndpointAddr)
	setIfPresent("DATABASE_DSN", &cfg.DatabaseDSN)
	setIfPresent("STORAGE_BACKEND", &cfg.StorageBackend)
	setIfPresent("STORAGE_DIR", &cfg.StorageDir)
	setIfPresent("S3_ROOT_USER", &cfg.S3RootUser)
	setIfPresent("S3_ROOT_PASSWORD", &cfg.S3RootPassword)
	setIfPresent("S3_BUCKET", &cfg.S3Bucket)
	setIfPresent("S3_REGION", &cfg.S3Region)
	setIfPresent("S3_BASE_ENDPOINT", &cfg.S3BaseEndpoint)
	setIfPresent("CORS_ORIGIN", &cfg.CORSOrigin)
}
