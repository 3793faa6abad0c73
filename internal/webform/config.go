// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package webform

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/pdiddy/batchpix/pkg/types"
)

// LoadConfig reads the web shell settings from the environment. A .env file
// in the working directory is honored when present.
func LoadConfig() types.ServeConfig {
	_ = godotenv.Load()

	return types.ServeConfig{
		Addr:            getEnv("BATCHPIX_ADDR", ":8080"),
		ReadTimeout:     getDuration("BATCHPIX_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    getDuration("BATCHPIX_WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDuration("BATCHPIX_SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultVal
}
