package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in
// the working directory is folded into the environment first; real
// environment variables win over file entries.
//
// Supported variables:
//
//	PWC_API_URL       backend base address
//	PWC_TIMEOUT       request timeout, e.g. "30s"
//	PWC_DATA_DIR      token/spool directory
//	PWC_DOWNLOAD_DIR  download directory
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("PWC_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("PWC_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("PWC_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("PWC_DOWNLOAD_DIR"); v != "" {
		cfg.DownloadDir = v
	}
}
