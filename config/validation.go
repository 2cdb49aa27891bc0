package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that every value the process cannot run without is
// present. A missing generation credential is a startup failure, not a
// request-time one.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if cfg.GroqAPIKey == "" {
		errs = append(errs, "GROQ_API_KEY (or GROQ_API_KEY_FILE) is required")
	}
	if cfg.SessionSecret == "" {
		errs = append(errs, "SESSION_SECRET (or SESSION_SECRET_FILE) is required")
	}
	if cfg.DBName == "" {
		errs = append(errs, "DB_NAME is required")
	}
	if cfg.DBHost == "" {
		errs = append(errs, "DB_HOST is required")
	}
	if IsProduction() {
		if cfg.DBPassword == "" {
			errs = append(errs, "DB_PASSWORD is required in production")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
