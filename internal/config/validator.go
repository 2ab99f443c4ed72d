package config

import (
	"fmt"
	"os"
	"strings"
)

// RequiredEnvVars lists environment variables that must always be set
var RequiredEnvVars = []string{
	"SECRET_KEY",
}

// PostgresEnvVars must be set when STORAGE is postgres (the default)
var PostgresEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

// ValidateEnv checks that all required environment variables are set
func ValidateEnv() error {
	required := append([]string{}, RequiredEnvVars...)
	if storage := os.Getenv("STORAGE"); storage == "" || storage == StoragePostgres {
		required = append(required, PostgresEnvVars...)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using example values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if key := os.Getenv("SECRET_KEY"); len(key) < 32 {
		warnings = append(warnings, "SECRET_KEY is shorter than 32 bytes - generate one with: openssl rand -hex 32")
	}

	if os.Getenv("SMTP_HOST") == "" {
		warnings = append(warnings, "SMTP_HOST is not set - confirmation emails will only be logged")
	}

	return warnings, nil
}
