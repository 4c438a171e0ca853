package config

import (
	"fmt"
	"strings"
)

// ValidateConfig rejects configurations that would fail at runtime. The JWT
// secret is mandatory everywhere; the database password only outside
// development.
func ValidateConfig(cfg *Config, env Environment) error {
	var missing []string

	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if cfg.ServerPort == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.DBHost == "" {
		missing = append(missing, "DB_HOST")
	}
	if cfg.DBName == "" {
		missing = append(missing, "DB_NAME")
	}
	if env == Production && cfg.DBPassword == "" {
		missing = append(missing, "DB_PASSWORD")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	switch cfg.DBSSLMode {
	case "disable", "require", "verify-ca", "verify-full", "prefer", "allow":
	default:
		return fmt.Errorf("invalid DB_SSL_MODE: %q", cfg.DBSSLMode)
	}

	return nil
}
