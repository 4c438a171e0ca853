package config

import (
	"os"
	"strings"
)

// Environment identifies the runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment returns the current environment, defaulting to development.
func GetEnvironment() Environment {
	switch strings.ToLower(os.Getenv("APP_ENV")) {
	case "production", "prod":
		return Production
	case "ci":
		return CI
	case "test":
		return Test
	default:
		return Development
	}
}
