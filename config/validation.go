package config

import (
	"fmt"
	"strings"
)

const minSessionSecretLength = 32

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConfigRequirements defines required configuration for each environment
type ConfigRequirements struct {
	RequirePostgres      bool
	RequireSessionSecret bool
}

var (
	// Environment-specific requirements
	requirements = map[Environment]ConfigRequirements{
		Development: {},
		Test:        {},
		CI: {
			RequireSessionSecret: true,
		},
		Production: {
			RequirePostgres:      true,
			RequireSessionSecret: true,
		},
	}
)

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()
	reqs := requirements[env]

	var errs []string

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBHost == "" {
			errs = append(errs, ValidationError{"DB_HOST", "is required for postgres"}.Error())
		}
		if cfg.DBName == "" {
			errs = append(errs, ValidationError{"DB_NAME", "is required for postgres"}.Error())
		}
		if cfg.DBPassword == "" && env != Development {
			errs = append(errs, ValidationError{"DB_PASSWORD", "db_password secret or DB_PASSWORD is required"}.Error())
		}
	case "sqlite":
		if reqs.RequirePostgres {
			errs = append(errs, ValidationError{"DB_DRIVER", "sqlite is not allowed in " + string(env)}.Error())
		}
		if cfg.SQLitePath == "" {
			errs = append(errs, ValidationError{"SQLITE_PATH", "is required for sqlite"}.Error())
		}
	default:
		errs = append(errs, ValidationError{"DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.DBDriver)}.Error())
	}

	if reqs.RequireSessionSecret && len(cfg.SessionSecret) < minSessionSecretLength {
		errs = append(errs, ValidationError{"SESSION_SECRET", fmt.Sprintf("must be at least %d bytes", minSessionSecretLength)}.Error())
	}
	if cfg.SessionTTL <= 0 {
		errs = append(errs, ValidationError{"SESSION_TTL", "must be positive"}.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}
