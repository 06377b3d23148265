package database

import (
	"fmt"
	"os"

	"github.com/pageza/recipebox/backend/internal/logger"
	"github.com/pageza/recipebox/backend/internal/models"
	"github.com/pageza/recipebox/backend/migrations"
	"gorm.io/gorm"
)

// RunMigrations brings the schema up to date. SQLite uses gorm's
// auto-migration; Postgres applies the embedded goose migrations.
func RunMigrations(db *gorm.DB, log *logger.Logger) error {
	if db.Dialector.Name() == "sqlite" {
		log.Info().Msg("using gorm auto-migration for sqlite")
		if err := db.AutoMigrate(models.All()...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return migrations.Up(sqlDB, GooseLogger(log))
}

// gooseLogger adapts zerolog to goose's logger
type gooseLogger struct {
	log *logger.Logger
}

// GooseLogger returns a goose-compatible logger writing to log
func GooseLogger(log *logger.Logger) migrations.Logger {
	return gooseLogger{log: log}
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.Info().Str("component", "goose").Msgf(format, v...)
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.Error().Str("component", "goose").Msgf(format, v...)
	os.Exit(1)
}
