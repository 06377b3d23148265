package main

import (
	"database/sql"
	"flag"
	"os"

	_ "github.com/lib/pq"

	"github.com/pageza/recipebox/backend/config"
	"github.com/pageza/recipebox/backend/internal/database"
	"github.com/pageza/recipebox/backend/internal/logger"
	"github.com/pageza/recipebox/backend/migrations"
)

func main() {
	// Parse command line flags
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	status := flag.Bool("status", false, "Print the current schema version and exit")
	flag.Parse()

	log := logger.NewLogger("migrate", os.Getenv("LOG_LEVEL"))

	// DATABASE_URL wins over the DB_* settings
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load configuration")
		}
		if cfg.DBDriver != "postgres" {
			log.Fatal().Str("driver", cfg.DBDriver).Msg("migrations only apply to postgres; sqlite is migrated on startup")
		}
		dsn = cfg.PostgresDSN()
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to reach database")
	}

	gooseLog := database.GooseLogger(log)

	switch {
	case *status:
		version, err := migrations.Version(db, gooseLog)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to read schema version")
		}
		log.Info().Int64("version", version).Msg("current schema version")
	case *rollback:
		if err := migrations.Down(db, gooseLog); err != nil {
			log.Fatal().Err(err).Msg("failed to roll back migration")
		}
		log.Info().Msg("rolled back last migration")
	default:
		if err := migrations.Up(db, gooseLog); err != nil {
			log.Fatal().Err(err).Msg("failed to apply migrations")
		}
		log.Info().Msg("all migrations applied successfully")
	}
}
