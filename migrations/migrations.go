// Package migrations embeds the Postgres schema migrations and applies them
// with goose.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Logger receives goose's progress output
type Logger interface {
	Printf(format string, v ...any)
	Fatalf(format string, v ...any)
}

func setup(log Logger) error {
	goose.SetBaseFS(embedMigrations)
	if log != nil {
		goose.SetLogger(log)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}
	return nil
}

// Up applies every pending migration
func Up(db *sql.DB, log Logger) error {
	if err := setup(log); err != nil {
		return err
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	return nil
}

// Down rolls back the most recent migration
func Down(db *sql.DB, log Logger) error {
	if err := setup(log); err != nil {
		return err
	}
	if err := goose.Down(db, "."); err != nil {
		return fmt.Errorf("rollback error: %w", err)
	}
	return nil
}

// Version returns the current schema version
func Version(db *sql.DB, log Logger) (int64, error) {
	if err := setup(log); err != nil {
		return 0, err
	}
	return goose.GetDBVersion(db)
}
