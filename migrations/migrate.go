// Package migrations embeds the SQL schema of every supported dialect and
// applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// dialects maps a dialect name to its goose dialect and migrations directory.
var dialects = map[string]struct {
	goose string
	dir   string
}{
	"postgres": {goose: "postgres", dir: "postgres"},
	"pgx":      {goose: "postgres", dir: "postgres"},
	"sqlite3":  {goose: "sqlite3", dir: "sqlite"},
	"sqlite":   {goose: "sqlite3", dir: "sqlite"},
}

var ErrNilDB = errors.New("db is nil")

func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	d, ok := dialects[dialect]
	if !ok {
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(d.goose); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
