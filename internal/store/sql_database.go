// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-rest-kit/internal/config"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/migrations"
)

// Dialect names the SQL backend a [DB] talks to.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

const (
	maxAttempts  = 3
	retryBackoff = 50 * time.Millisecond
)

// DB is a database handle bound to one dialect. Queries are rendered by
// the squirrel builder with the dialect's placeholder format.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the database selected by the DSN form: postgres:// and
// postgresql:// URLs go to pgx, everything else is treated as SQLite.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch DialectOf(cfg.DSN) {
	case DialectPostgres:
		return NewConnectPostgres(ctx, cfg.DSN, log)
	case DialectSQLite:
		return NewConnectSQLite(ctx, cfg.DSN, log)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, cfg.DSN)
}

// DialectOf infers the dialect from a DSN.
func DialectOf(dsn string) Dialect {
	switch {
	case dsn == "":
		return ""
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres
	default:
		return DialectSQLite
	}
}

func newDB(conn *sql.DB, dialect Dialect, classifier ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Dialect reports the backend of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded migrations of the dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// retry runs fn until it succeeds, the error is not retryable, the context
// ends or the attempts run out.
func (db *DB) retry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable || attempt == maxAttempts {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt).Msg("retrying sql statement")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return err
}

// mapError converts driver errors to the store sentinels.
func (db *DB) mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func isUniqueViolation(err error) bool {
	return postgresUniqueViolation(err) || sqliteUniqueViolation(err)
}
