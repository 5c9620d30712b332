package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the retry loop in [DB] whether a failed
// statement is worth running again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier retries lost connections, serialization
// failures and deadlocks. Constraint and syntax errors fail at once.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code := postgresError(err)
	if code == "" {
		return NonRetryable
	}

	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		code == pgerrcode.CannotConnectNow:
		return Retryable
	}
	return NonRetryable
}

// postgresError returns the SQLSTATE carried by err, or "" for errors
// that did not come from the server.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func postgresUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation
}
