package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a query expected to match a single row
	// produces an empty result set.
	ErrNotFound = errors.New("record was not found")

	// ErrAlreadyExists is returned when an INSERT or UPDATE violates a
	// unique constraint (e.g. a login that is already taken).
	ErrAlreadyExists = errors.New("record already exists")

	// ErrUnknownDialect is returned by [NewDB] for a DSN it cannot map to a
	// registered driver.
	ErrUnknownDialect = errors.New("unknown sql dialect")
)

// Low-level database operation errors. These wrap the driver error when a
// SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement fails for a
	// reason that has no dedicated sentinel.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
