package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

func prefixColumns(prefix string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = prefix + "." + c
	}
	return out
}

// timestamp scans a column that one driver returns as time.Time and
// another as text (sqlite expressions and RETURNING clauses carry no
// declared type).
type timestamp struct {
	t *time.Time
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*ts.t = time.Time{}
		return nil
	case time.Time:
		*ts.t = v
		return nil
	case []byte:
		return ts.parse(string(v))
	case string:
		return ts.parse(v)
	}
	return fmt.Errorf("%w: unsupported timestamp type %T", ErrScanningRow, src)
}

func (ts timestamp) parse(s string) error {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*ts.t = t
			return nil
		}
	}
	return fmt.Errorf("%w: unparsable timestamp %q", ErrScanningRow, s)
}
