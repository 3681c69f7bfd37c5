// Package store executes parameterized statements against the shop's
// MariaDB/MySQL database: one method per table operation, plus the single
// multi-statement transaction used for order placement.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"zielarnia/internal/logging"
)

// Store wraps the database handle. All methods take a context and surface
// driver errors unchanged; the menu layer is the single place that turns
// them into user-visible messages.
type Store struct {
	db      *sql.DB
	log     *logging.Logger
	nowFunc func() time.Time
}

// Open connects to the database identified by the DSN. Use Ping to run the
// startup connectivity probe.
func Open(dsn string, log *logging.Logger) (*Store, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return New(db, log), nil
}

// New wraps an existing handle; used by Open and by tests.
func New(db *sql.DB, log *logging.Logger) *Store {
	return &Store{db: db, log: log, nowFunc: time.Now}
}

// Ping probes connectivity. A failure here is fatal at startup.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database connection probe: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// queryList runs a SELECT and maps every row through scan. A row that does
// not fit the expected shape is a data-integrity emergency: the error wraps
// the offending query text and propagates instead of being skipped.
func queryList[T any](ctx context.Context, s *Store, query string, scan func(*sql.Rows) (T, error), args ...any) ([]T, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("mapping row for query %q: %w", query, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// queryOne runs a SELECT expected to yield at most one row. Returns
// (nil, nil) when there is no match.
func queryOne[T any](ctx context.Context, s *Store, query string, scan func(*sql.Rows) (T, error), args ...any) (*T, error) {
	list, err := queryList(ctx, s, query, scan, args...)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

// exec runs a statement that returns no rows.
func (s *Store) exec(ctx context.Context, query string, args ...any) error {
	_, err := s.db.ExecContext(ctx, query, args...)
	return err
}

// insertID runs an INSERT and returns the store-generated identifier.
func (s *Store) insertID(ctx context.Context, query string, args ...any) (int, error) {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read generated id for query %q: %w", query, err)
	}
	return int(id), nil
}

// nullString adapts an optional field for a driver parameter.
func nullString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

// strPtr converts a scanned NullString back to the domain shape.
func strPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
