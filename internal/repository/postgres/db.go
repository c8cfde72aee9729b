package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventmanagement/internal/domain"
)

// DBTX is the subset of database/sql used by the repositories. Both
// *sql.DB and *sql.Tx satisfy it, so the same repository code serves pool
// reads and unit-of-work transactions.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PostgreSQL error codes (class 23, integrity constraint violation).
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// writeError translates driver-level constraint violations into domain
// error kinds. Unique violations surface as conflicts: the store's unique
// indexes are the authoritative enforcement point for registration and
// rating uniqueness, the application pre-checks are only a fast path.
func writeError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return domain.NewConflict("duplicate key violates constraint %s", pqErr.Constraint)
		case pqForeignKeyViolation:
			return domain.NewConflict("referenced row violates constraint %s", pqErr.Constraint)
		}
	}
	return &domain.PersistenceError{Err: err}
}
