package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Service-level error taxonomy. Handlers translate these into HTTP
// statuses; anything else is a store failure and becomes a 500.
var (
	ErrNotFound         = errors.New("record not found")
	ErrValidation       = errors.New("validation failed")
	ErrPermissionDenied = errors.New("permission denied")

	// ErrDuplicateAction marks a toggle race: a concurrent request created
	// the like row between our existence check and our insert. The unique
	// index reports it; we surface it as a user-level duplicate, not a
	// server fault.
	ErrDuplicateAction = errors.New("duplicate action")
)

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
