package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrDuplicateKey is returned when an insert violates a unique constraint.
var ErrDuplicateKey = errors.New("store: duplicate key")

// pgUniqueViolation is the Postgres SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// MapError translates driver specific constraint errors into store sentinels.
// Errors it does not recognise are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return errors.Join(ErrDuplicateKey, err)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) && liteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return errors.Join(ErrDuplicateKey, err)
	}

	return err
}

// IsDuplicateKey reports whether err stems from a unique constraint violation.
func IsDuplicateKey(err error) bool { return errors.Is(err, ErrDuplicateKey) }
