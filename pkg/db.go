package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
	pgCodeCheckViolation      = "23514"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsUniqueViolationError(err error) bool {
	return pgErrorCode(err) == pgCodeUniqueViolation
}

// IsForeignKeyViolationError reports a row referencing a missing parent,
// e.g. an exercise logged for an unknown workout day.
func IsForeignKeyViolationError(err error) bool {
	return pgErrorCode(err) == pgCodeForeignKeyViolation
}

func IsCheckViolationError(err error) bool {
	return pgErrorCode(err) == pgCodeCheckViolation
}
