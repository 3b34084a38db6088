// Package postgres implements the repositories on top of a pgx connection pool.
package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/khabaroff/sitecraft-api/src/apperrors"
)

// PostgreSQL error codes we translate
const (
	codeUniqueViolation           = "23505"
	codeCheckViolation            = "23514"
	codeInvalidTextRepresentation = "22P02"
)

// translate maps driver errors onto the shared error kinds
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return apperrors.DuplicateKey(fieldFromConstraint(pgErr.TableName, pgErr.ConstraintName)).Wrap(err)
		case codeInvalidTextRepresentation:
			return apperrors.ErrNotFound.Wrap(err)
		case codeCheckViolation:
			return apperrors.Validation(pgErr.Message).Wrap(err)
		}
	}
	return err
}

// fieldFromConstraint recovers the column name from names like
// "admins_email_key" or "contents_key_key".
func fieldFromConstraint(table, constraint string) string {
	if strings.HasSuffix(constraint, "_pkey") {
		return "id"
	}
	name := constraint
	for _, suffix := range []string{"_key", "_idx"} {
		name = strings.TrimSuffix(name, suffix)
	}
	if table != "" && strings.HasPrefix(name, table+"_") {
		return strings.TrimPrefix(name, table+"_")
	}
	if i := strings.IndexByte(name, '_'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
