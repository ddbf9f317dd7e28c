package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes used by the application.
const (
	uniqueViolationCode = "23505"
	checkViolationCode  = "23514"
)

// IsUniqueViolation checks if the error is a PostgreSQL unique violation
// error, regardless of which constraint was hit.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique
// violation error for a specific named constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == constraintName
}

// IsCheckViolation checks if the error is a PostgreSQL check constraint
// violation for a specific named constraint.
func IsCheckViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == checkViolationCode && pgErr.ConstraintName == constraintName
}
