package database

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when no record exists for the given identifier.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateName is returned when a category name collides with an
	// existing one, either via the existence pre-check or the unique index.
	ErrDuplicateName = errors.New("name already exists")
)

// Postgres error code for unique constraint violations.
const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
