package store

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound reports that an update or delete matched zero rows.
	ErrNotFound = errors.New("record not found")

	// ErrMissingFields reports that a required field was absent. It is
	// raised before any query runs.
	ErrMissingFields = errors.New("missing required fields")
)

// IsConstraintViolation reports whether err came from the storage engine
// rejecting a constraint (foreign key, uniqueness, not-null). Postgres
// uses SQLSTATE class 23 for the whole family.
func IsConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "23"
	}
	return false
}
