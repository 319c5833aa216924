package sqlconfig

import (
	"errors"

	"github.com/lib/pq"
)

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a unique constraint.
var ErrDuplicate = errors.New("duplicate record")

// ErrMissingReference is returned when an insert points at a row that does
// not exist.
var ErrMissingReference = errors.New("referenced record does not exist")

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func translateInsertError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case uniqueViolation:
		return ErrDuplicate
	case foreignKeyViolation:
		return ErrMissingReference
	}
	return err
}
