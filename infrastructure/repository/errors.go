package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var ErrNotFound = errors.New("record not found")

// dbError wraps err with op, adding the postgres error code when there is one.
func dbError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%s: database error %s: %w", op, pqErr.Code, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
