package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/hsiereveld/careservices-monorepo-sub004/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"
)

const (
	pgUniqueViolation     = "23505"
	pgExclusionViolation  = "23P01"
	pgForeignKeyViolation = "23503"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// storeErr marks an infrastructure failure so callers can tell it apart from domain errors.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrDependencyFailure, err)
}

func pgCode(err error) string {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return string(pgErr.Code)
	}
	return ""
}

// isSlotViolation reports whether the database rejected a write because the
// slot is already held by another active booking.
func isSlotViolation(err error) bool {
	code := pgCode(err)
	return code == pgUniqueViolation || code == pgExclusionViolation
}
