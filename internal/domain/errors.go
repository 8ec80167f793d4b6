package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrServiceNotFound      = errors.New("service not found")
	ErrProfessionalNotFound = errors.New("professional not found")
	ErrCustomerNotFound     = errors.New("customer not found")
)

var (
	ErrSlotConflict      = errors.New("requested time slot is not available")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrReviewNotEligible = errors.New("booking is not eligible for review")
	ErrDuplicateReview   = errors.New("booking has already been reviewed")
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

var (
	ErrValidation   = errors.New("validation error")
	ErrInvalidInput = fmt.Errorf("%w: invalid input", ErrValidation)
)

// ErrDependencyFailure marks errors from the backing store or broker. Callers may retry.
var ErrDependencyFailure = errors.New("dependency unavailable")

type SlotConflictError struct {
	Conflicts []Conflict
}

func (e *SlotConflictError) Error() string {
	if len(e.Conflicts) == 0 {
		return ErrSlotConflict.Error()
	}
	return fmt.Sprintf("%s: overlaps %d active booking(s)", ErrSlotConflict, len(e.Conflicts))
}

func (e *SlotConflictError) Unwrap() error { return ErrSlotConflict }

type TransitionError struct {
	From BookingStatus
	To   BookingStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: cannot change status from %s to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

type ErrorKind string

const (
	KindValidation        ErrorKind = "validation"
	KindSlotConflict      ErrorKind = "slot_conflict"
	KindInvalidTransition ErrorKind = "invalid_transition"
	KindUnauthorized      ErrorKind = "unauthorized"
	KindForbidden         ErrorKind = "forbidden"
	KindNotFound          ErrorKind = "not_found"
	KindNotEligible       ErrorKind = "not_eligible"
	KindDuplicateReview   ErrorKind = "duplicate_review"
	KindDependencyFailure ErrorKind = "dependency_failure"
	KindInternal          ErrorKind = "internal"
)

// KindOf maps an error onto its stable machine-readable kind.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrSlotConflict):
		return KindSlotConflict
	case errors.Is(err, ErrInvalidTransition):
		return KindInvalidTransition
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrServiceNotFound),
		errors.Is(err, ErrProfessionalNotFound),
		errors.Is(err, ErrCustomerNotFound):
		return KindNotFound
	case errors.Is(err, ErrReviewNotEligible):
		return KindNotEligible
	case errors.Is(err, ErrDuplicateReview):
		return KindDuplicateReview
	case errors.Is(err, ErrDependencyFailure):
		return KindDependencyFailure
	}
	return KindInternal
}

// publicSentinels are the errors whose text starts a client-facing message.
var publicSentinels = []error{
	ErrValidation,
	ErrSlotConflict,
	ErrInvalidTransition,
	ErrUnauthorized,
	ErrForbidden,
	ErrBookingNotFound,
	ErrServiceNotFound,
	ErrProfessionalNotFound,
	ErrCustomerNotFound,
	ErrReviewNotEligible,
	ErrDuplicateReview,
}

// Message drops the operation prefixes from err, starting the text at its
// domain sentinel. Errors without a known sentinel get an empty message.
func Message(err error) string {
	msg := err.Error()
	for _, sentinel := range publicSentinels {
		if !errors.Is(err, sentinel) {
			continue
		}
		if i := strings.Index(msg, sentinel.Error()); i >= 0 {
			return msg[i:]
		}
		return sentinel.Error()
	}
	return ""
}

// CheckID rejects identifiers that are not uuids.
func CheckID(field, value string) error {
	if _, err := uuid.Parse(value); err != nil {
		return fmt.Errorf("%w: %s must be a uuid", ErrValidation, field)
	}
	return nil
}
