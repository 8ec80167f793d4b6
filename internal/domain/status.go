package domain

import "fmt"

var transitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed:  {BookingStatusInProgress, BookingStatusCancelled},
	BookingStatusInProgress: {BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusCompleted:  {},
	BookingStatusCancelled:  {},
	BookingStatusNoShow:     {},
}

// CanTransition reports whether from -> to appears in the lifecycle table.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CancellableStatuses are the statuses a party may cancel from through the cancel operation.
var CancellableStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

func IsCancellable(s BookingStatus) bool {
	for _, c := range CancellableStatuses {
		if s == c {
			return true
		}
	}
	return false
}

type Action string

const (
	ActionView   Action = "view"
	ActionUpdate Action = "update"
	ActionCancel Action = "cancel"
)

// Authorize is the permission check for non-status booking operations.
func Authorize(caller CallerIdentity, action Action, b *Booking) error {
	party := b.PartyOf(caller)
	switch action {
	case ActionView:
		if party != PartyNone {
			return nil
		}
	case ActionUpdate, ActionCancel:
		if party == PartyCustomer || party == PartyProfessional {
			return nil
		}
	}
	return fmt.Errorf("%w: %s may not %s this booking", ErrForbidden, party, action)
}

// AuthorizeTransition checks that the move is in the lifecycle table and that the caller's side may drive it.
func AuthorizeTransition(caller CallerIdentity, b *Booking, to BookingStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: invalid status %q", ErrValidation, to)
	}

	party := b.PartyOf(caller)
	if party != PartyCustomer && party != PartyProfessional {
		return fmt.Errorf("%w: %s may not change booking status", ErrForbidden, party)
	}

	if !CanTransition(b.Status, to) {
		return &TransitionError{From: b.Status, To: to}
	}

	if !mayDrive(party, b.Status, to) {
		return fmt.Errorf("%w: %s may not move a booking from %s to %s", ErrForbidden, party, b.Status, to)
	}
	return nil
}

// The professional performs the service, so only they confirm, start, complete
// and abort work already in progress.
func mayDrive(party Party, from, to BookingStatus) bool {
	if to == BookingStatusCancelled && from != BookingStatusInProgress {
		return party == PartyCustomer || party == PartyProfessional
	}
	return party == PartyProfessional
}
