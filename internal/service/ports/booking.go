package ports

import (
	"context"
	"time"

	"github.com/hsiereveld/careservices-monorepo-sub004/internal/domain"
)

type BookingRepo interface {
	// Create inserts the booking after re-checking the professional's schedule in the same transaction.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// Update persists mutable fields; with recheckSlot the new window is re-validated atomically.
	Update(ctx context.Context, b *domain.Booking, recheckSlot bool) error
	Transition(ctx context.Context, change domain.StatusChange) (*domain.Booking, error)
	ListActiveOverlapping(ctx context.Context, professionalID string, from, to time.Time) ([]*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, int, error)
}
