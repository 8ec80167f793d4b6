package ports

import (
	"context"

	"github.com/hsiereveld/careservices-monorepo-sub004/internal/domain"
)

// BookingNotifier publishes lifecycle facts. Delivery failures are handled by the implementation.
type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking)
	NotifyBookingUpdated(ctx context.Context, b *domain.Booking)
	NotifyStatusChanged(ctx context.Context, b *domain.Booking, from domain.BookingStatus)
	NotifyReviewSubmitted(ctx context.Context, r *domain.Review, rating *domain.RatingAggregate)
}
