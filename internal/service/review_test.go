package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/domain"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewFixture struct {
	bookings *mocks.MockBookingRepo
	reviews  *mocks.MockReviewRepo
	ratings  *mocks.MockRatingRepo
	notifier *mocks.MockBookingNotifier
	svc      *ReviewService

	booking  *domain.Booking
	customer domain.CallerIdentity
}

func newReviewFixture(t *testing.T, status domain.BookingStatus) *reviewFixture {
	t.Helper()
	f := &reviewFixture{
		bookings: mocks.NewMockBookingRepo(t),
		reviews:  mocks.NewMockReviewRepo(t),
		ratings:  mocks.NewMockRatingRepo(t),
		notifier: mocks.NewMockBookingNotifier(t),
		customer: domain.CallerIdentity{ID: uuid.NewString(), Role: domain.RoleCustomer},
	}
	f.booking = &domain.Booking{
		ID:             uuid.NewString(),
		CustomerID:     f.customer.ID,
		ProfessionalID: uuid.NewString(),
		Status:         status,
	}
	f.svc = NewReviewService(f.bookings, f.reviews, f.ratings, f.notifier, 10, newTestLogger(t))
	return f
}

func TestReviewService_Submit_Success(t *testing.T) {
	f := newReviewFixture(t, domain.BookingStatusCompleted)
	quality := 4
	agg := &domain.RatingAggregate{
		ProfessionalID: f.booking.ProfessionalID,
		Average:        decimal.RequireFromString("4.5"),
		Count:          2,
	}

	f.bookings.EXPECT().GetByID(mock.Anything, f.booking.ID).Return(f.booking, nil)
	f.reviews.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *domain.Review) bool {
		return r.BookingID == f.booking.ID &&
			r.CustomerID == f.customer.ID &&
			r.ProfessionalID == f.booking.ProfessionalID &&
			r.Rating == 5 &&
			*r.QualityRating == 4
	})).Return(nil)
	f.ratings.EXPECT().Recompute(mock.Anything, f.booking.ProfessionalID).Return(agg, nil)
	f.notifier.EXPECT().NotifyReviewSubmitted(mock.Anything, mock.Anything, agg).Return()

	res, err := f.svc.Submit(context.Background(), f.customer, domain.SubmitReviewInput{
		BookingID:      f.booking.ID,
		Rating:         5,
		QualityRating:  &quality,
		WouldRecommend: true,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.Review.ID)
	assert.Equal(t, agg, res.Rating)
	assert.Empty(t, res.Warning)
}

func TestReviewService_Submit_NotCompleted(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.BookingStatusPending,
		domain.BookingStatusConfirmed,
		domain.BookingStatusInProgress,
		domain.BookingStatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newReviewFixture(t, status)
			f.bookings.EXPECT().GetByID(mock.Anything, f.booking.ID).Return(f.booking, nil)

			_, err := f.svc.Submit(context.Background(), f.customer, domain.SubmitReviewInput{BookingID: f.booking.ID, Rating: 5})

			assert.ErrorIs(t, err, domain.ErrReviewNotEligible)
		})
	}
}

func TestReviewService_Submit_NotTheCustomer(t *testing.T) {
	f := newReviewFixture(t, domain.BookingStatusCompleted)
	f.bookings.EXPECT().GetByID(mock.Anything, f.booking.ID).Return(f.booking, nil)

	pro := domain.CallerIdentity{ID: f.booking.ProfessionalID, Role: domain.RoleProfessional}
	_, err := f.svc.Submit(context.Background(), pro, domain.SubmitReviewInput{BookingID: f.booking.ID, Rating: 5})

	assert.ErrorIs(t, err, domain.ErrReviewNotEligible)
}

func TestReviewService_Submit_StrangerDoesNotLearnStatus(t *testing.T) {
	f := newReviewFixture(t, domain.BookingStatusPending)
	f.bookings.EXPECT().GetByID(mock.Anything, f.booking.ID).Return(f.booking, nil)

	stranger := domain.CallerIdentity{ID: uuid.NewString(), Role: domain.RoleCustomer}
	_, err := f.svc.Submit(context.Background(), stranger, domain.SubmitReviewInput{BookingID: f.booking.ID, Rating: 5})

	require.ErrorIs(t, err, domain.ErrReviewNotEligible)
	assert.NotContains(t, err.Error(), string(domain.BookingStatusPending))
}

func TestReviewService_Submit_MalformedBookingID(t *testing.T) {
	f := newReviewFixture(t, domain.BookingStatusCompleted)

	_, err := f.svc.Submit(context.Background(), f.customer, domain.SubmitReviewInput{BookingID: "abc", Rating: 5})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReviewService_Submit_Duplicate(t *testing.T) {
	f := newReviewFixture(t, domain.BookingStatusCompleted)
	f.bookings.EXPECT().GetByID(mock.Anything, f.booking.ID).Return(f.booking, nil)
	f.reviews.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDuplicateReview)

	_, err := f.svc.Submit(context.Background(), f.customer, domain.SubmitReviewInput{BookingID: f.booking.ID, Rating: 4})

	assert.ErrorIs(t, err, domain.ErrDuplicateReview)
}

func TestReviewService_Submit_InvalidRating(t *testing.T) {
	f := newReviewFixture(t, domain.BookingStatusCompleted)

	_, err := f.svc.Submit(context.Background(), f.customer, domain.SubmitReviewInput{BookingID: f.booking.ID, Rating: 7})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReviewService_Submit_BookingNotFound(t *testing.T) {
	f := newReviewFixture(t, domain.BookingStatusCompleted)
	f.bookings.EXPECT().GetByID(mock.Anything, f.booking.ID).Return(nil, domain.ErrBookingNotFound)

	_, err := f.svc.Submit(context.Background(), f.customer, domain.SubmitReviewInput{BookingID: f.booking.ID, Rating: 3})

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestReviewService_Submit_RecomputeFailureKeepsReview(t *testing.T) {
	f := newReviewFixture(t, domain.BookingStatusCompleted)
	f.bookings.EXPECT().GetByID(mock.Anything, f.booking.ID).Return(f.booking, nil)
	f.reviews.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.ratings.EXPECT().Recompute(mock.Anything, f.booking.ProfessionalID).
		Return(nil, errors.New("connection reset"))
	f.ratings.EXPECT().Enqueue(mock.Anything, f.booking.ProfessionalID, "connection reset").Return(nil)
	f.notifier.EXPECT().NotifyReviewSubmitted(mock.Anything, mock.Anything, (*domain.RatingAggregate)(nil)).Return()

	res, err := f.svc.Submit(context.Background(), f.customer, domain.SubmitReviewInput{BookingID: f.booking.ID, Rating: 2})

	require.NoError(t, err)
	assert.NotNil(t, res.Review)
	assert.Nil(t, res.Rating)
	assert.NotEmpty(t, res.Warning)
}

func TestReviewService_ReconcileRatings(t *testing.T) {
	f := newReviewFixture(t, domain.BookingStatusCompleted)
	ok, failing := uuid.NewString(), uuid.NewString()

	f.ratings.EXPECT().ListQueued(mock.Anything, 10).Return([]string{ok, failing}, nil)
	f.ratings.EXPECT().Recompute(mock.Anything, ok).
		Return(&domain.RatingAggregate{ProfessionalID: ok, Average: decimal.RequireFromString("4.0"), Count: 3}, nil)
	f.ratings.EXPECT().Recompute(mock.Anything, failing).Return(nil, errors.New("timeout"))
	f.ratings.EXPECT().Enqueue(mock.Anything, failing, "timeout").Return(nil)

	n, err := f.svc.ReconcileRatings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestReviewService_ReconcileRatings_ListError(t *testing.T) {
	f := newReviewFixture(t, domain.BookingStatusCompleted)
	f.ratings.EXPECT().ListQueued(mock.Anything, 10).Return(nil, domain.ErrDependencyFailure)

	_, err := f.svc.ReconcileRatings(context.Background())

	assert.ErrorIs(t, err, domain.ErrDependencyFailure)
}

func TestReviewService_GetRating(t *testing.T) {
	f := newReviewFixture(t, domain.BookingStatusCompleted)
	id := uuid.NewString()
	agg := &domain.RatingAggregate{ProfessionalID: id, Average: decimal.RequireFromString("3.5"), Count: 4}
	f.ratings.EXPECT().Get(mock.Anything, id).Return(agg, nil)

	got, err := f.svc.GetRating(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, agg, got)

	_, err = f.svc.GetRating(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
