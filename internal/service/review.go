package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/domain"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultReconcileBatch = 50
	staleRatingWarning    = "review saved, the professional rating will be refreshed shortly"
)

type ReviewService struct {
	bookingRepo    ports.BookingRepo
	reviewRepo     ports.ReviewRepo
	ratingRepo     ports.RatingRepo
	notifier       ports.BookingNotifier
	logger         logger.Logger
	reconcileBatch int
}

func NewReviewService(
	bookingRepo ports.BookingRepo,
	reviewRepo ports.ReviewRepo,
	ratingRepo ports.RatingRepo,
	notifier ports.BookingNotifier,
	reconcileBatch int,
	logger logger.Logger,
) *ReviewService {
	if reconcileBatch <= 0 {
		reconcileBatch = defaultReconcileBatch
	}
	return &ReviewService{
		bookingRepo:    bookingRepo,
		reviewRepo:     reviewRepo,
		ratingRepo:     ratingRepo,
		notifier:       notifier,
		logger:         logger,
		reconcileBatch: reconcileBatch,
	}
}

// Submit stores the customer's single review of a completed booking and
// recomputes the professional's rating. A failed recompute keeps the review
// and is queued for reconciliation.
func (s *ReviewService) Submit(
	ctx context.Context,
	caller domain.CallerIdentity,
	in domain.SubmitReviewInput,
) (*domain.SubmitReviewResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	b, err := s.bookingRepo.GetByID(ctx, in.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if caller.Role != domain.RoleCustomer || caller.ID != b.CustomerID {
		return nil, fmt.Errorf("%w: only the booking's customer may review it", domain.ErrReviewNotEligible)
	}
	if b.Status != domain.BookingStatusCompleted {
		return nil, fmt.Errorf("%w: booking is %s, not completed", domain.ErrReviewNotEligible, b.Status)
	}

	review := &domain.Review{
		ID:                  uuid.New().String(),
		BookingID:           b.ID,
		CustomerID:          b.CustomerID,
		ProfessionalID:      b.ProfessionalID,
		Rating:              in.Rating,
		PunctualityRating:   in.PunctualityRating,
		QualityRating:       in.QualityRating,
		CommunicationRating: in.CommunicationRating,
		ReviewText:          in.ReviewText,
		WouldRecommend:      in.WouldRecommend,
		IsPublic:            in.IsPublic,
		CreatedAt:           time.Now().UTC(),
	}
	if err = s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.logger.Info("review submitted",
		logger.String("review_id", review.ID),
		logger.String("booking_id", b.ID),
		logger.String("professional_id", b.ProfessionalID),
		logger.Int("rating", review.Rating),
	)

	res := &domain.SubmitReviewResult{Review: review}

	agg, err := s.ratingRepo.Recompute(ctx, b.ProfessionalID)
	if err != nil {
		s.logger.Error("failed to recompute professional rating",
			logger.String("professional_id", b.ProfessionalID),
			logger.String("error", err.Error()),
		)
		s.queueReconcile(context.WithoutCancel(ctx), b.ProfessionalID, err)
		res.Warning = staleRatingWarning
	} else {
		res.Rating = agg
	}

	s.notifier.NotifyReviewSubmitted(context.WithoutCancel(ctx), review, res.Rating)

	return res, nil
}

func (s *ReviewService) GetRating(ctx context.Context, professionalID string) (*domain.RatingAggregate, error) {
	if _, err := uuid.Parse(professionalID); err != nil {
		return nil, fmt.Errorf("%w: professional id must be a uuid", domain.ErrValidation)
	}
	return s.ratingRepo.Get(ctx, professionalID)
}

// ReconcileRatings recomputes the aggregates queued after failed recomputes.
// It returns how many were refreshed.
func (s *ReviewService) ReconcileRatings(ctx context.Context) (int, error) {
	queued, err := s.ratingRepo.ListQueued(ctx, s.reconcileBatch)
	if err != nil {
		return 0, fmt.Errorf("list queued ratings: %w", err)
	}

	done := 0
	for _, professionalID := range queued {
		if err = ctx.Err(); err != nil {
			return done, err
		}

		agg, err := s.ratingRepo.Recompute(ctx, professionalID)
		if err != nil {
			s.logger.Warn("rating reconcile failed",
				logger.String("professional_id", professionalID),
				logger.String("error", err.Error()),
			)
			s.queueReconcile(ctx, professionalID, err)
			continue
		}

		done++
		s.logger.Debug("rating reconciled",
			logger.String("professional_id", professionalID),
			logger.String("average", agg.Average.StringFixed(1)),
			logger.Int("count", agg.Count),
		)
	}

	return done, nil
}

func (s *ReviewService) queueReconcile(ctx context.Context, professionalID string, cause error) {
	if err := s.ratingRepo.Enqueue(ctx, professionalID, cause.Error()); err != nil {
		s.logger.Error("failed to queue rating reconcile",
			logger.String("professional_id", professionalID),
			logger.String("error", err.Error()),
		)
	}
}
