package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type ratingReconciler interface {
	ReconcileRatings(ctx context.Context) (int, error)
}

// Scheduler periodically refreshes professional ratings whose recompute
// failed when a review was submitted.
type Scheduler struct {
	reviewService ratingReconciler
	interval      time.Duration
	logger        logger.Logger
}

func New(
	reviewService ratingReconciler,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reviewService: reviewService,
		interval:      interval,
		logger:        logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	n, err := s.reviewService.ReconcileRatings(ctx)
	if err != nil {
		s.logger.Error("failed to reconcile ratings",
			logger.String("error", err.Error()),
		)
		return
	}

	if n > 0 {
		s.logger.Info("ratings reconciled", logger.Int("count", n))
	}
}
