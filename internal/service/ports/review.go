package ports

import (
	"context"

	"github.com/hsiereveld/careservices-monorepo-sub004/internal/domain"
)

type ReviewRepo interface {
	Create(ctx context.Context, r *domain.Review) error
}

type RatingRepo interface {
	// Recompute rebuilds the professional's aggregate from all of their reviews.
	Recompute(ctx context.Context, professionalID string) (*domain.RatingAggregate, error)
	Get(ctx context.Context, professionalID string) (*domain.RatingAggregate, error)
	Enqueue(ctx context.Context, professionalID, reason string) error
	ListQueued(ctx context.Context, limit int) ([]string, error)
}
