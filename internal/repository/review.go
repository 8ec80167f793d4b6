package repository

import (
	"context"
	"fmt"

	"github.com/hsiereveld/careservices-monorepo-sub004/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReviewRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReviewRepo(db *dbpg.DB) *ReviewRepository {
	return &ReviewRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Create inserts the review. The unique booking_id index rejects a second
// review of the same booking.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	query := `INSERT INTO reviews (
				id, booking_id, customer_id, professional_id,
				rating, punctuality_rating, quality_rating, communication_rating,
				review_text, would_recommend, is_public, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Master.ExecContext(
		ctx, query,
		rv.ID, rv.BookingID, rv.CustomerID, rv.ProfessionalID,
		rv.Rating, rv.PunctualityRating, rv.QualityRating, rv.CommunicationRating,
		rv.ReviewText, rv.WouldRecommend, rv.IsPublic, rv.CreatedAt,
	)
	if err != nil {
		switch pgCode(err) {
		case pgUniqueViolation:
			return domain.ErrDuplicateReview
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: booking no longer exists", domain.ErrBookingNotFound)
		}
		return storeErr("insert review", err)
	}
	return nil
}
