package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID                  string    `json:"id"`
	BookingID           string    `json:"booking_id"`
	CustomerID          string    `json:"customer_id"`
	ProfessionalID      string    `json:"professional_id"`
	Rating              int       `json:"rating"`
	PunctualityRating   *int      `json:"punctuality_rating,omitempty"`
	QualityRating       *int      `json:"quality_rating,omitempty"`
	CommunicationRating *int      `json:"communication_rating,omitempty"`
	ReviewText          string    `json:"review_text"`
	WouldRecommend      bool      `json:"would_recommend"`
	IsPublic            bool      `json:"is_public"`
	CreatedAt           time.Time `json:"created_at"`
}

type SubmitReviewInput struct {
	BookingID           string
	Rating              int
	PunctualityRating   *int
	QualityRating       *int
	CommunicationRating *int
	ReviewText          string
	WouldRecommend      bool
	IsPublic            bool
}

func (in SubmitReviewInput) Validate() error {
	if in.BookingID == "" {
		return fmt.Errorf("%w: booking_id is required", ErrValidation)
	}
	if err := CheckID("booking_id", in.BookingID); err != nil {
		return err
	}
	if err := checkRating("rating", &in.Rating); err != nil {
		return err
	}
	if err := checkRating("punctuality_rating", in.PunctualityRating); err != nil {
		return err
	}
	if err := checkRating("quality_rating", in.QualityRating); err != nil {
		return err
	}
	return checkRating("communication_rating", in.CommunicationRating)
}

func checkRating(field string, v *int) error {
	if v == nil {
		return nil
	}
	if *v < MinRating || *v > MaxRating {
		return fmt.Errorf("%w: %s must be between %d and %d", ErrValidation, field, MinRating, MaxRating)
	}
	return nil
}

// RatingAggregate is the derived rating of a professional over all of their reviews.
type RatingAggregate struct {
	ProfessionalID string          `json:"professional_id"`
	Average        decimal.Decimal `json:"average"`
	Count          int             `json:"count"`
}

// NewRatingAggregate computes the mean from a full sum and count, rounded to one decimal place.
func NewRatingAggregate(professionalID string, sum int64, count int) RatingAggregate {
	agg := RatingAggregate{ProfessionalID: professionalID, Average: decimal.Zero, Count: count}
	if count > 0 {
		agg.Average = decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(count))).Round(1)
	}
	return agg
}

type SubmitReviewResult struct {
	Review *Review
	Rating *RatingAggregate
	// Warning is set when the review was stored but the rating could not be refreshed.
	Warning string
}
