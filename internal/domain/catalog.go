package domain

import "github.com/shopspring/decimal"

// Service is a catalog entry. The engine only reads it.
type Service struct {
	ID             string              `json:"id"`
	ProfessionalID string              `json:"professional_id"`
	Name           string              `json:"name"`
	Price          decimal.NullDecimal `json:"price"`
	DurationHours  decimal.Decimal     `json:"duration_hours"`
	Active         bool                `json:"active"`
}

type Professional struct {
	ID            string          `json:"id"`
	DisplayName   string          `json:"display_name"`
	AverageRating decimal.Decimal `json:"average_rating"`
	ReviewCount   int             `json:"review_count"`
}

type Customer struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}
