package dto

import (
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	CustomerID      string   `json:"customer_id"`
	ProfessionalID  string   `json:"professional_id" binding:"required"`
	ServiceID       string   `json:"service_id" binding:"required"`
	ParentBookingID *string  `json:"parent_booking_id"`
	BookingDate     string   `json:"booking_date" binding:"required"`
	BookingTime     string   `json:"booking_time" binding:"required"`
	DurationHours   *float64 `json:"duration_hours"`

	EmergencyBooking bool            `json:"emergency_booking"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	DiscountPercent  decimal.Decimal `json:"discount_percentage"`

	ServiceAddress        string `json:"service_address"`
	City                  string `json:"city"`
	PostalCode            string `json:"postal_code"`
	SpecialInstructions   string `json:"special_instructions"`
	Notes                 string `json:"notes"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`

	IsRecurring       bool   `json:"is_recurring"`
	RecurrencePattern string `json:"recurrence_pattern"`
	RecurrenceEndDate string `json:"recurrence_end_date"`
}

func (r CreateBookingRequest) ToInput() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		CustomerID:            r.CustomerID,
		ProfessionalID:        r.ProfessionalID,
		ServiceID:             r.ServiceID,
		ParentBookingID:       r.ParentBookingID,
		BookingDate:           r.BookingDate,
		BookingTime:           r.BookingTime,
		DurationHours:         r.DurationHours,
		EmergencyBooking:      r.EmergencyBooking,
		DiscountAmount:        r.DiscountAmount,
		DiscountPercent:       r.DiscountPercent,
		ServiceAddress:        r.ServiceAddress,
		City:                  r.City,
		PostalCode:            r.PostalCode,
		SpecialInstructions:   r.SpecialInstructions,
		Notes:                 r.Notes,
		EmergencyContactName:  r.EmergencyContactName,
		EmergencyContactPhone: r.EmergencyContactPhone,
		IsRecurring:           r.IsRecurring,
		RecurrencePattern:     domain.RecurrencePattern(r.RecurrencePattern),
		RecurrenceEndDate:     r.RecurrenceEndDate,
	}
}

// UpdateBookingRequest is a partial update; absent fields stay unchanged.
type UpdateBookingRequest struct {
	BookingDate      *string  `json:"booking_date"`
	BookingTime      *string  `json:"booking_time"`
	DurationHours    *float64 `json:"duration_hours"`
	EmergencyBooking *bool    `json:"emergency_booking"`

	ServiceAddress        *string `json:"service_address"`
	City                  *string `json:"city"`
	PostalCode            *string `json:"postal_code"`
	SpecialInstructions   *string `json:"special_instructions"`
	Notes                 *string `json:"notes"`
	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`

	Status *string `json:"status"`
}

func (r UpdateBookingRequest) ToPatch() domain.BookingPatch {
	return domain.BookingPatch{
		BookingDate:           r.BookingDate,
		BookingTime:           r.BookingTime,
		DurationHours:         r.DurationHours,
		EmergencyBooking:      r.EmergencyBooking,
		ServiceAddress:        r.ServiceAddress,
		City:                  r.City,
		PostalCode:            r.PostalCode,
		SpecialInstructions:   r.SpecialInstructions,
		Notes:                 r.Notes,
		EmergencyContactName:  r.EmergencyContactName,
		EmergencyContactPhone: r.EmergencyContactPhone,
		Status:                r.Status,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"cancellation_reason"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type SubmitReviewRequest struct {
	BookingID           string `json:"booking_id" binding:"required"`
	Rating              int    `json:"rating" binding:"required"`
	PunctualityRating   *int   `json:"punctuality_rating"`
	QualityRating       *int   `json:"quality_rating"`
	CommunicationRating *int   `json:"communication_rating"`
	ReviewText          string `json:"review_text"`
	WouldRecommend      bool   `json:"would_recommend"`
	IsPublic            *bool  `json:"is_public"`
}

func (r SubmitReviewRequest) ToInput() domain.SubmitReviewInput {
	public := true
	if r.IsPublic != nil {
		public = *r.IsPublic
	}
	return domain.SubmitReviewInput{
		BookingID:           r.BookingID,
		Rating:              r.Rating,
		PunctualityRating:   r.PunctualityRating,
		QualityRating:       r.QualityRating,
		CommunicationRating: r.CommunicationRating,
		ReviewText:          r.ReviewText,
		WouldRecommend:      r.WouldRecommend,
		IsPublic:            public,
	}
}
