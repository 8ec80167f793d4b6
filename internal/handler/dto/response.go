package dto

import (
	"time"

	"github.com/hsiereveld/careservices-monorepo-sub004/internal/domain"
)

type BookingResponse struct {
	ID              string  `json:"id"`
	CustomerID      string  `json:"customer_id"`
	ProfessionalID  string  `json:"professional_id"`
	ServiceID       string  `json:"service_id"`
	ParentBookingID *string `json:"parent_booking_id,omitempty"`

	BookingDate   string  `json:"booking_date"`
	BookingTime   string  `json:"booking_time"`
	DurationHours float64 `json:"duration_hours"`

	BaseAmount       string `json:"base_amount"`
	CallOutFee       string `json:"call_out_fee"`
	EmergencyPremium string `json:"emergency_premium"`
	DiscountAmount   string `json:"discount_amount"`
	FinalAmount      string `json:"final_amount"`
	EmergencyBooking bool   `json:"emergency_booking"`
	PaymentRequired  bool   `json:"payment_required"`

	ServiceAddress        string `json:"service_address"`
	City                  string `json:"city"`
	PostalCode            string `json:"postal_code"`
	SpecialInstructions   string `json:"special_instructions"`
	Notes                 string `json:"notes"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`

	Status             string `json:"status"`
	CancellationReason string `json:"cancellation_reason,omitempty"`
	CancellationFee    string `json:"cancellation_fee,omitempty"`
	CancelledBy        string `json:"cancelled_by,omitempty"`

	IsRecurring       bool   `json:"is_recurring"`
	RecurrencePattern string `json:"recurrence_pattern,omitempty"`
	RecurrenceEndDate string `json:"recurrence_end_date,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ServiceSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price *string `json:"price"`
}

type ProfessionalSummary struct {
	ID            string `json:"id"`
	DisplayName   string `json:"display_name"`
	AverageRating string `json:"average_rating"`
	ReviewCount   int    `json:"review_count"`
}

type CustomerSummary struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type BookingDetailsResponse struct {
	Booking      BookingResponse      `json:"booking"`
	Service      *ServiceSummary      `json:"service,omitempty"`
	Professional *ProfessionalSummary `json:"professional,omitempty"`
	Customer     *CustomerSummary     `json:"customer,omitempty"`
}

type CreateBookingResponse struct {
	Booking BookingResponse `json:"booking"`
	Message string          `json:"message"`
}

type CancelResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

type BookingListResponse struct {
	Items      []BookingResponse `json:"items"`
	Pagination domain.Pagination `json:"pagination"`
}

type AvailabilityResponse struct {
	ProfessionalID string            `json:"professional_id"`
	BookingDate    string            `json:"booking_date"`
	BookingTime    string            `json:"booking_time"`
	EndsAt         string            `json:"ends_at"`
	Available      bool              `json:"available"`
	Conflicts      []domain.Conflict `json:"conflicts"`
}

type RatingResponse struct {
	ProfessionalID string `json:"professional_id"`
	AverageRating  string `json:"average_rating"`
	ReviewCount    int    `json:"review_count"`
}

type ReviewResponse struct {
	ID                  string `json:"id"`
	BookingID           string `json:"booking_id"`
	CustomerID          string `json:"customer_id"`
	ProfessionalID      string `json:"professional_id"`
	Rating              int    `json:"rating"`
	PunctualityRating   *int   `json:"punctuality_rating,omitempty"`
	QualityRating       *int   `json:"quality_rating,omitempty"`
	CommunicationRating *int   `json:"communication_rating,omitempty"`
	ReviewText          string `json:"review_text"`
	WouldRecommend      bool   `json:"would_recommend"`
	IsPublic            bool   `json:"is_public"`
	CreatedAt           string `json:"created_at"`
}

type SubmitReviewResponse struct {
	Review  ReviewResponse  `json:"review"`
	Rating  *RatingResponse `json:"rating,omitempty"`
	Warning string          `json:"warning,omitempty"`
}

type ErrorResponse struct {
	Error     string            `json:"error"`
	Kind      domain.ErrorKind  `json:"kind"`
	Conflicts []domain.Conflict `json:"conflicts,omitempty"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:                    b.ID,
		CustomerID:            b.CustomerID,
		ProfessionalID:        b.ProfessionalID,
		ServiceID:             b.ServiceID,
		ParentBookingID:       b.ParentBookingID,
		BookingDate:           b.BookingDate(),
		BookingTime:           b.BookingTime(),
		DurationHours:         domain.MinutesToHours(b.DurationMinutes).InexactFloat64(),
		BaseAmount:            b.BaseAmount.StringFixed(2),
		CallOutFee:            b.CallOutFee.StringFixed(2),
		EmergencyPremium:      b.EmergencyPremium.StringFixed(2),
		DiscountAmount:        b.DiscountAmount.StringFixed(2),
		FinalAmount:           b.FinalAmount.StringFixed(2),
		EmergencyBooking:      b.EmergencyBooking,
		PaymentRequired:       b.PaymentRequired,
		ServiceAddress:        b.ServiceAddress,
		City:                  b.City,
		PostalCode:            b.PostalCode,
		SpecialInstructions:   b.SpecialInstructions,
		Notes:                 b.Notes,
		EmergencyContactName:  b.EmergencyContactName,
		EmergencyContactPhone: b.EmergencyContactPhone,
		Status:                string(b.Status),
		CancellationReason:    b.CancellationReason,
		CancelledBy:           b.CancelledBy,
		IsRecurring:           b.IsRecurring,
		RecurrencePattern:     string(b.RecurrencePattern),
		CreatedAt:             b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             b.UpdatedAt.Format(time.RFC3339),
	}
	if b.Status == domain.BookingStatusCancelled {
		resp.CancellationFee = b.CancellationFee.StringFixed(2)
	}
	if b.RecurrenceEndDate != nil {
		resp.RecurrenceEndDate = b.RecurrenceEndDate.Format(domain.DateLayout)
	}
	return resp
}

func ToBookingResponses(items []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(items))
	for _, b := range items {
		resp = append(resp, ToBookingResponse(b))
	}
	return resp
}

func ToBookingDetailsResponse(d *domain.BookingDetails) BookingDetailsResponse {
	resp := BookingDetailsResponse{Booking: ToBookingResponse(&d.Booking)}
	if s := d.Service; s != nil {
		resp.Service = &ServiceSummary{ID: s.ID, Name: s.Name}
		if s.Price.Valid {
			price := s.Price.Decimal.StringFixed(2)
			resp.Service.Price = &price
		}
	}
	if p := d.Professional; p != nil {
		resp.Professional = &ProfessionalSummary{
			ID:            p.ID,
			DisplayName:   p.DisplayName,
			AverageRating: p.AverageRating.StringFixed(1),
			ReviewCount:   p.ReviewCount,
		}
	}
	if c := d.Customer; c != nil {
		resp.Customer = &CustomerSummary{ID: c.ID, DisplayName: c.DisplayName}
	}
	return resp
}

func ToAvailabilityResponse(a *domain.Availability) AvailabilityResponse {
	conflicts := a.Conflicts
	if conflicts == nil {
		conflicts = []domain.Conflict{}
	}
	return AvailabilityResponse{
		ProfessionalID: a.ProfessionalID,
		BookingDate:    a.Start.Format(domain.DateLayout),
		BookingTime:    a.Start.Format(domain.ClockLayout),
		EndsAt:         a.End.Format(time.RFC3339),
		Available:      a.Available,
		Conflicts:      conflicts,
	}
}

func ToRatingResponse(r *domain.RatingAggregate) *RatingResponse {
	if r == nil {
		return nil
	}
	return &RatingResponse{
		ProfessionalID: r.ProfessionalID,
		AverageRating:  r.Average.StringFixed(1),
		ReviewCount:    r.Count,
	}
}

func ToReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:                  r.ID,
		BookingID:           r.BookingID,
		CustomerID:          r.CustomerID,
		ProfessionalID:      r.ProfessionalID,
		Rating:              r.Rating,
		PunctualityRating:   r.PunctualityRating,
		QualityRating:       r.QualityRating,
		CommunicationRating: r.CommunicationRating,
		ReviewText:          r.ReviewText,
		WouldRecommend:      r.WouldRecommend,
		IsPublic:            r.IsPublic,
		CreatedAt:           r.CreatedAt.Format(time.RFC3339),
	}
}
