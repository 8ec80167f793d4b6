package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusNoShow     BookingStatus = "no_show"
)

// ActiveStatuses occupy a professional's time slot.
var ActiveStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusInProgress,
}

func (s BookingStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s BookingStatus) IsActive() bool {
	for _, a := range ActiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}

func (s BookingStatus) IsTerminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

type RecurrencePattern string

const (
	RecurrenceWeekly   RecurrencePattern = "weekly"
	RecurrenceBiWeekly RecurrencePattern = "bi-weekly"
	RecurrenceMonthly  RecurrencePattern = "monthly"
)

func (p RecurrencePattern) Valid() bool {
	switch p {
	case RecurrenceWeekly, RecurrenceBiWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

type Booking struct {
	ID              string  `json:"id"`
	CustomerID      string  `json:"customer_id"`
	ProfessionalID  string  `json:"professional_id"`
	ServiceID       string  `json:"service_id"`
	ParentBookingID *string `json:"parent_booking_id,omitempty"`

	// StartsAt is the local wall-clock start; its location is always UTC.
	StartsAt        time.Time `json:"starts_at"`
	DurationMinutes int       `json:"duration_minutes"`

	BaseAmount       decimal.Decimal `json:"base_amount"`
	CallOutFee       decimal.Decimal `json:"call_out_fee"`
	EmergencyPremium decimal.Decimal `json:"emergency_premium"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	FinalAmount      decimal.Decimal `json:"final_amount"`
	EmergencyBooking bool            `json:"emergency_booking"`
	PaymentRequired  bool            `json:"payment_required"`

	ServiceAddress        string `json:"service_address"`
	City                  string `json:"city"`
	PostalCode            string `json:"postal_code"`
	SpecialInstructions   string `json:"special_instructions"`
	Notes                 string `json:"notes"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`

	Status             BookingStatus   `json:"status"`
	CancellationReason string          `json:"cancellation_reason"`
	CancellationFee    decimal.Decimal `json:"cancellation_fee"`
	CancelledBy        string          `json:"cancelled_by"`

	IsRecurring       bool              `json:"is_recurring"`
	RecurrencePattern RecurrencePattern `json:"recurrence_pattern,omitempty"`
	RecurrenceEndDate *time.Time        `json:"recurrence_end_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingDate returns the calendar day in YYYY-MM-DD form.
func (b *Booking) BookingDate() string {
	return b.StartsAt.Format(DateLayout)
}

// BookingTime returns the start time in HH:MM form.
func (b *Booking) BookingTime() string {
	return b.StartsAt.Format(ClockLayout)
}

func (b *Booking) Window() Window {
	return NewWindow(b.StartsAt, b.DurationMinutes)
}

// PartyOf reports which side of the booking the caller is on.
func (b *Booking) PartyOf(caller CallerIdentity) Party {
	switch {
	case caller.Role == RoleCustomer && caller.ID == b.CustomerID:
		return PartyCustomer
	case caller.Role == RoleProfessional && caller.ID == b.ProfessionalID:
		return PartyProfessional
	case caller.Role == RoleAdmin:
		return PartyAdmin
	}
	return PartyNone
}

type BookingDetails struct {
	Booking      Booking       `json:"booking"`
	Service      *Service      `json:"service,omitempty"`
	Professional *Professional `json:"professional,omitempty"`
	Customer     *Customer     `json:"customer,omitempty"`
}

type CreateBookingInput struct {
	CustomerID      string
	ProfessionalID  string
	ServiceID       string
	ParentBookingID *string

	BookingDate   string
	BookingTime   string
	DurationHours *float64

	EmergencyBooking bool
	DiscountAmount   decimal.Decimal
	DiscountPercent  decimal.Decimal

	ServiceAddress        string
	City                  string
	PostalCode            string
	SpecialInstructions   string
	Notes                 string
	EmergencyContactName  string
	EmergencyContactPhone string

	IsRecurring       bool
	RecurrencePattern RecurrencePattern
	RecurrenceEndDate string
}

// BookingPatch holds the fields a party may change. Nil means unchanged.
type BookingPatch struct {
	BookingDate   *string
	BookingTime   *string
	DurationHours *float64

	EmergencyBooking *bool

	ServiceAddress        *string
	City                  *string
	PostalCode            *string
	SpecialInstructions   *string
	Notes                 *string
	EmergencyContactName  *string
	EmergencyContactPhone *string

	// Status is rejected; status changes go through UpdateStatus.
	Status *string
}

func (p BookingPatch) ChangesSchedule() bool {
	return p.BookingDate != nil || p.BookingTime != nil || p.DurationHours != nil
}

type CreateBookingResult struct {
	Booking *Booking
	Message string
}

type BookingFilter struct {
	Status         BookingStatus
	ProfessionalID string
	CustomerID     string
	Page           int
	Limit          int
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type BookingList struct {
	Items      []*Booking `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// StatusChange is an optimistic status update: it applies only while the booking is still in From.
type StatusChange struct {
	BookingID       string
	From            BookingStatus
	To              BookingStatus
	Reason          string
	CancellationFee decimal.Decimal
	ChangedBy       string
	At              time.Time
}
