package domain

import (
	"fmt"
	"math"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	// MaxDurationHours bounds a single visit.
	MaxDurationHours = 24
)

// Window is a half-open interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

func NewWindow(start time.Time, durationMinutes int) Window {
	return Window{Start: start, End: start.Add(time.Duration(durationMinutes) * time.Minute)}
}

// Overlaps reports whether two windows share any instant. Touching windows do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// ParseSchedule combines a YYYY-MM-DD date and HH:MM clock time into a UTC wall-clock instant.
func ParseSchedule(date, clock string) (time.Time, error) {
	if date == "" {
		return time.Time{}, fmt.Errorf("%w: booking_date is required", ErrValidation)
	}
	if clock == "" {
		return time.Time{}, fmt.Errorf("%w: booking_time is required", ErrValidation)
	}
	d, err := time.ParseInLocation(DateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: booking_date must be YYYY-MM-DD", ErrValidation)
	}
	c, err := time.ParseInLocation(ClockLayout, clock, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: booking_time must be HH:MM", ErrValidation)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, time.UTC), nil
}

// HoursToMinutes normalizes a duration given in hours to whole minutes.
func HoursToMinutes(hours float64) (int, error) {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0, fmt.Errorf("%w: duration_hours is not a number", ErrInvalidInput)
	}
	if hours > MaxDurationHours {
		return 0, fmt.Errorf("%w: duration must be at most %d hours", ErrInvalidInput, MaxDurationHours)
	}
	minutes := int(math.Round(hours * 60))
	if minutes <= 0 {
		return 0, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	return minutes, nil
}

// Conflict describes an active booking that blocks a requested window.
type Conflict struct {
	BookingID   string        `json:"booking_id"`
	Status      BookingStatus `json:"status"`
	BookingDate string        `json:"booking_date"`
	BookingTime string        `json:"booking_time"`
	EndsAt      time.Time     `json:"ends_at"`
}

func ConflictOf(b *Booking) Conflict {
	return Conflict{
		BookingID:   b.ID,
		Status:      b.Status,
		BookingDate: b.BookingDate(),
		BookingTime: b.BookingTime(),
		EndsAt:      b.Window().End,
	}
}

// FindConflicts returns the active bookings overlapping the requested window, skipping excludeID.
func FindConflicts(requested Window, existing []*Booking, excludeID string) []Conflict {
	var res []Conflict
	for _, b := range existing {
		if b.ID == excludeID || !b.Status.IsActive() {
			continue
		}
		if b.Window().Overlaps(requested) {
			res = append(res, ConflictOf(b))
		}
	}
	return res
}

type AvailabilityQuery struct {
	ProfessionalID   string
	BookingDate      string
	BookingTime      string
	DurationHours    float64
	ExcludeBookingID string
}

type Availability struct {
	ProfessionalID string     `json:"professional_id"`
	Start          time.Time  `json:"start"`
	End            time.Time  `json:"end"`
	Available      bool       `json:"available"`
	Conflicts      []Conflict `json:"conflicts"`
}
