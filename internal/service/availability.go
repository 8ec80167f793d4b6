package service

import (
	"context"
	"fmt"

	"github.com/hsiereveld/careservices-monorepo-sub004/internal/domain"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/service/ports"
)

type AvailabilityService struct {
	bookingRepo ports.BookingRepo
	catalog     ports.CatalogRepo
}

func NewAvailabilityService(bookingRepo ports.BookingRepo, catalog ports.CatalogRepo) *AvailabilityService {
	return &AvailabilityService{
		bookingRepo: bookingRepo,
		catalog:     catalog,
	}
}

// Check reports whether the professional is free for the requested window.
func (s *AvailabilityService) Check(ctx context.Context, q domain.AvailabilityQuery) (*domain.Availability, error) {
	if q.ProfessionalID == "" {
		return nil, fmt.Errorf("%w: professional_id is required", domain.ErrValidation)
	}
	if err := domain.CheckID("professional_id", q.ProfessionalID); err != nil {
		return nil, err
	}
	if q.ExcludeBookingID != "" {
		if err := domain.CheckID("exclude_booking_id", q.ExcludeBookingID); err != nil {
			return nil, err
		}
	}
	start, err := domain.ParseSchedule(q.BookingDate, q.BookingTime)
	if err != nil {
		return nil, err
	}
	minutes, err := domain.HoursToMinutes(q.DurationHours)
	if err != nil {
		return nil, err
	}

	if _, err = s.catalog.GetProfessional(ctx, q.ProfessionalID); err != nil {
		return nil, fmt.Errorf("get professional: %w", err)
	}

	return s.check(ctx, q.ProfessionalID, domain.NewWindow(start, minutes), q.ExcludeBookingID)
}

func (s *AvailabilityService) check(
	ctx context.Context,
	professionalID string,
	window domain.Window,
	excludeID string,
) (*domain.Availability, error) {
	existing, err := s.bookingRepo.ListActiveOverlapping(ctx, professionalID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("list active bookings: %w", err)
	}

	conflicts := domain.FindConflicts(window, existing, excludeID)
	if conflicts == nil {
		conflicts = []domain.Conflict{}
	}

	return &domain.Availability{
		ProfessionalID: professionalID,
		Start:          window.Start,
		End:            window.End,
		Available:      len(conflicts) == 0,
		Conflicts:      conflicts,
	}, nil
}

// ensureFree fails with a SlotConflictError listing the blocking bookings.
func (s *AvailabilityService) ensureFree(
	ctx context.Context,
	professionalID string,
	window domain.Window,
	excludeID string,
) error {
	a, err := s.check(ctx, professionalID, window, excludeID)
	if err != nil {
		return err
	}
	if !a.Available {
		return &domain.SlotConflictError{Conflicts: a.Conflicts}
	}
	return nil
}
