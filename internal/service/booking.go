package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/domain"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/service/ports"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
	maxReasonLength  = 500
)

// Policy holds the pricing and cancellation knobs taken from configuration.
type Policy struct {
	CallOutFee           decimal.Decimal
	EmergencyPremiumRate decimal.Decimal
	LateCancelWindow     time.Duration
	LateCancelFeeRate    decimal.Decimal
}

type BookingService struct {
	bookingRepo  ports.BookingRepo
	catalog      ports.CatalogRepo
	availability *AvailabilityService
	notifier     ports.BookingNotifier
	policy       Policy
	logger       logger.Logger
	now          func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	catalog ports.CatalogRepo,
	availability *AvailabilityService,
	notifier ports.BookingNotifier,
	policy Policy,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		availability: availability,
		notifier:     notifier,
		policy:       policy,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *BookingService) Create(
	ctx context.Context,
	caller domain.CallerIdentity,
	in domain.CreateBookingInput,
) (*domain.CreateBookingResult, error) {
	if in.CustomerID == "" && caller.Role == domain.RoleCustomer {
		in.CustomerID = caller.ID
	}
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	if err := authorizeCreate(caller, in); err != nil {
		return nil, err
	}

	start, err := domain.ParseSchedule(in.BookingDate, in.BookingTime)
	if err != nil {
		return nil, err
	}

	svc, err := s.catalog.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	if !svc.Active {
		return nil, fmt.Errorf("%w: service is not bookable", domain.ErrValidation)
	}
	if svc.ProfessionalID != in.ProfessionalID {
		return nil, fmt.Errorf("%w: service is not offered by this professional", domain.ErrValidation)
	}
	if _, err = s.catalog.GetProfessional(ctx, in.ProfessionalID); err != nil {
		return nil, fmt.Errorf("get professional: %w", err)
	}
	if _, err = s.catalog.GetCustomer(ctx, in.CustomerID); err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	minutes, err := bookingMinutes(in.DurationHours, svc)
	if err != nil {
		return nil, err
	}

	recurrenceEnd, err := s.checkRecurrence(ctx, in, start)
	if err != nil {
		return nil, err
	}

	window := domain.NewWindow(start, minutes)
	if err = s.availability.ensureFree(ctx, in.ProfessionalID, window, ""); err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}

	price, err := s.price(ctx, svc, minutes, in.EmergencyBooking, in.DiscountAmount, in.DiscountPercent)
	if err != nil {
		return nil, err
	}

	now := s.now()
	b := &domain.Booking{
		ID:                    uuid.New().String(),
		CustomerID:            in.CustomerID,
		ProfessionalID:        in.ProfessionalID,
		ServiceID:             in.ServiceID,
		ParentBookingID:       in.ParentBookingID,
		StartsAt:              start,
		DurationMinutes:       minutes,
		EmergencyBooking:      in.EmergencyBooking,
		ServiceAddress:        in.ServiceAddress,
		City:                  in.City,
		PostalCode:            in.PostalCode,
		SpecialInstructions:   in.SpecialInstructions,
		Notes:                 in.Notes,
		EmergencyContactName:  in.EmergencyContactName,
		EmergencyContactPhone: in.EmergencyContactPhone,
		Status:                domain.BookingStatusPending,
		CancellationFee:       decimal.Zero,
		IsRecurring:           in.IsRecurring,
		RecurrencePattern:     in.RecurrencePattern,
		RecurrenceEndDate:     recurrenceEnd,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	applyPrice(b, price)

	if err = s.bookingRepo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", b.ID),
		logger.String("professional_id", b.ProfessionalID),
		logger.String("customer_id", b.CustomerID),
		logger.String("starts_at", b.StartsAt.Format(time.RFC3339)),
		logger.String("final_amount", b.FinalAmount.StringFixed(2)),
	)

	s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), b)

	msg := "Booking created successfully"
	if b.PaymentRequired {
		msg = "Booking created successfully, payment required"
	}
	return &domain.CreateBookingResult{Booking: b, Message: msg}, nil
}

func (s *BookingService) Get(ctx context.Context, caller domain.CallerIdentity, id string) (*domain.BookingDetails, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if err = domain.Authorize(caller, domain.ActionView, b); err != nil {
		return nil, err
	}

	details := &domain.BookingDetails{Booking: *b}

	// Projections may have been removed from the catalog since booking.
	if details.Service, err = s.catalog.GetService(ctx, b.ServiceID); err != nil && !errors.Is(err, domain.ErrServiceNotFound) {
		return nil, fmt.Errorf("get service: %w", err)
	}
	if details.Professional, err = s.catalog.GetProfessional(ctx, b.ProfessionalID); err != nil && !errors.Is(err, domain.ErrProfessionalNotFound) {
		return nil, fmt.Errorf("get professional: %w", err)
	}
	if details.Customer, err = s.catalog.GetCustomer(ctx, b.CustomerID); err != nil && !errors.Is(err, domain.ErrCustomerNotFound) {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	return details, nil
}

func (s *BookingService) Update(
	ctx context.Context,
	caller domain.CallerIdentity,
	id string,
	patch domain.BookingPatch,
) (*domain.Booking, error) {
	if patch.Status != nil {
		return nil, fmt.Errorf("%w: status cannot be changed here, use the status endpoint", domain.ErrValidation)
	}

	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if err = domain.Authorize(caller, domain.ActionUpdate, b); err != nil {
		return nil, err
	}
	if b.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: booking is %s and can no longer be changed", domain.ErrInvalidTransition, b.Status)
	}

	reschedule := patch.ChangesSchedule()
	reprice := patch.DurationHours != nil ||
		(patch.EmergencyBooking != nil && *patch.EmergencyBooking != b.EmergencyBooking)

	if reschedule {
		if !domain.IsCancellable(b.Status) {
			return nil, fmt.Errorf("%w: a booking that is %s cannot be rescheduled", domain.ErrInvalidTransition, b.Status)
		}

		date, clock := b.BookingDate(), b.BookingTime()
		if patch.BookingDate != nil {
			date = *patch.BookingDate
		}
		if patch.BookingTime != nil {
			clock = *patch.BookingTime
		}
		if b.StartsAt, err = domain.ParseSchedule(date, clock); err != nil {
			return nil, err
		}
		if patch.DurationHours != nil {
			if b.DurationMinutes, err = domain.HoursToMinutes(*patch.DurationHours); err != nil {
				return nil, err
			}
		}

		if err = s.availability.ensureFree(ctx, b.ProfessionalID, b.Window(), b.ID); err != nil {
			return nil, fmt.Errorf("check availability: %w", err)
		}
	}

	if patch.EmergencyBooking != nil {
		b.EmergencyBooking = *patch.EmergencyBooking
	}
	applyPatch(b, patch)

	if reprice {
		svc, err := s.catalog.GetService(ctx, b.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("get service: %w", err)
		}
		price, err := s.price(ctx, svc, b.DurationMinutes, b.EmergencyBooking, b.DiscountAmount, decimal.Zero)
		if err != nil {
			return nil, err
		}
		applyPrice(b, price)
	}

	b.UpdatedAt = s.now()
	if err = s.bookingRepo.Update(ctx, b, reschedule); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.logger.Info("booking updated",
		logger.String("booking_id", b.ID),
		logger.String("caller_id", caller.ID),
		logger.Any("rescheduled", reschedule),
	)

	s.notifier.NotifyBookingUpdated(context.WithoutCancel(ctx), b)

	return b, nil
}

// Cancel moves a pending or confirmed booking to cancelled. The row is kept.
func (s *BookingService) Cancel(
	ctx context.Context,
	caller domain.CallerIdentity,
	id string,
	reason string,
) (*domain.Booking, error) {
	if utf8.RuneCountInString(reason) > maxReasonLength {
		return nil, fmt.Errorf("%w: reason must be at most %d characters", domain.ErrValidation, maxReasonLength)
	}

	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if err = domain.Authorize(caller, domain.ActionCancel, b); err != nil {
		return nil, err
	}
	if !domain.IsCancellable(b.Status) {
		return nil, &domain.TransitionError{From: b.Status, To: domain.BookingStatusCancelled}
	}

	return s.transition(ctx, caller, b, domain.BookingStatusCancelled, reason)
}

// UpdateStatus drives the booking lifecycle through the transition guard.
func (s *BookingService) UpdateStatus(
	ctx context.Context,
	caller domain.CallerIdentity,
	id string,
	to domain.BookingStatus,
	reason string,
) (*domain.Booking, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", domain.ErrValidation, to)
	}
	if to == domain.BookingStatusCancelled && utf8.RuneCountInString(reason) > maxReasonLength {
		return nil, fmt.Errorf("%w: reason must be at most %d characters", domain.ErrValidation, maxReasonLength)
	}

	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if err = domain.AuthorizeTransition(caller, b, to); err != nil {
		return nil, err
	}

	return s.transition(ctx, caller, b, to, reason)
}

func (s *BookingService) transition(
	ctx context.Context,
	caller domain.CallerIdentity,
	b *domain.Booking,
	to domain.BookingStatus,
	reason string,
) (*domain.Booking, error) {
	now := s.now()
	change := domain.StatusChange{
		BookingID:       b.ID,
		From:            b.Status,
		To:              to,
		CancellationFee: decimal.Zero,
		ChangedBy:       caller.ID,
		At:              now,
	}
	if to == domain.BookingStatusCancelled {
		change.Reason = reason
		change.CancellationFee = domain.LateCancellationFee(b, now, s.policy.LateCancelWindow, s.policy.LateCancelFeeRate)
	}

	updated, err := s.bookingRepo.Transition(ctx, change)
	if err != nil {
		return nil, fmt.Errorf("change status: %w", err)
	}

	s.logger.Info("booking status changed",
		logger.String("booking_id", b.ID),
		logger.String("from", string(change.From)),
		logger.String("to", string(to)),
		logger.String("caller_id", caller.ID),
		logger.String("caller_role", string(caller.Role)),
	)

	s.notifier.NotifyStatusChanged(context.WithoutCancel(ctx), updated, change.From)

	return updated, nil
}

func (s *BookingService) List(
	ctx context.Context,
	caller domain.CallerIdentity,
	filter domain.BookingFilter,
) (*domain.BookingList, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", domain.ErrValidation, filter.Status)
	}
	if filter.ProfessionalID != "" {
		if err := domain.CheckID("professional_id", filter.ProfessionalID); err != nil {
			return nil, err
		}
	}
	if filter.CustomerID != "" {
		if err := domain.CheckID("customer_id", filter.CustomerID); err != nil {
			return nil, err
		}
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	switch caller.Role {
	case domain.RoleCustomer:
		if filter.CustomerID != "" && filter.CustomerID != caller.ID {
			return nil, fmt.Errorf("%w: customers may only list their own bookings", domain.ErrForbidden)
		}
		filter.CustomerID = caller.ID
	case domain.RoleProfessional:
		if filter.ProfessionalID != "" && filter.ProfessionalID != caller.ID {
			return nil, fmt.Errorf("%w: professionals may only list their own bookings", domain.ErrForbidden)
		}
		filter.ProfessionalID = caller.ID
	case domain.RoleAdmin:
	default:
		return nil, fmt.Errorf("%w: unknown role", domain.ErrForbidden)
	}

	items, total, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if items == nil {
		items = []*domain.Booking{}
	}

	return &domain.BookingList{
		Items: items,
		Pagination: domain.Pagination{
			Page:       filter.Page,
			Limit:      filter.Limit,
			Total:      total,
			TotalPages: (total + filter.Limit - 1) / filter.Limit,
		},
	}, nil
}

func (s *BookingService) price(
	ctx context.Context,
	svc *domain.Service,
	minutes int,
	emergency bool,
	discountAmount, discountPercent decimal.Decimal,
) (domain.PriceBreakdown, error) {
	hours := domain.MinutesToHours(minutes)

	premium := decimal.Zero
	if emergency && svc.Price.Valid {
		premium = svc.Price.Decimal.Mul(hours).Mul(s.policy.EmergencyPremiumRate).Round(2)
	}

	price, err := domain.CalculatePrice(domain.PriceInput{
		BaseRate:         svc.Price,
		DurationHours:    hours,
		CallOutFee:       s.policy.CallOutFee,
		EmergencyPremium: premium,
		DiscountAmount:   discountAmount,
		DiscountPercent:  discountPercent,
	})
	if err != nil {
		return domain.PriceBreakdown{}, fmt.Errorf("calculate price: %w", err)
	}

	if price.Clamped {
		s.logger.LogAttrs(ctx, logger.WarnLevel, "negative booking total clamped to zero",
			logger.String("service_id", svc.ID),
			logger.String("base_amount", price.BaseAmount.String()),
			logger.String("discount_amount", price.DiscountAmount.String()),
		)
	}

	return price, nil
}

func (s *BookingService) checkRecurrence(
	ctx context.Context,
	in domain.CreateBookingInput,
	start time.Time,
) (*time.Time, error) {
	if in.ParentBookingID != nil {
		parent, err := s.bookingRepo.GetByID(ctx, *in.ParentBookingID)
		if err != nil {
			return nil, fmt.Errorf("get parent booking: %w", err)
		}
		if parent.CustomerID != in.CustomerID || parent.ProfessionalID != in.ProfessionalID {
			return nil, fmt.Errorf("%w: parent booking belongs to a different customer or professional", domain.ErrValidation)
		}
	}

	if !in.IsRecurring {
		if in.RecurrencePattern != "" || in.RecurrenceEndDate != "" {
			return nil, fmt.Errorf("%w: recurrence fields require is_recurring", domain.ErrValidation)
		}
		return nil, nil
	}

	if !in.RecurrencePattern.Valid() {
		return nil, fmt.Errorf("%w: recurrence_pattern must be weekly, bi-weekly or monthly", domain.ErrValidation)
	}
	if in.RecurrenceEndDate == "" {
		return nil, nil
	}

	end, err := time.ParseInLocation(domain.DateLayout, in.RecurrenceEndDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: recurrence_end_date must be YYYY-MM-DD", domain.ErrValidation)
	}
	if end.Before(start.Truncate(24 * time.Hour)) {
		return nil, fmt.Errorf("%w: recurrence_end_date is before booking_date", domain.ErrValidation)
	}
	return &end, nil
}

func validateCreate(in domain.CreateBookingInput) error {
	required := []struct {
		field, value string
	}{
		{"customer_id", in.CustomerID},
		{"professional_id", in.ProfessionalID},
		{"service_id", in.ServiceID},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrValidation, r.field)
		}
		if _, err := uuid.Parse(r.value); err != nil {
			return fmt.Errorf("%w: %s must be a uuid", domain.ErrValidation, r.field)
		}
	}
	if in.ParentBookingID != nil {
		if _, err := uuid.Parse(*in.ParentBookingID); err != nil {
			return fmt.Errorf("%w: parent_booking_id must be a uuid", domain.ErrValidation)
		}
	}
	return nil
}

func authorizeCreate(caller domain.CallerIdentity, in domain.CreateBookingInput) error {
	switch caller.Role {
	case domain.RoleCustomer:
		if caller.ID != in.CustomerID {
			return fmt.Errorf("%w: customers may only book for themselves", domain.ErrForbidden)
		}
		if !in.DiscountAmount.IsZero() || !in.DiscountPercent.IsZero() {
			return fmt.Errorf("%w: customers may not apply discounts", domain.ErrForbidden)
		}
	case domain.RoleProfessional:
		if caller.ID != in.ProfessionalID {
			return fmt.Errorf("%w: professionals may only create their own bookings", domain.ErrForbidden)
		}
	case domain.RoleAdmin:
	default:
		return fmt.Errorf("%w: unknown role", domain.ErrForbidden)
	}
	return nil
}

// bookingMinutes takes the requested duration or falls back to the service default.
func bookingMinutes(hours *float64, svc *domain.Service) (int, error) {
	if hours != nil {
		return domain.HoursToMinutes(*hours)
	}
	minutes := svc.DurationHours.Mul(decimal.NewFromInt(60)).Round(0).IntPart()
	if minutes <= 0 {
		return 0, fmt.Errorf("%w: service has no default duration", domain.ErrInvalidInput)
	}
	if minutes > domain.MaxDurationHours*60 {
		return 0, fmt.Errorf("%w: service default duration exceeds %d hours", domain.ErrInvalidInput, domain.MaxDurationHours)
	}
	return int(minutes), nil
}

func applyPrice(b *domain.Booking, p domain.PriceBreakdown) {
	b.BaseAmount = p.BaseAmount
	b.CallOutFee = p.CallOutFee
	b.EmergencyPremium = p.EmergencyPremium
	b.DiscountAmount = p.DiscountAmount
	b.FinalAmount = p.FinalAmount
	b.PaymentRequired = p.FinalAmount.IsPositive()
}

func applyPatch(b *domain.Booking, p domain.BookingPatch) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&b.ServiceAddress, p.ServiceAddress)
	set(&b.City, p.City)
	set(&b.PostalCode, p.PostalCode)
	set(&b.SpecialInstructions, p.SpecialInstructions)
	set(&b.Notes, p.Notes)
	set(&b.EmergencyContactName, p.EmergencyContactName)
	set(&b.EmergencyContactPhone, p.EmergencyContactPhone)
}
