package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/domain"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/handler/dto"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Create(ctx context.Context, caller domain.CallerIdentity, in domain.CreateBookingInput) (*domain.CreateBookingResult, error)
	Get(ctx context.Context, caller domain.CallerIdentity, id string) (*domain.BookingDetails, error)
	Update(ctx context.Context, caller domain.CallerIdentity, id string, patch domain.BookingPatch) (*domain.Booking, error)
	Cancel(ctx context.Context, caller domain.CallerIdentity, id string, reason string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, caller domain.CallerIdentity, id string, to domain.BookingStatus, reason string) (*domain.Booking, error)
	List(ctx context.Context, caller domain.CallerIdentity, filter domain.BookingFilter) (*domain.BookingList, error)
}

type ReviewSvc interface {
	Submit(ctx context.Context, caller domain.CallerIdentity, in domain.SubmitReviewInput) (*domain.SubmitReviewResult, error)
	GetRating(ctx context.Context, professionalID string) (*domain.RatingAggregate, error)
}

type AvailabilitySvc interface {
	Check(ctx context.Context, q domain.AvailabilityQuery) (*domain.Availability, error)
}

type Handler struct {
	bookingService      BookingSvc
	reviewService       ReviewSvc
	availabilityService AvailabilitySvc
}

func NewHandler(bookingService BookingSvc, reviewService ReviewSvc, availabilityService AvailabilitySvc) *Handler {
	return &Handler{
		bookingService:      bookingService,
		reviewService:       reviewService,
		availabilityService: availabilityService,
	}
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	res, err := h.bookingService.Create(c.Request.Context(), caller, req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateBookingResponse{
		Booking: dto.ToBookingResponse(res.Booking),
		Message: res.Message,
	})
}

func (h *Handler) GetBooking(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "booking")
	if !ok {
		return
	}

	details, err := h.bookingService.Get(c.Request.Context(), caller, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingDetailsResponse(details))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	filter := domain.BookingFilter{
		Status: domain.BookingStatus(c.Query("status")),
	}
	var err error
	if filter.ProfessionalID, err = uuidQuery(c, "professional_id"); err != nil {
		h.badRequest(c, err.Error())
		return
	}
	if filter.CustomerID, err = uuidQuery(c, "customer_id"); err != nil {
		h.badRequest(c, err.Error())
		return
	}
	if filter.Page, err = intQuery(c, "page"); err != nil {
		h.badRequest(c, err.Error())
		return
	}
	if filter.Limit, err = intQuery(c, "limit"); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	list, err := h.bookingService.List(c.Request.Context(), caller, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingListResponse{
		Items:      dto.ToBookingResponses(list.Items),
		Pagination: list.Pagination,
	})
}

func (h *Handler) UpdateBooking(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "booking")
	if !ok {
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	b, err := h.bookingService.Update(c.Request.Context(), caller, id, req.ToPatch())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(b))
}

func (h *Handler) UpdateBookingStatus(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "booking")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	b, err := h.bookingService.UpdateStatus(c.Request.Context(), caller, id, domain.BookingStatus(req.Status), req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(b))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "booking")
	if !ok {
		return
	}

	// The body is optional.
	var req dto.CancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.badRequest(c, err.Error())
			return
		}
	}

	b, err := h.bookingService.Cancel(c.Request.Context(), caller, id, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CancelResponse{
		Message: "Booking cancelled successfully",
		Booking: dto.ToBookingResponse(b),
	})
}

// Professionals

func (h *Handler) CheckAvailability(c *ginext.Context) {
	id, ok := h.uuidParam(c, "professional")
	if !ok {
		return
	}

	raw := c.Query("duration_hours")
	if raw == "" {
		h.badRequest(c, "duration_hours is required")
		return
	}
	hours, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		h.badRequest(c, "duration_hours must be a number")
		return
	}
	excludeID, err := uuidQuery(c, "exclude_booking_id")
	if err != nil {
		h.badRequest(c, err.Error())
		return
	}

	a, err := h.availabilityService.Check(c.Request.Context(), domain.AvailabilityQuery{
		ProfessionalID:   id,
		BookingDate:      c.Query("date"),
		BookingTime:      c.Query("time"),
		DurationHours:    hours,
		ExcludeBookingID: excludeID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(a))
}

func (h *Handler) GetRating(c *ginext.Context) {
	id, ok := h.uuidParam(c, "professional")
	if !ok {
		return
	}

	agg, err := h.reviewService.GetRating(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRatingResponse(agg))
}

// Reviews

func (h *Handler) SubmitReview(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	res, err := h.reviewService.Submit(c.Request.Context(), caller, req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitReviewResponse{
		Review:  dto.ToReviewResponse(res.Review),
		Rating:  dto.ToRatingResponse(res.Rating),
		Warning: res.Warning,
	})
}

func (h *Handler) caller(c *ginext.Context) (domain.CallerIdentity, bool) {
	caller, err := middleware.Caller(c)
	if err != nil {
		h.handleError(c, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err))
		return domain.CallerIdentity{}, false
	}
	return caller, true
}

func (h *Handler) uuidParam(c *ginext.Context, what string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.badRequest(c, "invalid "+what+" id")
		return "", false
	}
	return id, true
}

// uuidQuery returns an optional id query parameter; empty means unset.
func uuidQuery(c *ginext.Context, name string) (string, error) {
	raw := c.Query(name)
	if raw == "" {
		return "", nil
	}
	if _, err := uuid.Parse(raw); err != nil {
		return "", fmt.Errorf("%s must be a uuid", name)
	}
	return raw, nil
}

func intQuery(c *ginext.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}

func (h *Handler) badRequest(c *ginext.Context, msg string) {
	c.Set("error", msg)
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg, Kind: domain.KindValidation})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	kind := domain.KindOf(err)
	resp := dto.ErrorResponse{Error: domain.Message(err), Kind: kind}

	var status int
	switch kind {
	case domain.KindValidation,
		domain.KindInvalidTransition,
		domain.KindNotEligible,
		domain.KindDuplicateReview:
		status = http.StatusBadRequest

	case domain.KindSlotConflict:
		status = http.StatusConflict
		var conflict *domain.SlotConflictError
		if errors.As(err, &conflict) {
			resp.Conflicts = conflict.Conflicts
		}

	case domain.KindNotFound:
		status = http.StatusNotFound

	case domain.KindForbidden:
		status = http.StatusForbidden

	case domain.KindUnauthorized:
		status = http.StatusUnauthorized

	case domain.KindDependencyFailure:
		status = http.StatusServiceUnavailable
		resp.Error = "service temporarily unavailable"

	default:
		status = http.StatusInternalServerError
		resp.Error = "internal server error"
	}

	c.JSON(status, resp)
}
