package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/domain"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/handler/dto"
	hmocks "github.com/hsiereveld/careservices-monorepo-sub004/internal/handler/mocks"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type testEnv struct {
	bookings     *hmocks.MockBookingSvc
	reviews      *hmocks.MockReviewSvc
	availability *hmocks.MockAvailabilitySvc
	router       http.Handler
}

// setupRouter wires the handlers behind a stub that plays the auth middleware.
// A nil caller leaves the request unauthenticated.
func setupRouter(t *testing.T, caller *domain.CallerIdentity) *testEnv {
	t.Helper()
	env := &testEnv{
		bookings:     hmocks.NewMockBookingSvc(t),
		reviews:      hmocks.NewMockReviewSvc(t),
		availability: hmocks.NewMockAvailabilitySvc(t),
	}

	h := NewHandler(env.bookings, env.reviews, env.availability)

	r := ginext.New("test")
	api := r.Group("/api")
	api.Use(func(c *ginext.Context) {
		if caller != nil {
			middleware.SetCaller(c, *caller)
		}
		c.Next()
	})
	{
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.PATCH("/bookings/:id", h.UpdateBooking)
		api.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.GET("/professionals/:id/availability", h.CheckAvailability)
		api.GET("/professionals/:id/rating", h.GetRating)
		api.POST("/reviews", h.SubmitReview)
	}

	env.router = r
	return env
}

func customer() *domain.CallerIdentity {
	return &domain.CallerIdentity{ID: uuid.NewString(), Role: domain.RoleCustomer}
}

func do(env *testEnv, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	env.router.ServeHTTP(w, req)
	return w
}

func sampleBooking(customerID string) *domain.Booking {
	return &domain.Booking{
		ID:              uuid.NewString(),
		CustomerID:      customerID,
		ProfessionalID:  uuid.NewString(),
		ServiceID:       uuid.NewString(),
		StartsAt:        time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 90,
		BaseAmount:      decimal.RequireFromString("37.5"),
		CallOutFee:      decimal.RequireFromString("10"),
		FinalAmount:     decimal.RequireFromString("47.5"),
		PaymentRequired: true,
		Status:          domain.BookingStatusPending,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	caller := customer()
	env := setupRouter(t, caller)
	b := sampleBooking(caller.ID)

	env.bookings.EXPECT().
		Create(mock.Anything, *caller, mock.MatchedBy(func(in domain.CreateBookingInput) bool {
			return in.ProfessionalID == b.ProfessionalID &&
				in.BookingDate == "2030-06-01" &&
				in.BookingTime == "10:00" &&
				in.DurationHours != nil && *in.DurationHours == 1.5
		})).
		Return(&domain.CreateBookingResult{Booking: b, Message: "Booking created successfully, payment required"}, nil)

	hours := 1.5
	w := do(env, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ProfessionalID: b.ProfessionalID,
		ServiceID:      b.ServiceID,
		BookingDate:    "2030-06-01",
		BookingTime:    "10:00",
		DurationHours:  &hours,
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CreateBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, b.ID, resp.Booking.ID)
	assert.Equal(t, "47.50", resp.Booking.FinalAmount)
	assert.Equal(t, "37.50", resp.Booking.BaseAmount)
	assert.Equal(t, 1.5, resp.Booking.DurationHours)
	assert.Equal(t, "10:00", resp.Booking.BookingTime)
	assert.Contains(t, resp.Message, "payment required")
}

func TestHandler_CreateBooking_MissingFields(t *testing.T) {
	env := setupRouter(t, customer())

	w := do(env, http.MethodPost, "/api/bookings", map[string]string{"service_id": uuid.NewString()})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, domain.KindValidation, decodeError(t, w).Kind)
}

func TestHandler_CreateBooking_SlotConflict(t *testing.T) {
	caller := customer()
	env := setupRouter(t, caller)
	existing := sampleBooking(uuid.NewString())

	env.bookings.EXPECT().Create(mock.Anything, *caller, mock.Anything).
		Return(nil, &domain.SlotConflictError{Conflicts: []domain.Conflict{domain.ConflictOf(existing)}})

	w := do(env, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ProfessionalID: existing.ProfessionalID,
		ServiceID:      existing.ServiceID,
		BookingDate:    "2030-06-01",
		BookingTime:    "10:30",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, domain.KindSlotConflict, resp.Kind)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, existing.ID, resp.Conflicts[0].BookingID)
}

func TestHandler_CreateBooking_Unauthenticated(t *testing.T) {
	env := setupRouter(t, nil)

	w := do(env, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, domain.KindUnauthorized, decodeError(t, w).Kind)
}

func TestHandler_GetBooking(t *testing.T) {
	caller := customer()
	env := setupRouter(t, caller)
	b := sampleBooking(caller.ID)

	env.bookings.EXPECT().Get(mock.Anything, *caller, b.ID).Return(&domain.BookingDetails{
		Booking: *b,
		Service: &domain.Service{
			ID:    b.ServiceID,
			Name:  "Garden care",
			Price: decimal.NewNullDecimal(decimal.RequireFromString("25")),
		},
		Professional: &domain.Professional{ID: b.ProfessionalID, AverageRating: decimal.RequireFromString("4.5"), ReviewCount: 2},
	}, nil)

	w := do(env, http.MethodGet, "/api/bookings/"+b.ID, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.BookingDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, b.ID, resp.Booking.ID)
	require.NotNil(t, resp.Service)
	assert.Equal(t, "25.00", *resp.Service.Price)
	assert.Equal(t, "4.5", resp.Professional.AverageRating)
	assert.Nil(t, resp.Customer)
}

func TestHandler_GetBooking_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		kind   domain.ErrorKind
	}{
		{"not found", domain.ErrBookingNotFound, http.StatusNotFound, domain.KindNotFound},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, domain.KindForbidden},
		{"dependency", errors.Join(domain.ErrDependencyFailure, errors.New("dial tcp")), http.StatusServiceUnavailable, domain.KindDependencyFailure},
		{"internal", errors.New("boom"), http.StatusInternalServerError, domain.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caller := customer()
			env := setupRouter(t, caller)
			id := uuid.NewString()
			env.bookings.EXPECT().Get(mock.Anything, *caller, id).Return(nil, tt.err)

			w := do(env, http.MethodGet, "/api/bookings/"+id, nil)

			assert.Equal(t, tt.status, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.kind, resp.Kind)
			assert.NotContains(t, resp.Error, "dial tcp")
			assert.NotContains(t, resp.Error, "boom")
		})
	}
}

func TestHandler_GetBooking_MessageWithoutOperation(t *testing.T) {
	caller := customer()
	env := setupRouter(t, caller)
	id := uuid.NewString()
	env.bookings.EXPECT().Get(mock.Anything, *caller, id).
		Return(nil, fmt.Errorf("get booking: %w", domain.ErrBookingNotFound))

	w := do(env, http.MethodGet, "/api/bookings/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, domain.ErrBookingNotFound.Error(), decodeError(t, w).Error)
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	env := setupRouter(t, customer())

	w := do(env, http.MethodGet, "/api/bookings/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListBookings(t *testing.T) {
	caller := customer()
	env := setupRouter(t, caller)
	b := sampleBooking(caller.ID)

	env.bookings.EXPECT().
		List(mock.Anything, *caller, domain.BookingFilter{Status: domain.BookingStatusPending, Page: 2, Limit: 5}).
		Return(&domain.BookingList{
			Items:      []*domain.Booking{b},
			Pagination: domain.Pagination{Page: 2, Limit: 5, Total: 6, TotalPages: 2},
		}, nil)

	w := do(env, http.MethodGet, "/api/bookings?status=pending&page=2&limit=5", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.BookingListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
	assert.Contains(t, w.Body.String(), `"totalPages":2`)
}

func TestHandler_ListBookings_BadPage(t *testing.T) {
	env := setupRouter(t, customer())

	w := do(env, http.MethodGet, "/api/bookings?page=two", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListBookings_MalformedFilter(t *testing.T) {
	for _, query := range []string{"professional_id=abc", "customer_id=1"} {
		t.Run(query, func(t *testing.T) {
			env := setupRouter(t, customer())

			w := do(env, http.MethodGet, "/api/bookings?"+query, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, domain.KindValidation, decodeError(t, w).Kind)
		})
	}
}

func TestHandler_UpdateBooking_StatusRejected(t *testing.T) {
	caller := customer()
	env := setupRouter(t, caller)
	id := uuid.NewString()

	env.bookings.EXPECT().
		Update(mock.Anything, *caller, id, mock.MatchedBy(func(p domain.BookingPatch) bool {
			return p.Status != nil && *p.Status == "completed"
		})).
		Return(nil, domain.ErrValidation)

	w := do(env, http.MethodPatch, "/api/bookings/"+id, map[string]string{"status": "completed"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateBooking_Reschedule(t *testing.T) {
	caller := customer()
	env := setupRouter(t, caller)
	b := sampleBooking(caller.ID)
	b.StartsAt = time.Date(2030, 6, 2, 14, 0, 0, 0, time.UTC)

	env.bookings.EXPECT().
		Update(mock.Anything, *caller, b.ID, mock.MatchedBy(func(p domain.BookingPatch) bool {
			return p.BookingDate != nil && *p.BookingDate == "2030-06-02" && p.BookingTime != nil && p.Status == nil
		})).
		Return(b, nil)

	w := do(env, http.MethodPatch, "/api/bookings/"+b.ID, map[string]string{
		"booking_date": "2030-06-02",
		"booking_time": "14:00",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2030-06-02", resp.BookingDate)
	assert.Equal(t, "14:00", resp.BookingTime)
}

func TestHandler_UpdateBookingStatus(t *testing.T) {
	pro := &domain.CallerIdentity{ID: uuid.NewString(), Role: domain.RoleProfessional}
	env := setupRouter(t, pro)
	b := sampleBooking(uuid.NewString())
	b.Status = domain.BookingStatusConfirmed

	env.bookings.EXPECT().
		UpdateStatus(mock.Anything, *pro, b.ID, domain.BookingStatusConfirmed, "").
		Return(b, nil)

	w := do(env, http.MethodPatch, "/api/bookings/"+b.ID+"/status", dto.UpdateStatusRequest{Status: "confirmed"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandler_UpdateBookingStatus_InvalidTransition(t *testing.T) {
	pro := &domain.CallerIdentity{ID: uuid.NewString(), Role: domain.RoleProfessional}
	env := setupRouter(t, pro)
	id := uuid.NewString()

	env.bookings.EXPECT().
		UpdateStatus(mock.Anything, *pro, id, domain.BookingStatusPending, "").
		Return(nil, &domain.TransitionError{From: domain.BookingStatusCompleted, To: domain.BookingStatusPending})

	w := do(env, http.MethodPatch, "/api/bookings/"+id+"/status", dto.UpdateStatusRequest{Status: "pending"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, domain.KindInvalidTransition, resp.Kind)
	assert.Contains(t, resp.Error, "completed")
}

func TestHandler_CancelBooking(t *testing.T) {
	caller := customer()
	env := setupRouter(t, caller)
	b := sampleBooking(caller.ID)
	b.Status = domain.BookingStatusCancelled
	b.CancellationReason = "plans changed"
	b.CancellationFee = decimal.RequireFromString("9.5")

	env.bookings.EXPECT().Cancel(mock.Anything, *caller, b.ID, "plans changed").Return(b, nil)

	w := do(env, http.MethodPost, "/api/bookings/"+b.ID+"/cancel", dto.CancelRequest{Reason: "plans changed"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.CancelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Booking.Status)
	assert.Equal(t, "9.50", resp.Booking.CancellationFee)
	assert.NotEmpty(t, resp.Message)
}

func TestHandler_CancelBooking_NoBody(t *testing.T) {
	caller := customer()
	env := setupRouter(t, caller)
	b := sampleBooking(caller.ID)
	b.Status = domain.BookingStatusCancelled

	env.bookings.EXPECT().Cancel(mock.Anything, *caller, b.ID, "").Return(b, nil)

	w := do(env, http.MethodPost, "/api/bookings/"+b.ID+"/cancel", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Professionals ---

func TestHandler_CheckAvailability(t *testing.T) {
	env := setupRouter(t, customer())
	proID := uuid.NewString()
	start := time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

	env.availability.EXPECT().
		Check(mock.Anything, domain.AvailabilityQuery{
			ProfessionalID: proID,
			BookingDate:    "2030-06-01",
			BookingTime:    "09:00",
			DurationHours:  2,
		}).
		Return(&domain.Availability{ProfessionalID: proID, Start: start, End: start.Add(2 * time.Hour), Available: true}, nil)

	w := do(env, http.MethodGet, "/api/professionals/"+proID+"/availability?date=2030-06-01&time=09:00&duration_hours=2", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
	assert.Empty(t, resp.Conflicts)
	assert.Contains(t, w.Body.String(), `"conflicts":[]`)
}

func TestHandler_CheckAvailability_BadDuration(t *testing.T) {
	env := setupRouter(t, customer())

	w := do(env, http.MethodGet, "/api/professionals/"+uuid.NewString()+"/availability?date=2030-06-01&time=09:00&duration_hours=x", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CheckAvailability_MalformedExcludeID(t *testing.T) {
	env := setupRouter(t, customer())

	w := do(env, http.MethodGet, "/api/professionals/"+uuid.NewString()+"/availability?date=2030-06-01&time=09:00&duration_hours=1&exclude_booking_id=abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, domain.KindValidation, decodeError(t, w).Kind)
}

func TestHandler_GetRating(t *testing.T) {
	env := setupRouter(t, customer())
	proID := uuid.NewString()

	env.reviews.EXPECT().GetRating(mock.Anything, proID).Return(&domain.RatingAggregate{
		ProfessionalID: proID,
		Average:        decimal.RequireFromString("4"),
		Count:          3,
	}, nil)

	w := do(env, http.MethodGet, "/api/professionals/"+proID+"/rating", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.RatingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "4.0", resp.AverageRating)
	assert.Equal(t, 3, resp.ReviewCount)
}

// --- Reviews ---

func TestHandler_SubmitReview(t *testing.T) {
	caller := customer()
	env := setupRouter(t, caller)
	bookingID := uuid.NewString()
	rv := &domain.Review{ID: uuid.NewString(), BookingID: bookingID, CustomerID: caller.ID, Rating: 5, IsPublic: true}

	env.reviews.EXPECT().
		Submit(mock.Anything, *caller, domain.SubmitReviewInput{BookingID: bookingID, Rating: 5, IsPublic: true}).
		Return(&domain.SubmitReviewResult{
			Review: rv,
			Rating: &domain.RatingAggregate{Average: decimal.RequireFromString("4.5"), Count: 2},
		}, nil)

	w := do(env, http.MethodPost, "/api/reviews", dto.SubmitReviewRequest{BookingID: bookingID, Rating: 5})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.SubmitReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, rv.ID, resp.Review.ID)
	require.NotNil(t, resp.Rating)
	assert.Equal(t, "4.5", resp.Rating.AverageRating)
	assert.Empty(t, resp.Warning)
}

func TestHandler_SubmitReview_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind domain.ErrorKind
	}{
		{"not eligible", domain.ErrReviewNotEligible, domain.KindNotEligible},
		{"duplicate", domain.ErrDuplicateReview, domain.KindDuplicateReview},
		{"bad rating", domain.ErrValidation, domain.KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caller := customer()
			env := setupRouter(t, caller)
			env.reviews.EXPECT().Submit(mock.Anything, *caller, mock.Anything).Return(nil, tt.err)

			w := do(env, http.MethodPost, "/api/reviews", dto.SubmitReviewRequest{BookingID: uuid.NewString(), Rating: 4})

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.kind, decodeError(t, w).Kind)
		})
	}
}
