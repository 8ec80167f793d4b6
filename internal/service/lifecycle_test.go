package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore keeps bookings, reviews and ratings in memory. Create and Transition
// hold the lock across check and write like the Postgres repository's transaction.
type memStore struct {
	mu            sync.Mutex
	bookings      map[string]domain.Booking
	reviews       map[string]domain.Review
	services      map[string]domain.Service
	professionals map[string]domain.Professional
	customers     map[string]domain.Customer
}

func newMemStore() *memStore {
	return &memStore{
		bookings:      map[string]domain.Booking{},
		reviews:       map[string]domain.Review{},
		services:      map[string]domain.Service{},
		professionals: map[string]domain.Professional{},
		customers:     map[string]domain.Customer{},
	}
}

func (m *memStore) Create(_ context.Context, b *domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if conflicts := m.conflicts(b, ""); len(conflicts) > 0 {
		return &domain.SlotConflictError{Conflicts: conflicts}
	}
	m.bookings[b.ID] = *b
	return nil
}

func (m *memStore) conflicts(b *domain.Booking, exclude string) []domain.Conflict {
	var same []*domain.Booking
	for _, existing := range m.bookings {
		if existing.ProfessionalID == b.ProfessionalID {
			e := existing
			same = append(same, &e)
		}
	}
	return domain.FindConflicts(b.Window(), same, exclude)
}

func (m *memStore) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

func (m *memStore) Update(_ context.Context, b *domain.Booking, recheckSlot bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if recheckSlot {
		if conflicts := m.conflicts(b, b.ID); len(conflicts) > 0 {
			return &domain.SlotConflictError{Conflicts: conflicts}
		}
	}
	m.bookings[b.ID] = *b
	return nil
}

func (m *memStore) Transition(_ context.Context, c domain.StatusChange) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[c.BookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if b.Status != c.From {
		return nil, &domain.TransitionError{From: b.Status, To: c.To}
	}
	b.Status = c.To
	b.UpdatedAt = c.At
	if c.To == domain.BookingStatusCancelled {
		b.CancellationReason = c.Reason
		b.CancellationFee = c.CancellationFee
		b.CancelledBy = c.ChangedBy
	}
	m.bookings[b.ID] = b
	return &b, nil
}

func (m *memStore) ListActiveOverlapping(_ context.Context, professionalID string, from, to time.Time) ([]*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []*domain.Booking
	want := domain.Window{Start: from, End: to}
	for _, b := range m.bookings {
		if b.ProfessionalID == professionalID && b.Status.IsActive() && b.Window().Overlaps(want) {
			bb := b
			res = append(res, &bb)
		}
	}
	return res, nil
}

func (m *memStore) List(_ context.Context, f domain.BookingFilter) ([]*domain.Booking, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []*domain.Booking
	for _, b := range m.bookings {
		if (f.CustomerID == "" || b.CustomerID == f.CustomerID) &&
			(f.ProfessionalID == "" || b.ProfessionalID == f.ProfessionalID) &&
			(f.Status == "" || b.Status == f.Status) {
			bb := b
			res = append(res, &bb)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].StartsAt.Before(res[j].StartsAt) })
	return res, len(res), nil
}

func (m *memStore) GetService(_ context.Context, id string) (*domain.Service, error) {
	s, ok := m.services[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	return &s, nil
}

func (m *memStore) GetProfessional(_ context.Context, id string) (*domain.Professional, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.professionals[id]
	if !ok {
		return nil, domain.ErrProfessionalNotFound
	}
	return &p, nil
}

func (m *memStore) GetCustomer(_ context.Context, id string) (*domain.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return &c, nil
}

type memReviews struct{ *memStore }

func (m memReviews) Create(_ context.Context, r *domain.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reviews[r.BookingID]; ok {
		return domain.ErrDuplicateReview
	}
	m.reviews[r.BookingID] = *r
	return nil
}

type memRatings struct{ *memStore }

func (m memRatings) Recompute(_ context.Context, professionalID string) (*domain.RatingAggregate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var sum int64
	count := 0
	for _, r := range m.reviews {
		if r.ProfessionalID == professionalID {
			sum += int64(r.Rating)
			count++
		}
	}
	agg := domain.NewRatingAggregate(professionalID, sum, count)
	p := m.professionals[professionalID]
	p.AverageRating, p.ReviewCount = agg.Average, agg.Count
	m.professionals[professionalID] = p
	return &agg, nil
}

func (m memRatings) Get(_ context.Context, professionalID string) (*domain.RatingAggregate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.professionals[professionalID]
	if !ok {
		return nil, domain.ErrProfessionalNotFound
	}
	return &domain.RatingAggregate{ProfessionalID: p.ID, Average: p.AverageRating, Count: p.ReviewCount}, nil
}

func (m memRatings) Enqueue(context.Context, string, string) error { return nil }

func (m memRatings) ListQueued(context.Context, int) ([]string, error) { return nil, nil }

type nopNotifier struct{}

func (nopNotifier) NotifyBookingCreated(context.Context, *domain.Booking) {}
func (nopNotifier) NotifyBookingUpdated(context.Context, *domain.Booking) {}
func (nopNotifier) NotifyStatusChanged(context.Context, *domain.Booking, domain.BookingStatus) {}
func (nopNotifier) NotifyReviewSubmitted(context.Context, *domain.Review, *domain.RatingAggregate) {}

type world struct {
	store    *memStore
	bookings *BookingService
	reviews  *ReviewService

	customer     domain.CallerIdentity
	professional domain.CallerIdentity
	serviceID    string
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		store:        newMemStore(),
		customer:     domain.CallerIdentity{ID: uuid.NewString(), Role: domain.RoleCustomer},
		professional: domain.CallerIdentity{ID: uuid.NewString(), Role: domain.RoleProfessional},
		serviceID:    uuid.NewString(),
	}
	w.store.services[w.serviceID] = domain.Service{
		ID:             w.serviceID,
		ProfessionalID: w.professional.ID,
		Name:           "Garden care",
		Price:          decimal.NewNullDecimal(decimal.NewFromInt(20)),
		DurationHours:  decimal.NewFromInt(2),
		Active:         true,
	}
	w.store.professionals[w.professional.ID] = domain.Professional{ID: w.professional.ID, DisplayName: "P"}
	w.store.customers[w.customer.ID] = domain.Customer{ID: w.customer.ID, DisplayName: "C"}

	log := newTestLogger(t)
	w.bookings = NewBookingService(w.store, w.store, NewAvailabilityService(w.store, w.store), nopNotifier{}, testPolicy, log)
	w.bookings.now = func() time.Time { return testNow }
	w.reviews = NewReviewService(w.store, memReviews{w.store}, memRatings{w.store}, nopNotifier{}, 10, log)
	return w
}

func (w *world) request() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		CustomerID:     w.customer.ID,
		ProfessionalID: w.professional.ID,
		ServiceID:      w.serviceID,
		BookingDate:    "2025-03-01",
		BookingTime:    "10:00",
	}
}

func TestLifecycle_EndToEnd(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	created, err := w.bookings.Create(ctx, w.customer, w.request())
	require.NoError(t, err)
	b := created.Booking
	assert.Equal(t, domain.BookingStatusPending, b.Status)
	assert.Equal(t, "40.00", b.FinalAmount.StringFixed(2))

	for _, next := range []domain.BookingStatus{
		domain.BookingStatusConfirmed,
		domain.BookingStatusInProgress,
	} {
		b, err = w.bookings.UpdateStatus(ctx, w.professional, b.ID, next, "")
		require.NoError(t, err)
		assert.Equal(t, next, b.Status)

		if next == domain.BookingStatusConfirmed {
			other := domain.CallerIdentity{ID: uuid.NewString(), Role: domain.RoleCustomer}
			w.store.customers[other.ID] = domain.Customer{ID: other.ID}
			in := w.request()
			in.CustomerID = other.ID
			_, err = w.bookings.Create(ctx, other, in)
			assert.ErrorIs(t, err, domain.ErrSlotConflict)
		}
	}

	b, err = w.bookings.UpdateStatus(ctx, w.professional, b.ID, domain.BookingStatusCompleted, "")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCompleted, b.Status)

	res, err := w.reviews.Submit(ctx, w.customer, domain.SubmitReviewInput{BookingID: b.ID, Rating: 5})
	require.NoError(t, err)
	require.NotNil(t, res.Rating)
	assert.Equal(t, "5.0", res.Rating.Average.StringFixed(1))
	assert.Equal(t, 1, res.Rating.Count)

	_, err = w.reviews.Submit(ctx, w.customer, domain.SubmitReviewInput{BookingID: b.ID, Rating: 1})
	assert.ErrorIs(t, err, domain.ErrDuplicateReview)

	// completed bookings free the slot
	_, err = w.bookings.Create(ctx, w.customer, w.request())
	assert.NoError(t, err)
}

func TestLifecycle_RatingRecompute(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	submit := func(day, rating int) *domain.SubmitReviewResult {
		in := w.request()
		in.BookingDate = time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC).Format(domain.DateLayout)
		created, err := w.bookings.Create(ctx, w.customer, in)
		require.NoError(t, err)
		id := created.Booking.ID
		for _, next := range []domain.BookingStatus{
			domain.BookingStatusConfirmed,
			domain.BookingStatusInProgress,
			domain.BookingStatusCompleted,
		} {
			_, err = w.bookings.UpdateStatus(ctx, w.professional, id, next, "")
			require.NoError(t, err)
		}
		res, err := w.reviews.Submit(ctx, w.customer, domain.SubmitReviewInput{BookingID: id, Rating: rating})
		require.NoError(t, err)
		return res
	}

	submit(1, 5)
	submit(2, 4)
	res := submit(3, 3)
	assert.Equal(t, "4.0", res.Rating.Average.StringFixed(1))
	assert.Equal(t, 3, res.Rating.Count)

	res = submit(4, 2)
	assert.Equal(t, "3.5", res.Rating.Average.StringFixed(1))
	assert.Equal(t, 4, res.Rating.Count)
}

func TestLifecycle_ReviewPendingBooking(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	created, err := w.bookings.Create(ctx, w.customer, w.request())
	require.NoError(t, err)

	_, err = w.reviews.Submit(ctx, w.customer, domain.SubmitReviewInput{BookingID: created.Booking.ID, Rating: 5})
	assert.ErrorIs(t, err, domain.ErrReviewNotEligible)
}

func TestLifecycle_CancelTwice(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	created, err := w.bookings.Create(ctx, w.customer, w.request())
	require.NoError(t, err)

	_, err = w.bookings.Cancel(ctx, w.customer, created.Booking.ID, "sick")
	require.NoError(t, err)

	_, err = w.bookings.Cancel(ctx, w.customer, created.Booking.ID, "sick")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// cancelled bookings free the slot
	_, err = w.bookings.Create(ctx, w.customer, w.request())
	assert.NoError(t, err)
}

func TestLifecycle_ConcurrentCreates(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	const workers = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := w.request()
			// overlapping windows of different lengths
			in.BookingTime = []string{"09:30", "10:00", "10:45", "11:15"}[i%4]
			_, err := w.bookings.Create(ctx, w.customer, in)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, domain.ErrSlotConflict):
				conflicts++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicts)
}
