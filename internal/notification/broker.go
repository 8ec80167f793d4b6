package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

const (
	KeyBookingCreated       = "booking.created"
	KeyBookingUpdated       = "booking.updated"
	KeyBookingStatusChanged = "booking.status_changed"
	KeyBookingCancelled     = "booking.cancelled"
	KeyReviewSubmitted      = "review.submitted"

	publishTimeout = 5 * time.Second
)

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// BrokerNotifier publishes booking lifecycle events to a RabbitMQ topic
// exchange for the notification and payment services. Publishing never
// fails the caller; errors are logged.
type BrokerNotifier struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
	logger   logger.Logger
	now      func() time.Time
}

func NewBrokerNotifier(url, exchange string, log logger.Logger) (*BrokerNotifier, error) {
	if url == "" {
		log.Warn("rabbitmq url is empty, lifecycle events disabled")
		return &BrokerNotifier{exchange: exchange, logger: log, now: time.Now}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err = ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &BrokerNotifier{conn: conn, ch: ch, exchange: exchange, logger: log, now: time.Now}, nil
}

type BookingEvent struct {
	Event              string    `json:"event"`
	BookingID          string    `json:"booking_id"`
	CustomerID         string    `json:"customer_id"`
	ProfessionalID     string    `json:"professional_id"`
	ServiceID          string    `json:"service_id"`
	Status             string    `json:"status"`
	PreviousStatus     string    `json:"previous_status,omitempty"`
	BookingDate        string    `json:"booking_date"`
	BookingTime        string    `json:"booking_time"`
	DurationMinutes    int       `json:"duration_minutes"`
	FinalAmount        string    `json:"final_amount"`
	PaymentRequired    bool      `json:"payment_required"`
	CancellationReason string    `json:"cancellation_reason,omitempty"`
	CancellationFee    string    `json:"cancellation_fee,omitempty"`
	CancelledBy        string    `json:"cancelled_by,omitempty"`
	OccurredAt         time.Time `json:"occurred_at"`
}

type ReviewEvent struct {
	Event          string    `json:"event"`
	ReviewID       string    `json:"review_id"`
	BookingID      string    `json:"booking_id"`
	ProfessionalID string    `json:"professional_id"`
	Rating         int       `json:"rating"`
	AverageRating  string    `json:"average_rating,omitempty"`
	ReviewCount    int       `json:"review_count,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func (n *BrokerNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	n.publish(ctx, KeyBookingCreated, n.bookingEvent(KeyBookingCreated, b, ""))
}

func (n *BrokerNotifier) NotifyBookingUpdated(ctx context.Context, b *domain.Booking) {
	n.publish(ctx, KeyBookingUpdated, n.bookingEvent(KeyBookingUpdated, b, ""))
}

// NotifyStatusChanged publishes cancellations under their own key so the
// payment service can bind to refunds and fees only.
func (n *BrokerNotifier) NotifyStatusChanged(ctx context.Context, b *domain.Booking, from domain.BookingStatus) {
	key := KeyBookingStatusChanged
	if b.Status == domain.BookingStatusCancelled {
		key = KeyBookingCancelled
	}
	n.publish(ctx, key, n.bookingEvent(key, b, from))
}

func (n *BrokerNotifier) NotifyReviewSubmitted(ctx context.Context, r *domain.Review, rating *domain.RatingAggregate) {
	ev := ReviewEvent{
		Event:          KeyReviewSubmitted,
		ReviewID:       r.ID,
		BookingID:      r.BookingID,
		ProfessionalID: r.ProfessionalID,
		Rating:         r.Rating,
		OccurredAt:     n.now().UTC(),
	}
	if rating != nil {
		ev.AverageRating = rating.Average.StringFixed(1)
		ev.ReviewCount = rating.Count
	}
	n.publish(ctx, KeyReviewSubmitted, ev)
}

func (n *BrokerNotifier) bookingEvent(event string, b *domain.Booking, from domain.BookingStatus) BookingEvent {
	ev := BookingEvent{
		Event:           event,
		BookingID:       b.ID,
		CustomerID:      b.CustomerID,
		ProfessionalID:  b.ProfessionalID,
		ServiceID:       b.ServiceID,
		Status:          string(b.Status),
		PreviousStatus:  string(from),
		BookingDate:     b.BookingDate(),
		BookingTime:     b.BookingTime(),
		DurationMinutes: b.DurationMinutes,
		FinalAmount:     b.FinalAmount.StringFixed(2),
		PaymentRequired: b.PaymentRequired,
		OccurredAt:      n.now().UTC(),
	}
	if b.Status == domain.BookingStatusCancelled {
		ev.CancellationReason = b.CancellationReason
		ev.CancellationFee = b.CancellationFee.StringFixed(2)
		ev.CancelledBy = b.CancelledBy
	}
	return ev
}

func (n *BrokerNotifier) publish(ctx context.Context, key string, v any) {
	if n.ch == nil {
		n.logger.Debug("event skipped (broker disabled)", logger.String("routing_key", key))
		return
	}

	body, err := json.Marshal(v)
	if err != nil {
		n.logger.Error("failed to encode event",
			logger.String("routing_key", key),
			logger.String("error", err.Error()),
		)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err = n.ch.PublishWithContext(ctx, n.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.New().String(),
		Timestamp:    n.now().UTC(),
		Body:         body,
	}); err != nil {
		n.logger.Error("failed to publish event",
			logger.String("routing_key", key),
			logger.String("error", err.Error()),
		)
	}
}

func (n *BrokerNotifier) Close() error {
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
