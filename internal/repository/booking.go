package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hsiereveld/careservices-monorepo-sub004/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, customer_id, professional_id, service_id, parent_booking_id,
	starts_at, duration_minutes,
	base_amount, call_out_fee, emergency_premium, discount_amount, final_amount,
	emergency_booking, payment_required,
	service_address, city, postal_code, special_instructions, notes,
	emergency_contact_name, emergency_contact_phone,
	status, cancellation_reason, cancellation_fee, cancelled_by,
	is_recurring, recurrence_pattern, recurrence_end_date,
	created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

type rowsQuerier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b           domain.Booking
		startsAt    time.Time
		cancelledBy sql.NullString
		pattern     sql.NullString
	)
	if err := row.Scan(
		&b.ID, &b.CustomerID, &b.ProfessionalID, &b.ServiceID, &b.ParentBookingID,
		&startsAt, &b.DurationMinutes,
		&b.BaseAmount, &b.CallOutFee, &b.EmergencyPremium, &b.DiscountAmount, &b.FinalAmount,
		&b.EmergencyBooking, &b.PaymentRequired,
		&b.ServiceAddress, &b.City, &b.PostalCode, &b.SpecialInstructions, &b.Notes,
		&b.EmergencyContactName, &b.EmergencyContactPhone,
		&b.Status, &b.CancellationReason, &b.CancellationFee, &cancelledBy,
		&b.IsRecurring, &pattern, &b.RecurrenceEndDate,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	b.StartsAt = wallClockUTC(startsAt)
	b.CancelledBy = cancelledBy.String
	b.RecurrencePattern = domain.RecurrencePattern(pattern.String)
	return &b, nil
}

// wallClockUTC keeps the stored wall clock and pins it to UTC; starts_at is a
// timestamp without time zone.
func wallClockUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// activeOverlapping returns active bookings of the professional whose window
// intersects [from, to). Touching windows do not intersect.
func activeOverlapping(
	ctx context.Context,
	q rowsQuerier,
	professionalID string,
	from, to time.Time,
	excludeID string,
) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE professional_id = $1
			    AND status = ANY($2)
			    AND starts_at < $4
			    AND ends_at > $3
			    AND ($5::uuid IS NULL OR id <> $5::uuid)
			  ORDER BY starts_at`

	rows, err := q.QueryContext(
		ctx, query, professionalID, pq.Array(domain.ActiveStatuses),
		from, to, nullString(excludeID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// lockProfessional serializes schedule writes for one professional.
func lockProfessional(ctx context.Context, tx *sql.Tx, professionalID string) error {
	var id string
	err := tx.QueryRowContext(ctx, `SELECT id FROM professionals WHERE id = $1 FOR UPDATE`, professionalID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfessionalNotFound
	}
	return err
}

// ensureSlotFree must run inside a transaction holding the professional lock.
func ensureSlotFree(ctx context.Context, tx *sql.Tx, b *domain.Booking, excludeID string) error {
	w := b.Window()
	existing, err := activeOverlapping(ctx, tx, b.ProfessionalID, w.Start, w.End, excludeID)
	if err != nil {
		return storeErr("check overlapping bookings", err)
	}
	if conflicts := domain.FindConflicts(w, existing, excludeID); len(conflicts) > 0 {
		return &domain.SlotConflictError{Conflicts: conflicts}
	}
	return nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("begin tx", err)
	}
	defer tx.Rollback()

	if err = lockProfessional(ctx, tx, b.ProfessionalID); err != nil {
		if errors.Is(err, domain.ErrProfessionalNotFound) {
			return err
		}
		return storeErr("lock professional", err)
	}

	if err = ensureSlotFree(ctx, tx, b, ""); err != nil {
		return err
	}

	w := b.Window()
	query := `INSERT INTO bookings (
				id, customer_id, professional_id, service_id, parent_booking_id,
				booking_date, booking_time, duration_minutes, starts_at, ends_at,
				base_amount, call_out_fee, emergency_premium, discount_amount, final_amount,
				emergency_booking, payment_required,
				service_address, city, postal_code, special_instructions, notes,
				emergency_contact_name, emergency_contact_phone,
				status, is_recurring, recurrence_pattern, recurrence_end_date,
				created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			          $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			          $21, $22, $23, $24, $25, $26, $27, $28, $29, $30)`
	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.CustomerID, b.ProfessionalID, b.ServiceID, b.ParentBookingID,
		b.BookingDate(), b.BookingTime(), b.DurationMinutes, w.Start, w.End,
		b.BaseAmount, b.CallOutFee, b.EmergencyPremium, b.DiscountAmount, b.FinalAmount,
		b.EmergencyBooking, b.PaymentRequired,
		b.ServiceAddress, b.City, b.PostalCode, b.SpecialInstructions, b.Notes,
		b.EmergencyContactName, b.EmergencyContactPhone,
		b.Status, b.IsRecurring, nullString(string(b.RecurrencePattern)), b.RecurrenceEndDate,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isSlotViolation(err) {
			return &domain.SlotConflictError{}
		}
		if pgCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("%w: referenced record does not exist", domain.ErrValidation)
		}
		return storeErr("insert booking", err)
	}

	if err = tx.Commit(); err != nil {
		if isSlotViolation(err) {
			return &domain.SlotConflictError{}
		}
		return storeErr("commit booking", err)
	}
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, storeErr("get booking", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, storeErr("scan booking", err)
	}
	return b, nil
}

// Update writes the mutable fields while the booking is still in the status
// it was read in. With recheckSlot the new window is validated under the
// professional lock before the write.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking, recheckSlot bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("begin tx", err)
	}
	defer tx.Rollback()

	if recheckSlot {
		if err = lockProfessional(ctx, tx, b.ProfessionalID); err != nil {
			if errors.Is(err, domain.ErrProfessionalNotFound) {
				return err
			}
			return storeErr("lock professional", err)
		}
		if err = ensureSlotFree(ctx, tx, b, b.ID); err != nil {
			return err
		}
	}

	w := b.Window()
	query := `UPDATE bookings
			  SET booking_date = $3, booking_time = $4, duration_minutes = $5,
			      starts_at = $6, ends_at = $7,
			      base_amount = $8, call_out_fee = $9, emergency_premium = $10,
			      discount_amount = $11, final_amount = $12,
			      emergency_booking = $13, payment_required = $14,
			      service_address = $15, city = $16, postal_code = $17,
			      special_instructions = $18, notes = $19,
			      emergency_contact_name = $20, emergency_contact_phone = $21,
			      updated_at = $22
			  WHERE id = $1 AND status = $2`
	res, err := tx.ExecContext(
		ctx, query,
		b.ID, b.Status,
		b.BookingDate(), b.BookingTime(), b.DurationMinutes, w.Start, w.End,
		b.BaseAmount, b.CallOutFee, b.EmergencyPremium, b.DiscountAmount, b.FinalAmount,
		b.EmergencyBooking, b.PaymentRequired,
		b.ServiceAddress, b.City, b.PostalCode, b.SpecialInstructions, b.Notes,
		b.EmergencyContactName, b.EmergencyContactPhone,
		b.UpdatedAt,
	)
	if err != nil {
		if isSlotViolation(err) {
			return &domain.SlotConflictError{}
		}
		return storeErr("update booking", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return storeErr("rows affected", err)
	}
	if affected == 0 {
		current, err := r.currentStatus(ctx, b.ID)
		if err != nil {
			return err
		}
		return fmt.Errorf("%w: booking moved from %s to %s meanwhile", domain.ErrInvalidTransition, b.Status, current)
	}

	if err = tx.Commit(); err != nil {
		if isSlotViolation(err) {
			return &domain.SlotConflictError{}
		}
		return storeErr("commit booking", err)
	}
	return nil
}

// Transition applies a status change only while the row is still in change.From,
// so of two racing transitions exactly one wins.
func (r *BookingRepository) Transition(ctx context.Context, change domain.StatusChange) (*domain.Booking, error) {
	var cancelledBy sql.NullString
	if change.To == domain.BookingStatusCancelled {
		cancelledBy = nullString(change.ChangedBy)
	}

	query := `UPDATE bookings
			  SET status = $3,
			      cancellation_reason = $4,
			      cancellation_fee = $5,
			      cancelled_by = $6,
			      updated_at = $7
			  WHERE id = $1 AND status = $2
			  RETURNING ` + bookingColumns
	row := r.db.Master.QueryRowContext(
		ctx, query,
		change.BookingID, change.From, change.To,
		change.Reason, change.CancellationFee, cancelledBy, change.At,
	)

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			current, err := r.currentStatus(ctx, change.BookingID)
			if err != nil {
				return nil, err
			}
			return nil, &domain.TransitionError{From: current, To: change.To}
		}
		if isSlotViolation(err) {
			return nil, &domain.SlotConflictError{}
		}
		return nil, storeErr("transition booking", err)
	}
	return b, nil
}

// currentStatus explains why a status-guarded write touched no row.
func (r *BookingRepository) currentStatus(ctx context.Context, id string) (domain.BookingStatus, error) {
	var current domain.BookingStatus
	err := r.db.Master.QueryRowContext(ctx, `SELECT status FROM bookings WHERE id = $1`, id).Scan(&current)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", domain.ErrBookingNotFound
	case err != nil:
		return "", storeErr("read booking status", err)
	}
	return current, nil
}

func (r *BookingRepository) ListActiveOverlapping(
	ctx context.Context,
	professionalID string,
	from, to time.Time,
) ([]*domain.Booking, error) {
	res, err := activeOverlapping(ctx, r.db.Master, professionalID, from, to, "")
	if err != nil {
		return nil, storeErr("list overlapping bookings", err)
	}
	return res, nil
}

func (r *BookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, int, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.ProfessionalID != "" {
		args = append(args, filter.ProfessionalID)
		conds = append(conds, fmt.Sprintf("professional_id = $%d", len(args)))
	}
	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		conds = append(conds, fmt.Sprintf("customer_id = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM bookings`+where, args...)
	if err != nil {
		return nil, 0, storeErr("count bookings", err)
	}
	var total int
	if err = row.Scan(&total); err != nil {
		return nil, 0, storeErr("scan booking count", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM bookings%s ORDER BY starts_at DESC, id LIMIT $%d OFFSET $%d`,
		bookingColumns, where, len(args)-1, len(args))

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, 0, storeErr("list bookings", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, storeErr("scan booking", err)
		}
		res = append(res, b)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, storeErr("iterate bookings", err)
	}

	return res, total, nil
}
