package repository

import (
	"context"
	"fmt"
	"time"

	"studio-booking/internal/data/entity"
	"studio-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	Count(ctx context.Context) (int64, error)
	FindConfirmedByDate(ctx context.Context, date time.Time) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, created_at, updated_at, customer_name, customer_email, customer_phone,
	       booking_date, start_time, duration_hours, total_price, status,
	       payment_status, payment_method, reference_number, notes, reservation_type`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.CustomerPhone,
		&b.BookingDate,
		&b.StartTime,
		&b.DurationHours,
		&b.TotalPrice,
		&b.Status,
		&b.PaymentStatus,
		&b.PaymentMethod,
		&b.ReferenceNumber,
		&b.Notes,
		&b.ReservationType,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create writes the booking as a single row insert. Not retried.
func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, created_at, updated_at, customer_name, customer_email, customer_phone,
		                      booking_date, start_time, duration_hours, total_price, status,
		                      payment_status, payment_method, reference_number, notes, reservation_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	callCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	_, err := r.db.Exec(callCtx, query,
		booking.ID,
		booking.CreatedAt,
		booking.UpdatedAt,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.BookingDate,
		booking.StartTime,
		booking.DurationHours,
		booking.TotalPrice,
		booking.Status,
		booking.PaymentStatus,
		booking.PaymentMethod,
		booking.ReferenceNumber,
		booking.Notes,
		booking.ReservationType,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("date", booking.BookingDate.Format("2006-01-02")),
		)
		return storeErr("create booking", err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking *entity.Booking
	err := readRetry(ctx, func(callCtx context.Context) error {
		b, err := scanBooking(r.db.QueryRow(callCtx, query, id))
		if err == pgx.ErrNoRows {
			booking = nil
			return nil
		}
		if err != nil {
			return storeErr("find booking by ID", err)
		}
		booking = b
		return nil
	})

	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, err
	}

	return booking, nil
}

// FindAll returns bookings in display order: newest date first, earliest
// start time first within a date.
func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY booking_date DESC, start_time ASC
		LIMIT $1 OFFSET $2
	`

	var bookings []*entity.Booking
	err := readRetry(ctx, func(callCtx context.Context) error {
		rows, err := r.db.Query(callCtx, query, limit, offset)
		if err != nil {
			return storeErr("find all bookings", err)
		}
		defer rows.Close()

		bookings = bookings[:0]
		for rows.Next() {
			b, err := scanBooking(rows)
			if err != nil {
				return fmt.Errorf("scan booking row: %w", err)
			}
			bookings = append(bookings, b)
		}
		return rows.Err()
	})

	if err != nil {
		r.log.Error("Failed to find all bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, err
	}

	return bookings, nil
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings`

	var count int64
	err := readRetry(ctx, func(callCtx context.Context) error {
		if err := r.db.QueryRow(callCtx, query).Scan(&count); err != nil {
			return storeErr("count bookings", err)
		}
		return nil
	})

	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, err
	}

	return count, nil
}

// FindConfirmedByDate returns the bookings that occupy intervals on the
// given date. Pending and cancelled rows never constrain availability.
func (r *bookingRepository) FindConfirmedByDate(ctx context.Context, date time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE booking_date = $1 AND status = 'confirmed'
		ORDER BY start_time ASC
	`

	var bookings []*entity.Booking
	err := readRetry(ctx, func(callCtx context.Context) error {
		rows, err := r.db.Query(callCtx, query, date)
		if err != nil {
			return storeErr("find confirmed bookings by date", err)
		}
		defer rows.Close()

		bookings = bookings[:0]
		for rows.Next() {
			b, err := scanBooking(rows)
			if err != nil {
				return fmt.Errorf("scan booking row: %w", err)
			}
			bookings = append(bookings, b)
		}
		return rows.Err()
	})

	if err != nil {
		r.log.Error("Failed to find confirmed bookings by date",
			zap.Error(err),
			zap.String("date", date.Format("2006-01-02")),
		)
		return nil, err
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	callCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	result, err := r.db.Exec(callCtx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return storeErr("update booking status", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", id.String(), entity.ErrNotFound)
	}

	return nil
}

func (r *bookingRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	query := `UPDATE bookings SET payment_status = $2, updated_at = NOW() WHERE id = $1`

	callCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	result, err := r.db.Exec(callCtx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("payment_status", string(status)),
		)
		return storeErr("update payment status", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", id.String(), entity.ErrNotFound)
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	callCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	result, err := r.db.Exec(callCtx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return storeErr("delete booking", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", id.String(), entity.ErrNotFound)
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}
