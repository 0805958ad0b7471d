package entity

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

type ReservationType string

const (
	ReservationTypeOnline ReservationType = "online"
	ReservationTypeWalkIn ReservationType = "walk-in"
)

// Booking reserves the studio for [StartTime, StartTime+DurationHours)
// on BookingDate. Only confirmed bookings occupy their interval.
type Booking struct {
	Base
	CustomerName    string          `db:"customer_name"`
	CustomerEmail   string          `db:"customer_email"`
	CustomerPhone   *string         `db:"customer_phone"`
	BookingDate     time.Time       `db:"booking_date"` // date only, midnight UTC
	StartTime       string          `db:"start_time"`   // HH:MM, minute precision
	DurationHours   int             `db:"duration_hours"`
	TotalPrice      float64         `db:"total_price"`
	Status          BookingStatus   `db:"status"`
	PaymentStatus   PaymentStatus   `db:"payment_status"`
	PaymentMethod   *string         `db:"payment_method"`
	ReferenceNumber *string         `db:"reference_number"` // opaque, never validated
	Notes           *string         `db:"notes"`
	ReservationType ReservationType `db:"reservation_type"`
}
