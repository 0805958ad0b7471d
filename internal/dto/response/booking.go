package response

import (
	"time"

	"studio-booking/internal/data/entity"
)

type BookingResponse struct {
	ID              string                 `json:"id"`
	CustomerName    string                 `json:"customer_name"`
	CustomerEmail   string                 `json:"customer_email"`
	CustomerPhone   *string                `json:"customer_phone,omitempty"`
	BookingDate     string                 `json:"booking_date"`
	StartTime       string                 `json:"start_time"`
	StartTimeLabel  string                 `json:"start_time_label"`
	DurationHours   int                    `json:"duration_hours"`
	TotalPrice      float64                `json:"total_price"`
	Status          entity.BookingStatus   `json:"status"`
	PaymentStatus   entity.PaymentStatus   `json:"payment_status"`
	PaymentMethod   *string                `json:"payment_method,omitempty"`
	ReferenceNumber *string                `json:"reference_number,omitempty"`
	Notes           *string                `json:"notes,omitempty"`
	ReservationType entity.ReservationType `json:"reservation_type"`
	CreatedAt       time.Time              `json:"created_at"`
}

func BookingToResponse(b *entity.Booking, startLabel string) BookingResponse {
	return BookingResponse{
		ID:              b.ID.String(),
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		BookingDate:     b.BookingDate.Format("2006-01-02"),
		StartTime:       b.StartTime,
		StartTimeLabel:  startLabel,
		DurationHours:   b.DurationHours,
		TotalPrice:      b.TotalPrice,
		Status:          b.Status,
		PaymentStatus:   b.PaymentStatus,
		PaymentMethod:   b.PaymentMethod,
		ReferenceNumber: b.ReferenceNumber,
		Notes:           b.Notes,
		ReservationType: b.ReservationType,
		CreatedAt:       b.CreatedAt,
	}
}
