package request

type CreateBookingRequest struct {
	CustomerName    string  `json:"customer_name" validate:"required,min=2"`
	CustomerEmail   string  `json:"customer_email" validate:"required,email"`
	CustomerPhone   *string `json:"customer_phone,omitempty"`
	BookingDate     string  `json:"booking_date" validate:"required,datetime=2006-01-02"`
	StartTime       string  `json:"start_time" validate:"required"`
	DurationHours   int     `json:"duration_hours" validate:"required,min=1"`
	PaymentMethod   *string `json:"payment_method,omitempty"`
	ReferenceNumber *string `json:"reference_number,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=unpaid paid"`
}
