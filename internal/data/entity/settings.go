package entity

import "time"

// SiteSettings is a singleton row (id = 1). Read-only input to the
// availability engine; mutated only through the settings service.
type SiteSettings struct {
	ID           int       `db:"id"`
	SiteName     string    `db:"site_name"`
	OpeningTime  string    `db:"opening_time"` // HH:MM
	ClosingTime  string    `db:"closing_time"` // HH:MM
	HourlyRate   float64   `db:"hourly_rate"`
	MinimumHours int       `db:"minimum_hours"`
	GcashQRImage string    `db:"gcash_qr_image"`
	MessengerID  string    `db:"messenger_id"`
	UpdatedAt    time.Time `db:"updated_at"`
}
