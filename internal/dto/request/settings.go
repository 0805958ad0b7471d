package request

type UpdateSettingsRequest struct {
	SiteName     string  `json:"site_name" validate:"required"`
	OpeningTime  string  `json:"opening_time" validate:"required"`
	ClosingTime  string  `json:"closing_time" validate:"required"`
	HourlyRate   float64 `json:"hourly_rate" validate:"required,gt=0"`
	MinimumHours int     `json:"minimum_hours" validate:"required,min=1"`
	GcashQRImage string  `json:"gcash_qr_image"`
	MessengerID  string  `json:"messenger_id"`
}
