package response

import "studio-booking/internal/data/entity"

type SettingsResponse struct {
	SiteName     string  `json:"site_name"`
	OpeningTime  string  `json:"opening_time"`
	ClosingTime  string  `json:"closing_time"`
	HourlyRate   float64 `json:"hourly_rate"`
	MinimumHours int     `json:"minimum_hours"`
	GcashQRImage string  `json:"gcash_qr_image,omitempty"`
	MessengerID  string  `json:"messenger_id,omitempty"`
}

func SettingsToResponse(s *entity.SiteSettings) SettingsResponse {
	return SettingsResponse{
		SiteName:     s.SiteName,
		OpeningTime:  s.OpeningTime,
		ClosingTime:  s.ClosingTime,
		HourlyRate:   s.HourlyRate,
		MinimumHours: s.MinimumHours,
		GcashQRImage: s.GcashQRImage,
		MessengerID:  s.MessengerID,
	}
}
