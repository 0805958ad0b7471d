package response

// SlotResponse annotates one candidate start time. Unavailable slots stay
// in the list so the widget can render them disabled.
type SlotResponse struct {
	Time      string `json:"time"`  // HH:MM
	Label     string `json:"label"` // 12-hour display, e.g. "9:00 AM"
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	Date          string         `json:"date"`
	DurationHours int            `json:"duration_hours"`
	Slots         []SlotResponse `json:"slots"`
}
