package entity

import "time"

// BlockedSlot blacks out a date. With no start/end the entire day is
// unavailable regardless of bookings; with both set only that window is.
type BlockedSlot struct {
	BaseSimple
	Date      time.Time `db:"date"` // date only, midnight UTC
	StartTime *string   `db:"start_time"`
	EndTime   *string   `db:"end_time"`
	Reason    *string   `db:"reason"`
}

// FullDay reports whether the blackout covers the whole day.
func (b *BlockedSlot) FullDay() bool {
	return b.StartTime == nil || b.EndTime == nil
}
