package response

import "studio-booking/internal/data/entity"

type BlockedSlotResponse struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Reason    *string `json:"reason,omitempty"`
	FullDay   bool    `json:"full_day"`
}

func BlockedSlotToResponse(s *entity.BlockedSlot) BlockedSlotResponse {
	return BlockedSlotResponse{
		ID:        s.ID.String(),
		Date:      s.Date.Format("2006-01-02"),
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Reason:    s.Reason,
		FullDay:   s.FullDay(),
	}
}
