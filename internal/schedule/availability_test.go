package schedule

import "testing"

func TestIsAvailable_AroundConfirmedBooking(t *testing.T) {
	// One confirmed booking 10:00 for 2 hours occupies 10:00-12:00.
	busy := []Interval{{Start: 600, Duration: 120}}
	closing := 1260 // 21:00

	tests := []struct {
		name     string
		start    int
		duration int
		want     bool
	}{
		{"ends at booking start", 540, 60, true},    // 09:00-10:00 touches only
		{"runs into booking", 570, 60, false},       // 09:30-10:30 overlaps
		{"starts at booking end", 720, 60, true},    // 12:00-13:00
		{"inside booking", 630, 30, false},          // 10:30-11:00
		{"spans whole booking", 570, 240, false},    // 09:30-13:30
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAvailable(tt.start, tt.duration, busy, closing); got != tt.want {
				t.Errorf("IsAvailable(%d, %d) = %v, want %v", tt.start, tt.duration, got, tt.want)
			}
		})
	}
}

func TestIsAvailable_ClosingBound(t *testing.T) {
	// 20:00 for 2 hours would end 22:00, past a 21:00 close.
	if IsAvailable(1200, 120, nil, 1260) {
		t.Error("booking past closing time reported available")
	}
	// 19:00 for 2 hours ends exactly at closing: allowed.
	if !IsAvailable(1140, 120, nil, 1260) {
		t.Error("booking ending exactly at closing reported unavailable")
	}
}

func TestAnnotateSlots_KeepsEverySlot(t *testing.T) {
	// Confirmed booking 14:00 for 3 hours (14:00-17:00), closing 21:00,
	// requested duration 2 hours.
	busy := []Interval{{Start: 840, Duration: 180}}
	slots := GenerateSlots(540, 1260, 30)

	annotated := AnnotateSlots(slots, 120, busy, 1260)
	if len(annotated) != len(slots) {
		t.Fatalf("annotation dropped slots: %d != %d", len(annotated), len(slots))
	}

	byStart := make(map[int]bool, len(annotated))
	for _, s := range annotated {
		byStart[s.Start] = s.Available
	}

	if byStart[780] { // 13:00-15:00 overlaps
		t.Error("13:00 should be unavailable")
	}
	if !byStart[1020] { // 17:00-19:00 is free
		t.Error("17:00 should be available")
	}
	if byStart[1200] { // 20:00-22:00 exceeds closing
		t.Error("20:00 should be unavailable")
	}
	if !byStart[540] { // 09:00-11:00 is free
		t.Error("09:00 should be available")
	}
}
