package schedule

import (
	"errors"
	"testing"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"09:30", 570},
		{"21:00", 1260},
		{"23:59", 1439},
		{"14:00:00", 840}, // seconds component ignored
	}

	for _, tt := range tests {
		got, err := ToMinutes(tt.in)
		if err != nil {
			t.Fatalf("ToMinutes(%q) returned error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestToMinutes_Malformed(t *testing.T) {
	for _, in := range []string{"", "9", "ab:cd", "24:00", "12:60", "-1:30", "12:", "12:3:4:5"} {
		_, err := ToMinutes(in)
		if err == nil {
			t.Errorf("ToMinutes(%q) expected error, got none", in)
			continue
		}
		if !errors.Is(err, ErrFormat) {
			t.Errorf("ToMinutes(%q) error = %v, want ErrFormat", in, err)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	if got := FormatMinutes(540); got != "09:00" {
		t.Errorf("FormatMinutes(540) = %q, want \"09:00\"", got)
	}
	if got := FormatMinutes(1290); got != "21:30" {
		t.Errorf("FormatMinutes(1290) = %q, want \"21:30\"", got)
	}
}

func TestFormat12Hour(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "12:00 AM"},
		{540, "9:00 AM"},
		{720, "12:00 PM"},
		{750, "12:30 PM"},
		{810, "1:30 PM"},
		{1260, "9:00 PM"},
	}

	for _, tt := range tests {
		if got := Format12Hour(tt.in); got != tt.want {
			t.Errorf("Format12Hour(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		startA, durA, startB, durB     int
		want                           bool
	}{
		{"disjoint", 540, 60, 700, 60, false},
		{"contained", 600, 120, 630, 30, true},
		{"partial", 570, 60, 600, 120, true},
		{"identical", 600, 60, 600, 60, true},
		{"touching end-to-start", 540, 60, 600, 60, false},
		{"touching start-to-end", 600, 60, 540, 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.startA, tt.durA, tt.startB, tt.durB); got != tt.want {
				t.Errorf("Overlaps(%d,%d,%d,%d) = %v, want %v",
					tt.startA, tt.durA, tt.startB, tt.durB, got, tt.want)
			}
			// must be symmetric
			if got := Overlaps(tt.startB, tt.durB, tt.startA, tt.durA); got != tt.want {
				t.Errorf("Overlaps not symmetric for %s", tt.name)
			}
		})
	}
}
