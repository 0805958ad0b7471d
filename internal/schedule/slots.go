package schedule

// GenerateSlots produces every candidate start time t with
// opening <= t <= closing, stepping by step minutes, ascending. The closing
// boundary is included; whether a duration still fits there is the
// availability check's job, not the generator's.
func GenerateSlots(opening, closing, step int) []int {
	if step <= 0 || closing < opening {
		return nil
	}

	slots := make([]int, 0, (closing-opening)/step+1)
	for t := opening; t <= closing; t += step {
		slots = append(slots, t)
	}
	return slots
}
