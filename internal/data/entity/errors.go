package entity

import "errors"

// Shared error taxonomy. Services wrap these with fmt.Errorf("...: %w", ...)
// and handlers map them with errors.Is.
var (
	// ErrValidation marks missing or out-of-range booking fields, a past
	// booking date, or a duration below the configured minimum.
	ErrValidation = errors.New("validation failed")

	// ErrSlotUnavailable means the requested interval overlapped a confirmed
	// booking (or a blackout) at submit time.
	ErrSlotUnavailable = errors.New("slot unavailable")

	// ErrConflict means the slot was claimed by another booking between the
	// availability check and the confirm write.
	ErrConflict = errors.New("booking conflict")

	// ErrNotFound is returned for an unknown booking, blocked slot or session id.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable means the backing store was unreachable or timed out.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrUnauthorized marks a failed admin login or a missing/expired session.
	ErrUnauthorized = errors.New("unauthorized")
)
