package notice

import "time"

// Status is the effective lifecycle state of a notice. It is derived from the
// stored fields and wall-clock time, never persisted.
type Status string

const (
	// StatusActive: not closed and the shift has not started yet.
	StatusActive Status = "active"
	// StatusClosed: the owner closed the notice (or capacity was reached
	// server-side). Wins over time.
	StatusClosed Status = "closed"
	// StatusExpired: the shift start time has passed.
	StatusExpired Status = "expired"
)

// DeriveStatus derives the effective status of a notice. The closed flag takes
// priority regardless of time. A notice whose start time equals now is already
// expired: the active window is exclusive of startsAt.
func DeriveStatus(startsAt time.Time, closed bool, now time.Time) Status {
	if closed {
		return StatusClosed
	}
	if !now.Before(startsAt) {
		return StatusExpired
	}
	return StatusActive
}

// IsInactive reports whether the notice can no longer be applied to. Closed
// and expired notices differ only in the label shown to the user.
func (s Status) IsInactive() bool {
	return s == StatusClosed || s == StatusExpired
}

func (s Status) String() string {
	return string(s)
}
