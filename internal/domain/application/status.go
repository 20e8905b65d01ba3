// Package application defines a worker's application to a notice and the
// state machine governing its status.
//
// Valid status graph:
//
//	pending ──► accepted
//	    │
//	    ├─────► rejected
//	    │
//	    └─────► canceled
//
// accepted, rejected and canceled are terminal states.
package application

import "fmt"

// Status values mirror the status enum of the remote job-board API.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusCanceled Status = "canceled"
)

// validTransitions lists every allowed (from → to) pair. The remote API may
// permit re-deciding a settled application, but this client never offers it.
var validTransitions = map[Status][]Status{
	StatusPending: {StatusAccepted, StatusRejected, StatusCanceled},
	// accepted, rejected and canceled have no outgoing transitions
}

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusAccepted, StatusRejected, StatusCanceled:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// IsTransitionAllowed returns true when moving from → to is permitted by the
// state machine.
func IsTransitionAllowed(from, to Status) bool {
	allowed, ok := validTransitions[from]
	if !ok {
		return false // terminal state
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	_, ok := validTransitions[s]
	return !ok
}

// IsApplied reports whether the application still occupies the notice from the
// worker's point of view. Rejection is not withdrawal: a rejected application
// keeps the detail view in its "withdraw" affordance. Only an explicit cancel
// frees the notice.
func (s Status) IsApplied() bool {
	return s != StatusCanceled
}

func (s Status) String() string {
	return string(s)
}
