// Package confirm implements the two-phase propose-then-confirm gate used
// before destructive application transitions (withdraw, accept, reject).
//
// Valid state graph:
//
//	idle ──► proposed ──► confirmed
//	              │
//	              └─────► abandoned
//
// Confirming or abandoning settles the gate; a new Propose starts it over.
// The gate is deliberately decoupled from the mutation it guards, so the
// mutation stays callable without the ceremony where it isn't needed.
package confirm

import "thejulge/internal/pkg/errs"

type State string

const (
	StateIdle      State = "idle"
	StateProposed  State = "proposed"
	StateConfirmed State = "confirmed"
	StateAbandoned State = "abandoned"
)

var (
	ErrNothingProposed = errs.New("no action has been proposed")
	ErrAlreadyProposed = errs.New("an action is already awaiting confirmation")
)

// Gate holds at most one proposed action of type T.
type Gate[T any] struct {
	state  State
	action T
}

func NewGate[T any]() *Gate[T] {
	return &Gate[T]{state: StateIdle}
}

func (g *Gate[T]) State() State {
	return g.state
}

// Propose stages an action for confirmation. It fails while another proposal
// is pending; settled gates (confirmed/abandoned) accept a new proposal.
func (g *Gate[T]) Propose(action T) error {
	if g.state == StateProposed {
		return ErrAlreadyProposed
	}
	g.state = StateProposed
	g.action = action
	return nil
}

// Confirm settles the pending proposal and hands the action back for
// execution.
func (g *Gate[T]) Confirm() (T, error) {
	var zero T
	if g.state != StateProposed {
		return zero, ErrNothingProposed
	}
	g.state = StateConfirmed
	action := g.action
	g.action = zero
	return action, nil
}

// Abandon discards the pending proposal without executing it.
func (g *Gate[T]) Abandon() error {
	if g.state != StateProposed {
		return ErrNothingProposed
	}
	g.state = StateAbandoned
	var zero T
	g.action = zero
	return nil
}

// Pending returns the staged action, if any, without settling the gate.
func (g *Gate[T]) Pending() (T, bool) {
	var zero T
	if g.state != StateProposed {
		return zero, false
	}
	return g.action, true
}
