// Package astar defines the options, heuristics, result type and sentinel
// errors for grid A* search.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by FindPath.
//
// Every input error wraps ErrInvalidInput, so callers may match either the
// specific cause or the whole class with errors.Is.
var (
	// ErrInvalidInput is the parent of all input-validation errors.
	ErrInvalidInput = errors.New("astar: invalid input")

	// ErrInvalidBounds indicates bounds with X < 1 or Y < 1 (no traversable cell).
	ErrInvalidBounds = fmt.Errorf("%w: bounds must be at least (1,1)", ErrInvalidInput)

	// ErrSourceOutOfBounds indicates a source outside (0, bounds] on either axis.
	ErrSourceOutOfBounds = fmt.Errorf("%w: source outside grid", ErrInvalidInput)

	// ErrDestinationOutOfBounds indicates a destination outside (0, bounds] on either axis.
	ErrDestinationOutOfBounds = fmt.Errorf("%w: destination outside grid", ErrInvalidInput)

	// ErrSourceBlocked indicates the source cell is in the blocked set.
	ErrSourceBlocked = fmt.Errorf("%w: source is blocked", ErrInvalidInput)

	// ErrDestinationBlocked indicates the destination cell is in the blocked set.
	ErrDestinationBlocked = fmt.Errorf("%w: destination is blocked", ErrInvalidInput)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrNotFound is returned only by Result.PathOrErr when no path exists.
	// FindPath itself reports an unreachable destination with Result.Found == false.
	ErrNotFound = errors.New("astar: no path to destination")
)

// Heuristic estimates the remaining cost from a cell to the destination.
// It must never overestimate for FindPath to return shortest paths.
type Heuristic func(from, to grid.Coordinate) int

// Manhattan is the default heuristic: |dx| + |dy|. Admissible and consistent
// for unit-cost 4-connected movement.
func Manhattan(from, to grid.Coordinate) int {
	return grid.Manhattan(from, to)
}

// SingleAxis measures only |dx|. It never overestimates, but it ignores vertical
// distance, so the search expands more cells and equal-cost ties may resolve to a
// longer route. Kept for comparing expansion counts against Manhattan.
func SingleAxis(from, to grid.Coordinate) int {
	d := from.X - to.X
	if d < 0 {
		return -d
	}

	return d
}

// Options configures a FindPath call.
type Options struct {
	// Heuristic estimates remaining cost. Default: Manhattan.
	Heuristic Heuristic

	// MaxExpansions, if > 0, stops the search after that many nodes have been
	// expanded. The result is then Found == false with Truncated == true.
	// 0 means no limit.
	MaxExpansions int

	// CheckInvariants verifies open/closed queue consistency after every
	// expansion. Intended for tests; it makes each expansion O(n·h).
	CheckInvariants bool

	// OnExpand is called when a node is popped from the open set.
	OnExpand func(c grid.Coordinate, g, f int)

	// OnEnqueue is called when a newly discovered cell enters the open set.
	OnEnqueue func(c grid.Coordinate, g, f int)

	// OnReprioritize is called when a cheaper route lowers an open cell's f.
	OnReprioritize func(c grid.Coordinate, oldF, newF int)

	// internal error recorded during option parsing
	err error
}

// Option configures FindPath via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - Manhattan heuristic
//   - no expansion limit
//   - invariant checks off
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Heuristic:       Manhattan,
		MaxExpansions:   0,
		CheckInvariants: false,
		OnExpand:        func(grid.Coordinate, int, int) {},
		OnEnqueue:       func(grid.Coordinate, int, int) {},
		OnReprioritize:  func(grid.Coordinate, int, int) {},
		err:             nil,
	}
}

// WithHeuristic replaces the default Manhattan heuristic. nil is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithMaxExpansions caps the number of expanded nodes.
//
//	n > 0:  stop after n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithInvariantChecks enables open/closed consistency checks after every expansion.
func WithInvariantChecks() Option {
	return func(o *Options) {
		o.CheckInvariants = true
	}
}

// WithOnExpand registers a callback run for every expanded node.
func WithOnExpand(fn func(c grid.Coordinate, g, f int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnEnqueue registers a callback run when a cell first enters the open set.
func WithOnEnqueue(fn func(c grid.Coordinate, g, f int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnReprioritize registers a callback run when an open cell gets a cheaper route.
func WithOnReprioritize(fn func(c grid.Coordinate, oldF, newF int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnReprioritize = fn
		}
	}
}

// Result is the outcome of FindPath.
//
//   - Path: steps from the cell after the source up to and including the
//     destination. Empty (non-nil) when source == destination; nil when !Found.
//   - Found: whether the destination was reached. false is a normal outcome.
//   - Cost: number of steps (len(Path)) when Found.
//   - Expanded: nodes popped from the open set.
//   - Reprioritized: open cells whose f was lowered in place.
//   - Truncated: the search stopped at MaxExpansions before exhausting the open set.
type Result struct {
	Path          []grid.Coordinate
	Found         bool
	Cost          int
	Expanded      int
	Reprioritized int
	Truncated     bool
}

// PathOrErr returns Path, or ErrNotFound when the destination was not reached.
func (r *Result) PathOrErr() ([]grid.Coordinate, error) {
	if r.Found {
		return r.Path, nil
	}
	if r.Truncated {
		return nil, fmt.Errorf("%w: stopped after %d expansions", ErrNotFound, r.Expanded)
	}

	return nil, ErrNotFound
}
