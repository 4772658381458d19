package minheap

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for heap operations.
var (
	// ErrStaleHandle indicates an entry that is no longer (or never was) in this heap.
	ErrStaleHandle = errors.New("minheap: stale or foreign entry handle")

	// ErrPriorityIncrease indicates DecreasePriority was asked to raise a priority.
	ErrPriorityIncrease = errors.New("minheap: new priority is greater than current")

	// ErrHeapViolation indicates the heap property or slot bookkeeping is broken.
	ErrHeapViolation = errors.New("minheap: heap invariant violated")
)

// Number is the set of priority types a Heap can order.
type Number interface {
	constraints.Integer | constraints.Float
}

// Entry is a handle to one element of a Heap. The zero value is not usable;
// entries are created by Heap.Insert.
type Entry[P Number, V any] struct {
	priority P
	value    V
	index    int         // slot in owner.items; -1 once removed
	owner    *Heap[P, V] // nil once removed
}

// Priority returns the entry's current priority.
func (e *Entry[P, V]) Priority() P { return e.priority }

// Value returns the payload stored with the entry.
func (e *Entry[P, V]) Value() V { return e.value }

// Live reports whether the entry is still held by a heap.
func (e *Entry[P, V]) Live() bool { return e != nil && e.owner != nil }
