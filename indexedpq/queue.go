package indexedpq

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/gridpath/minheap"
	"github.com/katalvlaran/gridpath/orderedindex"
)

// Queue is a min-priority queue whose entries are also addressable by key.
type Queue[K constraints.Ordered, P minheap.Number, V any] struct {
	heap  *minheap.Heap[P, keyed[K, V]]
	index *orderedindex.Index[K, *minheap.Entry[P, keyed[K, V]]]
}

// New returns an empty Queue sized for capacity entries.
func New[K constraints.Ordered, P minheap.Number, V any](capacity int) *Queue[K, P, V] {
	return &Queue[K, P, V]{
		heap:  minheap.New[P, keyed[K, V]](capacity),
		index: orderedindex.New[K, *minheap.Entry[P, keyed[K, V]]](),
	}
}

// Len returns the number of queued entries.
func (q *Queue[K, P, V]) Len() int { return q.heap.Len() }

// Enqueue inserts value under key with the given priority.
// The index stores the heap's own entry, not a copy.
func (q *Queue[K, P, V]) Enqueue(priority P, key K, value V) error {
	if q.index.Exists(key) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	e := q.heap.Insert(priority, keyed[K, V]{key: key, value: value})
	q.index.Add(key, e)

	return nil
}

// DequeueMin removes the minimum-priority entry from both structures and
// returns its value. ok is false when the queue is empty.
func (q *Queue[K, P, V]) DequeueMin() (value V, ok bool) {
	e, ok := q.heap.ExtractMin()
	if !ok {
		return value, false
	}
	q.index.Remove(e.Value().key)

	return e.Value().value, true
}

// PeekMin returns the minimum entry's key, value and priority without removing it.
func (q *Queue[K, P, V]) PeekMin() (key K, value V, priority P, ok bool) {
	e, ok := q.heap.PeekMin()
	if !ok {
		return key, value, priority, false
	}

	return e.Value().key, e.Value().value, e.Priority(), true
}

// Exists reports whether key is queued.
func (q *Queue[K, P, V]) Exists(key K) bool {
	return q.index.Exists(key)
}

// Lookup returns the value queued under key. With a pointer V the result
// aliases the queued payload, so in-place edits are seen by later extraction.
func (q *Queue[K, P, V]) Lookup(key K) (value V, ok bool) {
	e, ok := q.index.Search(key)
	if !ok {
		return value, false
	}

	return e.Value().value, true
}

// Priority returns the current priority of key.
func (q *Queue[K, P, V]) Priority(key K) (priority P, ok bool) {
	e, ok := q.index.Search(key)
	if !ok {
		return priority, false
	}

	return e.Priority(), true
}

// DecreasePriority lowers key's priority and sifts its heap slot up.
// Returns ErrKeyNotFound for an absent key and minheap.ErrPriorityIncrease
// if p is greater than the current priority.
func (q *Queue[K, P, V]) DecreasePriority(key K, p P) error {
	e, ok := q.index.Search(key)
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	return q.heap.DecreasePriority(e, p)
}

// Reprioritize sets key's priority to p in either direction.
func (q *Queue[K, P, V]) Reprioritize(key K, p P) error {
	e, ok := q.index.Search(key)
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	return q.heap.Update(e, p)
}

// Remove deletes key from both structures and returns its value.
func (q *Queue[K, P, V]) Remove(key K) (value V, ok bool) {
	e, ok := q.index.Search(key)
	if !ok {
		return value, false
	}
	if err := q.heap.Remove(e); err != nil {
		return value, false
	}
	q.index.Remove(key)

	return e.Value().value, true
}

// Keys returns the queued keys in ascending key order.
func (q *Queue[K, P, V]) Keys() []K {
	return q.index.Keys()
}

// Verify checks that heap and index hold exactly the same entries and that
// the heap property holds.
func (q *Queue[K, P, V]) Verify() error {
	if err := q.heap.Verify(); err != nil {
		return fmt.Errorf("%w: %v", ErrStructuralViolation, err)
	}
	if q.heap.Len() != q.index.Len() {
		return fmt.Errorf("%w: heap holds %d entries, index holds %d",
			ErrStructuralViolation, q.heap.Len(), q.index.Len())
	}
	for _, e := range q.heap.Entries() {
		got, ok := q.index.Search(e.Value().key)
		if !ok {
			return fmt.Errorf("%w: key %v in heap but not in index", ErrStructuralViolation, e.Value().key)
		}
		if got != e {
			return fmt.Errorf("%w: key %v maps to a different entry", ErrStructuralViolation, e.Value().key)
		}
	}
	var err error
	q.index.Walk(func(k K, e *minheap.Entry[P, keyed[K, V]]) bool {
		if !e.Live() {
			err = fmt.Errorf("%w: key %v indexes a dead entry", ErrStructuralViolation, k)
			return false
		}
		return true
	})

	return err
}
