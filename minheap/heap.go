package minheap

import "fmt"

// Heap is a binary min-heap of entries ordered by priority.
type Heap[P Number, V any] struct {
	items []*Entry[P, V]
}

// New returns an empty heap with room for capacity entries.
func New[P Number, V any](capacity int) *Heap[P, V] {
	if capacity < 0 {
		capacity = 0
	}

	return &Heap[P, V]{items: make([]*Entry[P, V], 0, capacity)}
}

// Len returns the number of entries in the heap.
func (h *Heap[P, V]) Len() int { return len(h.items) }

// Insert appends a new entry and sifts it up. The returned handle can be passed
// to DecreasePriority, Update or Remove while the entry is live.
// Complexity: O(log n).
func (h *Heap[P, V]) Insert(priority P, value V) *Entry[P, V] {
	e := &Entry[P, V]{priority: priority, value: value, index: len(h.items), owner: h}
	h.items = append(h.items, e)
	h.up(e.index)

	return e
}

// PeekMin returns the minimum entry without removing it.
// ok is false when the heap is empty.
func (h *Heap[P, V]) PeekMin() (e *Entry[P, V], ok bool) {
	if len(h.items) == 0 {
		return nil, false
	}

	return h.items[0], true
}

// ExtractMin removes and returns the minimum entry. The returned handle is no
// longer live. ok is false when the heap is empty.
// Complexity: O(log n).
func (h *Heap[P, V]) ExtractMin() (e *Entry[P, V], ok bool) {
	n := len(h.items) - 1
	if n < 0 {
		return nil, false
	}
	h.swap(0, n)
	e = h.pop()
	h.down(0)

	return e, true
}

// DecreasePriority lowers e's priority to p and restores heap order by sifting
// e up from its current slot. p equal to the current priority is a no-op.
// Returns ErrStaleHandle for a dead handle and ErrPriorityIncrease if p is larger.
// Complexity: O(log n).
func (h *Heap[P, V]) DecreasePriority(e *Entry[P, V], p P) error {
	if err := h.own(e); err != nil {
		return err
	}
	if p > e.priority {
		return fmt.Errorf("%w: %v > %v", ErrPriorityIncrease, p, e.priority)
	}
	e.priority = p
	h.up(e.index)

	return nil
}

// Update sets e's priority to p in either direction and restores heap order.
// Complexity: O(log n).
func (h *Heap[P, V]) Update(e *Entry[P, V], p P) error {
	if err := h.own(e); err != nil {
		return err
	}
	e.priority = p
	if !h.down(e.index) {
		h.up(e.index)
	}

	return nil
}

// Remove deletes e from any slot. The handle is no longer live afterwards.
// Complexity: O(log n).
func (h *Heap[P, V]) Remove(e *Entry[P, V]) error {
	if err := h.own(e); err != nil {
		return err
	}
	i, n := e.index, len(h.items)-1
	if i != n {
		h.swap(i, n)
	}
	h.pop()
	if i != n {
		if !h.down(i) {
			h.up(i)
		}
	}

	return nil
}

// Verify checks the heap property and slot bookkeeping of every entry.
// Complexity: O(n).
func (h *Heap[P, V]) Verify() error {
	for i, e := range h.items {
		if e == nil || e.index != i || e.owner != h {
			return fmt.Errorf("%w: slot %d has wrong bookkeeping", ErrHeapViolation, i)
		}
		if i > 0 {
			parent := (i - 1) / 2
			if h.items[parent].priority > e.priority {
				return fmt.Errorf("%w: slot %d (%v) above slot %d (%v)",
					ErrHeapViolation, parent, h.items[parent].priority, i, e.priority)
			}
		}
	}

	return nil
}

// Entries returns the live entries in slot order. The slice is a copy;
// the entries are shared.
func (h *Heap[P, V]) Entries() []*Entry[P, V] {
	out := make([]*Entry[P, V], len(h.items))
	copy(out, h.items)

	return out
}

func (h *Heap[P, V]) own(e *Entry[P, V]) error {
	if e == nil || e.owner != h || e.index < 0 || e.index >= len(h.items) || h.items[e.index] != e {
		return ErrStaleHandle
	}

	return nil
}

// up moves slot j toward the root while its parent is strictly greater.
func (h *Heap[P, V]) up(j int) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if h.items[i].priority <= h.items[j].priority {
			break
		}
		h.swap(i, j)
		j = i
	}
}

// down moves slot i0 toward the leaves, always swapping with the smaller child
// (left on ties). Reports whether the entry moved.
func (h *Heap[P, V]) down(i0 int) bool {
	n := len(h.items)
	i := i0
	for {
		left := 2*i + 1
		if left >= n || left < 0 { // left < 0 after int overflow
			break
		}
		j := left
		if right := left + 1; right < n && h.items[right].priority < h.items[left].priority {
			j = right
		}
		if h.items[j].priority >= h.items[i].priority {
			break
		}
		h.swap(i, j)
		i = j
	}

	return i > i0
}

func (h *Heap[P, V]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].index = i
	h.items[j].index = j
}

// pop detaches the last slot and marks its entry dead.
func (h *Heap[P, V]) pop() *Entry[P, V] {
	n := len(h.items) - 1
	e := h.items[n]
	h.items[n] = nil // avoid memory leak
	h.items = h.items[:n]
	e.index = -1
	e.owner = nil

	return e
}
