// Package indexedpq fuses a minheap.Heap and an orderedindex.Index into a
// priority queue that can also be queried and re-ranked by key.
//
// Both structures hold the same logical entry: the index maps a key to the heap's
// *minheap.Entry handle, so a payload reached through Lookup is the very payload the
// heap will later return, and a priority change made by key lands on the live heap
// slot. Every priority change goes through the heap (DecreasePriority or Reprioritize);
// there is no way to edit a priority without re-establishing heap order.
//
// Invariant:
//
//	At every observable point the set of keys in the index equals the set of keys of
//	live heap entries, and each key maps to exactly one entry. Verify checks this and
//	reports ErrStructuralViolation; it exists for tests and debugging.
//
// Complexity (n = entries, h = index height):
//
//   - Enqueue:                         O(h + log n)
//   - DequeueMin, Remove:              O(h + log n)
//   - Exists, Lookup, Priority:        O(h)
//   - DecreasePriority, Reprioritize:  O(h + log n)
//   - PeekMin, Len:                    O(1)
//   - Verify:                          O(n·h)
//
// Errors:
//
//   - ErrDuplicateKey:        Enqueue with a key that is already queued.
//   - ErrKeyNotFound:         re-ranking or removing an absent key.
//   - ErrStructuralViolation: Verify found heap and index out of step.
//   - minheap.ErrPriorityIncrease passes through from DecreasePriority.
//
// A Queue is not safe for concurrent use.
package indexedpq
