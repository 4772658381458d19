// Package minheap implements an array-backed binary min-heap with stable handles.
//
// What:
//
//   - Insert returns a *Entry handle that stays valid until the entry leaves the heap.
//   - PeekMin / ExtractMin return the minimum-priority entry and an ok flag;
//     an empty heap yields ok == false, never a panic.
//   - DecreasePriority lowers a live entry's priority and sifts it up from its
//     current slot, so A*-style relaxations keep the heap ordered in O(log n).
//   - Update and Remove handle the general cases (either direction, arbitrary slot).
//
// Ordering:
//
//	Priorities are any integer or floating-point type (Number). Sift-up swaps only
//	while the parent is strictly greater and stops at the first slot where the heap
//	property holds. Sift-down picks the smaller child, the left child on ties.
//	Equal priorities therefore come out in an order that is deterministic for a given
//	operation sequence but is not insertion order.
//
// Complexity:
//
//   - Insert, ExtractMin, DecreasePriority, Update, Remove: O(log n).
//   - PeekMin, Len: O(1).
//   - Verify: O(n).
//
// Errors:
//
//   - ErrStaleHandle:      the handle is nil, already removed, or belongs to another heap.
//   - ErrPriorityIncrease: DecreasePriority was given a larger priority.
//   - ErrHeapViolation:    Verify found a parent greater than its child or a broken index.
//
// A Heap is not safe for concurrent use.
package minheap
