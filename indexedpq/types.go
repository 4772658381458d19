package indexedpq

import "errors"

// Sentinel errors for indexed priority queue operations.
var (
	// ErrDuplicateKey indicates an Enqueue for a key that is already queued.
	ErrDuplicateKey = errors.New("indexedpq: key already queued")

	// ErrKeyNotFound indicates an operation on a key that is not queued.
	ErrKeyNotFound = errors.New("indexedpq: key not found")

	// ErrStructuralViolation indicates the heap and the index disagree.
	// Only reachable through a bug; surfaced by Verify.
	ErrStructuralViolation = errors.New("indexedpq: heap and index out of step")
)

// keyed is the heap payload: the caller's value plus the key that indexes it,
// so a heap extraction can find its index node.
type keyed[K comparable, V any] struct {
	key   K
	value V
}
