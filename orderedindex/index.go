package orderedindex

import "golang.org/x/exp/constraints"

type node[K constraints.Ordered, V any] struct {
	key         K
	value       V
	left, right *node[K, V]
}

// Index is a binary search tree mapping keys to values.
// The zero value is an empty index ready to use.
type Index[K constraints.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// New returns an empty Index.
func New[K constraints.Ordered, V any]() *Index[K, V] {
	return &Index[K, V]{}
}

// Len returns the number of stored entries, counting duplicates.
func (ix *Index[K, V]) Len() int { return ix.size }

// Add inserts (key, value) as a new leaf.
func (ix *Index[K, V]) Add(key K, value V) {
	link := &ix.root
	for *link != nil {
		if key < (*link).key {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}
	*link = &node[K, V]{key: key, value: value}
	ix.size++
}

// Exists reports whether key is present.
func (ix *Index[K, V]) Exists(key K) bool {
	return *ix.find(key) != nil
}

// Search returns the value stored under key. ok is false when key is absent.
func (ix *Index[K, V]) Search(key K) (value V, ok bool) {
	n := *ix.find(key)
	if n == nil {
		return value, false
	}

	return n.value, true
}

// Remove deletes one entry with the given key and reports whether one was found.
func (ix *Index[K, V]) Remove(key K) bool {
	link := ix.find(key)
	n := *link
	if n == nil {
		return false
	}
	switch {
	case n.left == nil:
		*link = n.right
	case n.right == nil:
		*link = n.left
	default:
		// Two children: copy the successor up, then splice it out.
		// The successor has no left child by construction.
		succ := &n.right
		for (*succ).left != nil {
			succ = &(*succ).left
		}
		n.key, n.value = (*succ).key, (*succ).value
		*succ = (*succ).right
	}
	ix.size--

	return true
}

// Min returns the smallest key and its value. ok is false on an empty index.
func (ix *Index[K, V]) Min() (key K, value V, ok bool) {
	n := ix.root
	if n == nil {
		return key, value, false
	}
	for n.left != nil {
		n = n.left
	}

	return n.key, n.value, true
}

// Max returns the largest key and its value. ok is false on an empty index.
func (ix *Index[K, V]) Max() (key K, value V, ok bool) {
	n := ix.root
	if n == nil {
		return key, value, false
	}
	for n.right != nil {
		n = n.right
	}

	return n.key, n.value, true
}

// Walk visits entries in ascending key order until fn returns false.
// fn must not modify the index.
func (ix *Index[K, V]) Walk(fn func(key K, value V) bool) {
	stack := make([]*node[K, V], 0, 16)
	n := ix.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n.key, n.value) {
			return
		}
		n = n.right
	}
}

// Keys returns all keys in ascending order.
func (ix *Index[K, V]) Keys() []K {
	out := make([]K, 0, ix.size)
	ix.Walk(func(k K, _ V) bool {
		out = append(out, k)
		return true
	})

	return out
}

// Height returns the number of nodes on the longest root-to-leaf path (0 when empty).
func (ix *Index[K, V]) Height() int {
	if ix.root == nil {
		return 0
	}
	level := []*node[K, V]{ix.root}
	h := 0
	for len(level) > 0 {
		h++
		next := level[:0:0]
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}

	return h
}

// find returns the link that points at the first node holding key,
// or the nil link where key would be attached.
func (ix *Index[K, V]) find(key K) **node[K, V] {
	link := &ix.root
	for *link != nil && (*link).key != key {
		if key < (*link).key {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}

	return link
}
