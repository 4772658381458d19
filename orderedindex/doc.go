// Package orderedindex provides an unbalanced binary search tree keyed by any
// ordered type, used as a by-key index: existence, lookup and removal.
//
// Ordering rules:
//
//   - Add walks from the root, going left when the key is strictly less than the
//     node key and right otherwise, and attaches at the first empty child slot.
//     Equal keys therefore land in the right subtree; Add never overwrites.
//   - Search returns the first matching node met on the root-to-leaf walk.
//   - Remove deletes that same node: a leaf is detached, a one-child node is replaced
//     by its only subtree, and a two-child node takes the key and value of its in-order
//     successor (leftmost node of the right subtree), which is then spliced out.
//
// The tree does not rebalance. Height is O(log n) for random key order and O(n) for
// sorted insertion; the grids this index serves keep n small.
//
// Complexity (h = tree height):
//
//   - Add, Exists, Search, Remove, Min, Max: O(h).
//   - Walk, Keys: O(n) time, O(h) extra memory.
//   - Height: O(n).
//
// An Index is not safe for concurrent use.
package orderedindex
