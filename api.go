package bst

import "cmp"

// Tree is an ordered map backed by an unbalanced binary search tree.
// Keys are unique and kept in ascending order; no rebalancing is ever
// performed, so all logarithmic bounds are expected-case only.
//
// A Tree is not safe for concurrent use.
type Tree[K cmp.Ordered, V any] interface {
	// Insert adds a new key/value pair and returns the created node.
	// It returns ErrDuplicateKey if the key is already present; the
	// tree is left unmodified in that case.
	Insert(key K, value V) (Node[K, V], error)

	// Remove evicts the node holding key. It returns ErrKeyNotFound
	// if the key is absent; the tree is left unmodified in that case.
	Remove(key K) error

	// RemoveNode evicts a node previously obtained from this tree,
	// skipping the key lookup. It returns the node now occupying the
	// removed node's old position, or nil. The node must belong to
	// this tree.
	RemoveNode(n Node[K, V]) Node[K, V]

	// Get returns the node holding key, or nil if the key is absent.
	Get(key K) Node[K, V]

	Contains(key K) bool

	// Min and Max return the nodes with the smallest and largest keys,
	// or nil if the tree is empty.
	Min() Node[K, V]
	Max() Node[K, V]

	// Floor returns the node with the largest key <= key, Ceiling the
	// node with the smallest key >= key, or nil if no such node exists.
	Floor(key K) Node[K, V]
	Ceiling(key K) Node[K, V]

	Size() int

	// Traverse walks the tree in ascending key order, calling visit
	// once per node until it returns false. The callback must not
	// mutate the tree.
	Traverse(visit Callback[K, V])

	Iterator() Iterator[K, V]
}

// Iterator walks the tree in ascending key order. Mutating the tree
// invalidates the iterator.
type Iterator[K cmp.Ordered, V any] interface {
	HasNext() bool
	Next() (Node[K, V], error)
}

// Node is a single key/value pair in a tree. A node's key and identity
// never change after insertion; only removing that specific node
// invalidates it. Structural links may only be rewritten through the
// owning tree's operations.
type Node[K cmp.Ordered, V any] interface {
	Key() K
	Value() V

	// SetValue overwrites the node's value in place. The value is
	// opaque to the tree, so this never moves the node.
	SetValue(value V)

	Parent() Node[K, V]
	Left() Node[K, V]
	Right() Node[K, V]

	// Predecessor and Successor return the nodes immediately before
	// and after this one in key order, or nil at the boundary. A single
	// call is O(log n); to visit a whole subtree use Traverse instead,
	// which is O(n) rather than O(n log n).
	Predecessor() Node[K, V]
	Successor() Node[K, V]

	// Traverse walks the subtree rooted at this node in ascending key
	// order until visit returns false.
	Traverse(visit Callback[K, V])
}

func New[K cmp.Ordered, V any]() Tree[K, V] {
	return &tree[K, V]{}
}
