package bst

import (
	"cmp"
	"errors"
)

var (
	ErrDuplicateKey = errors.New("Key is already present in the tree")
	ErrKeyNotFound  = errors.New("Key is not present in the tree")
	ErrNoMoreNodes  = errors.New("There are no more nodes in the tree")
)

type (
	tree[K cmp.Ordered, V any] struct {
		size int
		root *treeNode[K, V]
	}

	// treeNode owns its children; parent is a non-owning back
	// reference kept consistent with the child links on every
	// mutation.
	treeNode[K cmp.Ordered, V any] struct {
		key    K
		value  V
		parent *treeNode[K, V]
		left   *treeNode[K, V]
		right  *treeNode[K, V]
	}

	// Callback is invoked once per visited node; returning false
	// stops the walk.
	Callback[K cmp.Ordered, V any] func(n Node[K, V]) bool

	iterator[K cmp.Ordered, V any] struct {
		// ancestors still awaiting their in-order visit, deepest last
		stack []*treeNode[K, V]
	}
)

// nodeOrNil keeps absent results as untyped nil interfaces.
func nodeOrNil[K cmp.Ordered, V any](n *treeNode[K, V]) Node[K, V] {
	if n == nil {
		return nil
	}
	return n
}
