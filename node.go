package bst

import "cmp"

func (n *treeNode[K, V]) Key() K {
	return n.key
}

func (n *treeNode[K, V]) Value() V {
	return n.value
}

func (n *treeNode[K, V]) SetValue(value V) {
	n.value = value
}

func (n *treeNode[K, V]) Parent() Node[K, V] {
	return nodeOrNil(n.parent)
}

func (n *treeNode[K, V]) Left() Node[K, V] {
	return nodeOrNil(n.left)
}

func (n *treeNode[K, V]) Right() Node[K, V] {
	return nodeOrNil(n.right)
}

// minimum returns the smallest node of the subtree rooted at n.
func (n *treeNode[K, V]) minimum() *treeNode[K, V] {
	curr := n
	for curr.left != nil {
		curr = curr.left
	}
	return curr
}

// maximum returns the largest node of the subtree rooted at n.
func (n *treeNode[K, V]) maximum() *treeNode[K, V] {
	curr := n
	for curr.right != nil {
		curr = curr.right
	}
	return curr
}

// find descends from n comparing keys until a match or a nil link.
func (n *treeNode[K, V]) find(key K) *treeNode[K, V] {
	curr := n
	for curr != nil {
		switch cmp.Compare(key, curr.key) {
		case -1:
			curr = curr.left
		case 1:
			curr = curr.right
		default:
			return curr
		}
	}
	return nil
}

// insert descends from n to the nil slot dictated by the key order and
// creates the new node there. Returns ErrDuplicateKey if the key is
// already present; nothing is modified in that case.
func (n *treeNode[K, V]) insert(key K, value V) (*treeNode[K, V], error) {
	curr := n
	for {
		switch cmp.Compare(key, curr.key) {
		case -1:
			if curr.left == nil {
				curr.left = &treeNode[K, V]{key: key, value: value, parent: curr}
				return curr.left, nil
			}
			curr = curr.left
		case 1:
			if curr.right == nil {
				curr.right = &treeNode[K, V]{key: key, value: value, parent: curr}
				return curr.right, nil
			}
			curr = curr.right
		default:
			return nil, ErrDuplicateKey
		}
	}
}

// predecessor returns the largest node smaller than n: the maximum of
// the left subtree if there is one, otherwise the first ancestor
// reached through a right-child link.
func (n *treeNode[K, V]) predecessor() *treeNode[K, V] {
	if n.left != nil {
		return n.left.maximum()
	}
	curr, parent := n, n.parent
	for parent != nil && curr == parent.left {
		curr, parent = parent, parent.parent
	}
	return parent
}

// successor is the mirror of predecessor.
func (n *treeNode[K, V]) successor() *treeNode[K, V] {
	if n.right != nil {
		return n.right.minimum()
	}
	curr, parent := n, n.parent
	for parent != nil && curr == parent.right {
		curr, parent = parent, parent.parent
	}
	return parent
}

func (n *treeNode[K, V]) Predecessor() Node[K, V] {
	return nodeOrNil(n.predecessor())
}

func (n *treeNode[K, V]) Successor() Node[K, V] {
	return nodeOrNil(n.successor())
}

// walk visits the subtree rooted at n in order, using an explicit
// ancestor stack so stack usage stays bounded by tree height instead
// of call depth. Returns false if the callback stopped the walk.
func (n *treeNode[K, V]) walk(visit Callback[K, V]) bool {
	stack := make([]*treeNode[K, V], 0, 16)
	curr := n
	for curr != nil || len(stack) > 0 {
		for curr != nil {
			stack = append(stack, curr)
			curr = curr.left
		}
		curr = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(curr) {
			return false
		}
		curr = curr.right
	}
	return true
}

func (n *treeNode[K, V]) Traverse(visit Callback[K, V]) {
	n.walk(visit)
}

// remove evicts n from its tree and returns the node that now occupies
// n's old position, or nil. Every other node keeps its key, value and
// identity; the substitute node is physically relocated rather than
// copied over n, so references held to it stay valid.
//
// When n has two children the substitute alternates between the
// predecessor (n is the root or a left child) and the successor (n is
// a right child) to avoid skewing the tree toward one side after
// repeated removals. This is a heuristic only; no balance is
// guaranteed.
func (n *treeNode[K, V]) remove() *treeNode[K, V] {
	var repl *treeNode[K, V]

	switch {
	case n.right == nil:
		repl = n.left
	case n.left == nil:
		repl = n.right
	case n.parent == nil || n == n.parent.left:
		// a predecessor found via maximum() has no right child
		repl = n.left.maximum()
		if repl != n.left {
			repl.replaceWith(repl.left)
			repl.adoptLeftChild(n)
		}
		repl.adoptRightChild(n)
	default:
		// mirrored with the successor, which has no left child
		repl = n.right.minimum()
		if repl != n.right {
			repl.replaceWith(repl.right)
			repl.adoptRightChild(n)
		}
		repl.adoptLeftChild(n)
	}

	n.replaceWith(repl)
	return repl
}

// replaceWith rewrites the parent's child link that points at n to
// point at repl instead, and reparents repl accordingly. n's own
// fields are left untouched.
func (n *treeNode[K, V]) replaceWith(repl *treeNode[K, V]) {
	if p := n.parent; p != nil {
		if p.left == n {
			p.left = repl
		} else {
			p.right = repl
		}
	}
	if repl != nil {
		repl.parent = n.parent
	}
}

// adoptLeftChild transfers from's left child to n. The child must exist.
func (n *treeNode[K, V]) adoptLeftChild(from *treeNode[K, V]) {
	n.left = from.left
	n.left.parent = n
}

// adoptRightChild transfers from's right child to n. The child must exist.
func (n *treeNode[K, V]) adoptRightChild(from *treeNode[K, V]) {
	n.right = from.right
	n.right.parent = n
}
