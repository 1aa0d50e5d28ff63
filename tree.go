package bst

import "cmp"

func (t *tree[K, V]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree[K, V]) Insert(key K, value V) (Node[K, V], error) {
	var n *treeNode[K, V]
	if t.root == nil {
		n = &treeNode[K, V]{key: key, value: value}
		t.root = n
	} else {
		var err error
		if n, err = t.root.insert(key, value); err != nil {
			return nil, err
		}
	}
	t.size++
	return n, nil
}

func (t *tree[K, V]) Remove(key K) error {
	if t.root == nil {
		return ErrKeyNotFound
	}
	n := t.root.find(key)
	if n == nil {
		return ErrKeyNotFound
	}
	t.removeNode(n)
	return nil
}

func (t *tree[K, V]) RemoveNode(n Node[K, V]) Node[K, V] {
	curr, ok := n.(*treeNode[K, V])
	if !ok || curr == nil {
		return nil
	}
	return nodeOrNil(t.removeNode(curr))
}

// removeNode evicts the node and keeps the root pointer and size in
// sync with the node graph.
func (t *tree[K, V]) removeNode(n *treeNode[K, V]) *treeNode[K, V] {
	wasRoot := n == t.root
	repl := n.remove()
	if wasRoot {
		t.root = repl
	}
	t.size--
	return repl
}

func (t *tree[K, V]) Get(key K) Node[K, V] {
	if t.root == nil {
		return nil
	}
	return nodeOrNil(t.root.find(key))
}

func (t *tree[K, V]) Contains(key K) bool {
	return t.Get(key) != nil
}

func (t *tree[K, V]) Min() Node[K, V] {
	if t.root == nil {
		return nil
	}
	return t.root.minimum()
}

func (t *tree[K, V]) Max() Node[K, V] {
	if t.root == nil {
		return nil
	}
	return t.root.maximum()
}

func (t *tree[K, V]) Floor(key K) Node[K, V] {
	var floor *treeNode[K, V]
	for curr := t.root; curr != nil; {
		switch cmp.Compare(key, curr.key) {
		case -1:
			curr = curr.left
		case 1:
			floor = curr
			curr = curr.right
		default:
			return curr
		}
	}
	return nodeOrNil(floor)
}

func (t *tree[K, V]) Ceiling(key K) Node[K, V] {
	var ceiling *treeNode[K, V]
	for curr := t.root; curr != nil; {
		switch cmp.Compare(key, curr.key) {
		case -1:
			ceiling = curr
			curr = curr.left
		case 1:
			curr = curr.right
		default:
			return curr
		}
	}
	return nodeOrNil(ceiling)
}

func (t *tree[K, V]) Traverse(visit Callback[K, V]) {
	if t.root == nil {
		return
	}
	t.root.walk(visit)
}

func (t *tree[K, V]) Iterator() Iterator[K, V] {
	it := &iterator[K, V]{}
	it.pushLeft(t.root)
	return it
}

func (it *iterator[K, V]) pushLeft(n *treeNode[K, V]) {
	for n != nil {
		it.stack = append(it.stack, n)
		n = n.left
	}
}

func (it *iterator[K, V]) HasNext() bool {
	return it != nil && len(it.stack) > 0
}

func (it *iterator[K, V]) Next() (Node[K, V], error) {
	if !it.HasNext() {
		return nil, ErrNoMoreNodes
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeft(n.right)
	return n, nil
}
