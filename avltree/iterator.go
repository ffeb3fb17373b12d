// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avltree

import (
	"cmp"
	"iter"
)

// Iterator walks a Tree in ascending key order using only the parent and
// child links of the nodes.
//
// prev records the node the walk came from, which tells whether current was
// entered from its parent, from its left child or from its right child.
type Iterator[K cmp.Ordered, V any] struct {
	current *Node[K, V]
	prev    *Node[K, V]
}

// Begin returns an iterator positioned on the lowest key. On an empty tree
// the iterator is already exhausted.
func (t *Tree[K, V]) Begin() *Iterator[K, V] {
	it := &Iterator[K, V]{current: t.root}
	it.settle()
	return it
}

// Seek returns an iterator positioned on key, exhausted if key is absent.
func (t *Tree[K, V]) Seek(key K) *Iterator[K, V] {
	n := t.Find(key)
	if n == nil {
		return &Iterator[K, V]{}
	}
	// pretend the left subtree was just finished
	return &Iterator[K, V]{current: n, prev: n.left}
}

// Node returns the node under the iterator, nil once exhausted.
func (it *Iterator[K, V]) Node() *Node[K, V] {
	return it.current
}

// Valid reports whether the iterator is positioned on a node.
func (it *Iterator[K, V]) Valid() bool {
	return it.current != nil
}

// Next advances to the following key and returns its node, or nil when
// the walk has passed the highest key.
func (it *Iterator[K, V]) Next() *Node[K, V] {
	cur := it.current
	if cur == nil {
		return nil
	}
	if cur.right != nil {
		it.prev, it.current = cur, cur.right
	} else {
		it.prev, it.current = cur, cur.parent
	}
	return it.settle()
}

// settle moves forward until current is the next node to visit.
func (it *Iterator[K, V]) settle() *Node[K, V] {
	for it.current != nil {
		cur := it.current
		switch {
		case it.prev != nil && it.prev == cur.left:
			// left subtree done
			return cur
		case it.prev != nil && it.prev == cur.right:
			// whole subtree done
			it.prev, it.current = cur, cur.parent
		default:
			// entered from above
			if cur.left == nil {
				return cur
			}
			it.prev, it.current = cur, cur.left
		}
	}
	it.prev = nil
	return nil
}

// All returns a sequence of every key/value pair in ascending key order.
// The tree must not be modified while the sequence is being consumed.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := t.Begin(); it.Valid(); it.Next() {
			n := it.Node()
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Keys returns a sequence of every key in ascending order.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := t.Begin(); it.Valid(); it.Next() {
			if !yield(it.Node().key) {
				return
			}
		}
	}
}
