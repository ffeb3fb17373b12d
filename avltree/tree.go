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

import "cmp"

// Tree is an AVL-balanced ordered map.
type Tree[K cmp.Ordered, V any] struct {
	root  *Node[K, V]
	count int
}

// New creates an empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int {
	return t.count
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Height returns the height of the tree, 0 when empty.
func (t *Tree[K, V]) Height() int {
	return height(t.root)
}

// Root returns the root node, nil when empty.
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.root
}

// Find returns the node holding key, or nil when the key is absent.
func (t *Tree[K, V]) Find(key K) *Node[K, V] {
	n := t.root
	for n != nil {
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Lookup returns the value stored under key and whether it was found.
func (t *Tree[K, V]) Lookup(key K) (V, bool) {
	if n := t.Find(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.Find(key) != nil
}

// GetOrInsert returns a pointer to the value stored under key, inserting
// the zero value first when the key is absent. The pointer stays valid
// until key itself is removed or the tree is cleared.
func (t *Tree[K, V]) GetOrInsert(key K) *V {
	n, _ := t.getOrInsert(key)
	return &n.value
}

// Insert adds key with value and reports true, or reports false and
// leaves the existing entry untouched when key is already present.
func (t *Tree[K, V]) Insert(key K, value V) bool {
	n, added := t.getOrInsert(key)
	if added {
		n.value = value
	}
	return added
}

// Set stores value under key, replacing any previous value.
func (t *Tree[K, V]) Set(key K, value V) {
	*t.GetOrInsert(key) = value
}

func (t *Tree[K, V]) getOrInsert(key K) (*Node[K, V], bool) {
	root, n, added := insert(t.root, key)
	t.root = root
	t.root.parent = nil
	if added {
		t.count++
	}
	return n, added
}

// insert places key into the subtree rooted at p and returns the new
// subtree root, the node holding key and whether that node is new.
func insert[K cmp.Ordered, V any](p *Node[K, V], key K) (*Node[K, V], *Node[K, V], bool) {
	if p == nil {
		n := newNode[K, V](key)
		return n, n, true
	}

	var n *Node[K, V]
	var added bool
	switch c := cmp.Compare(key, p.key); {
	case c < 0:
		p.left, n, added = insert(p.left, key)
		p.left.parent = p
	case c > 0:
		p.right, n, added = insert(p.right, key)
		p.right.parent = p
	default:
		return p, p, false
	}

	if !added {
		return p, n, false
	}
	return rebalance(p), n, true
}

// Remove deletes key from the tree. It reports false, leaving the tree and
// its count unchanged, when the key is absent.
func (t *Tree[K, V]) Remove(key K) bool {
	root, removed := remove(t.root, key)
	if removed == nil {
		return false
	}
	t.root = root
	if t.root != nil {
		t.root.parent = nil
	}
	t.count--
	return true
}

// remove deletes key from the subtree rooted at p and returns the new
// subtree root together with the detached node, nil if key was not found.
func remove[K cmp.Ordered, V any](p *Node[K, V], key K) (*Node[K, V], *Node[K, V]) {
	if p == nil {
		return nil, nil
	}

	var removed *Node[K, V]
	switch c := cmp.Compare(key, p.key); {
	case c < 0:
		p.left, removed = remove(p.left, key)
		if p.left != nil {
			p.left.parent = p
		}
	case c > 0:
		p.right, removed = remove(p.right, key)
		if p.right != nil {
			p.right.parent = p
		}
	default:
		return splice(p), p
	}

	if removed == nil {
		// nothing changed below p, heights are intact
		return p, nil
	}
	return rebalance(p), removed
}

// splice unlinks p and returns the subtree that takes its place.
func splice[K cmp.Ordered, V any](p *Node[K, V]) *Node[K, V] {
	l, r := p.left, p.right
	p.left, p.right, p.parent = nil, nil, nil

	if l != nil {
		l.parent = nil
	}
	if r == nil {
		return l
	}
	r.parent = nil
	if l == nil {
		return r
	}

	// two children: the minimum of the right subtree replaces p
	m := r.first()
	m.right = removeMin(r)
	if m.right != nil {
		m.right.parent = m
	}
	m.left = l
	l.parent = m
	m.parent = nil
	return rebalance(m)
}

// removeMin detaches the lowest node of the subtree rooted at p and
// returns the remaining subtree. The detached node keeps stale links that
// the caller overwrites.
func removeMin[K cmp.Ordered, V any](p *Node[K, V]) *Node[K, V] {
	if p.left == nil {
		return p.right
	}
	p.left = removeMin(p.left)
	if p.left != nil {
		p.left.parent = p
	}
	return rebalance(p)
}

// Clear removes every entry.
func (t *Tree[K, V]) Clear() {
	clearNodes(t.root)
	t.root = nil
	t.count = 0
}

// clearNodes unlinks the subtree rooted at n children first and returns
// the number of nodes visited.
func clearNodes[K cmp.Ordered, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	visited := clearNodes(n.left) + clearNodes(n.right) + 1
	n.left, n.right, n.parent = nil, nil, nil
	return visited
}
