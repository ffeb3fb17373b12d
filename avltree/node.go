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

// Node is a single key/value entry of a Tree.
type Node[K cmp.Ordered, V any] struct {
	key    K
	value  V
	height int // leaf = 1

	left   *Node[K, V]
	right  *Node[K, V]
	parent *Node[K, V] // back-reference, nil at the root
}

func newNode[K cmp.Ordered, V any](key K) *Node[K, V] {
	return &Node[K, V]{key: key, height: 1}
}

// Key returns the node key.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns the value stored under the node key.
func (n *Node[K, V]) Value() V {
	return n.value
}

// SetValue replaces the value stored under the node key.
func (n *Node[K, V]) SetValue(v V) {
	n.value = v
}

// Height returns the height of the subtree rooted at n, 1 for a leaf.
func (n *Node[K, V]) Height() int {
	return height(n)
}

// Left returns the root of the subtree holding lower keys, or nil.
func (n *Node[K, V]) Left() *Node[K, V] { return n.left }

// Right returns the root of the subtree holding higher keys, or nil.
func (n *Node[K, V]) Right() *Node[K, V] { return n.right }

// Parent returns the node whose child n is, nil for the root.
func (n *Node[K, V]) Parent() *Node[K, V] { return n.parent }

// first returns the lowest node of the subtree rooted at n
func (n *Node[K, V]) first() *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// last returns the highest node of the subtree rooted at n
func (n *Node[K, V]) last() *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
