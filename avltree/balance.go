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

func height[K cmp.Ordered, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// balanceFactor is positive when the right subtree is the taller one.
func balanceFactor[K cmp.Ordered, V any](n *Node[K, V]) int {
	return height(n.right) - height(n.left)
}

func fixHeight[K cmp.Ordered, V any](n *Node[K, V]) {
	n.height = max(height(n.left), height(n.right)) + 1
}

// rotateRight lifts p.left into the place of p and returns it.
//
//	    p          q
//	   / \        / \
//	  q   c  =>  a   p
//	 / \            / \
//	a   b          b   c
//
// The returned node inherits p's parent; the caller still has to point the
// parent's child slot at it.
func rotateRight[K cmp.Ordered, V any](p *Node[K, V]) *Node[K, V] {
	q := p.left

	p.left = q.right
	if p.left != nil {
		p.left.parent = p
	}
	q.right = p

	q.parent = p.parent
	p.parent = q

	fixHeight(p)
	fixHeight(q)
	return q
}

// rotateLeft is the mirror image of rotateRight.
func rotateLeft[K cmp.Ordered, V any](q *Node[K, V]) *Node[K, V] {
	p := q.right

	q.right = p.left
	if q.right != nil {
		q.right.parent = q
	}
	p.left = q

	p.parent = q.parent
	q.parent = p

	fixHeight(q)
	fixHeight(p)
	return p
}

// rebalance restores the AVL condition at p, assuming both subtrees are
// already balanced and differ in height by at most two. It returns the root
// of the (possibly rotated) subtree.
func rebalance[K cmp.Ordered, V any](p *Node[K, V]) *Node[K, V] {
	fixHeight(p)

	switch balanceFactor(p) {
	case 2:
		// Right-Left case
		if balanceFactor(p.right) < 0 {
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)
	case -2:
		// Left-Right case
		if balanceFactor(p.left) > 0 {
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)
	}
	return p
}
