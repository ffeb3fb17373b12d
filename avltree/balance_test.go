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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(key int) *Node[int, string] {
	return newNode[int, string](key)
}

func link(p, l, r *Node[int, string]) *Node[int, string] {
	p.left, p.right = l, r
	if l != nil {
		l.parent = p
	}
	if r != nil {
		r.parent = p
	}
	fixHeight(p)
	return p
}

// assertLinks checks every child points back at its parent.
func assertLinks(t *testing.T, n *Node[int, string]) {
	t.Helper()
	if n == nil {
		return
	}
	if n.left != nil {
		assert.Same(t, n, n.left.parent, "left child of %d", n.key)
		assertLinks(t, n.left)
	}
	if n.right != nil {
		assert.Same(t, n, n.right.parent, "right child of %d", n.key)
		assertLinks(t, n.right)
	}
}

func TestHeightAndBalanceFactor(t *testing.T) {
	assert.Equal(t, 0, height[int, string](nil))

	n := link(leaf(2), leaf(1), nil)
	assert.Equal(t, 2, n.height)
	assert.Equal(t, -1, balanceFactor(n))

	n = link(leaf(2), nil, link(leaf(3), nil, leaf(4)))
	assert.Equal(t, 3, n.height)
	assert.Equal(t, 2, balanceFactor(n))
}

func TestRotateRight(t *testing.T) {
	top := leaf(10)
	a, b, c := leaf(1), leaf(4), leaf(8)
	q := link(leaf(3), a, b)
	p := link(leaf(6), q, c)
	link(top, p, nil)

	r := rotateRight(p)

	require.Same(t, q, r)
	assert.Same(t, top, q.parent, "new root keeps the old parent")
	assert.Same(t, a, q.left)
	assert.Same(t, p, q.right)
	assert.Same(t, q, p.parent)
	assert.Same(t, b, p.left)
	assert.Same(t, p, b.parent, "crossing subtree is reparented")
	assert.Same(t, c, p.right)
	assert.Equal(t, 2, p.height)
	assert.Equal(t, 3, q.height)
	assertLinks(t, q)
}

func TestRotateLeft(t *testing.T) {
	a, b, c := leaf(1), leaf(4), leaf(8)
	p := link(leaf(6), b, c)
	q := link(leaf(3), a, p)

	r := rotateLeft(q)

	require.Same(t, p, r)
	assert.Nil(t, p.parent)
	assert.Same(t, q, p.left)
	assert.Same(t, c, p.right)
	assert.Same(t, a, q.left)
	assert.Same(t, b, q.right)
	assert.Same(t, q, b.parent)
	assert.Equal(t, 2, q.height)
	assert.Equal(t, 3, p.height)
	assertLinks(t, p)
}

func TestRebalance(t *testing.T) {
	testCases := []struct {
		Name  string
		Build func() *Node[int, string]
		Root  int
	}{
		{
			Name:  "Left-Left",
			Build: func() *Node[int, string] { return link(leaf(3), link(leaf(2), leaf(1), nil), nil) },
			Root:  2,
		},
		{
			Name:  "Left-Right",
			Build: func() *Node[int, string] { return link(leaf(3), link(leaf(1), nil, leaf(2)), nil) },
			Root:  2,
		},
		{
			Name:  "Right-Right",
			Build: func() *Node[int, string] { return link(leaf(1), nil, link(leaf(2), nil, leaf(3))) },
			Root:  2,
		},
		{
			Name:  "Right-Left",
			Build: func() *Node[int, string] { return link(leaf(1), nil, link(leaf(3), leaf(2), nil)) },
			Root:  2,
		},
		{
			Name:  "Already balanced",
			Build: func() *Node[int, string] { return link(leaf(2), leaf(1), leaf(3)) },
			Root:  2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			r := rebalance(tc.Build())
			require.NotNil(t, r)
			assert.Equal(t, tc.Root, r.key)
			assert.Nil(t, r.parent)
			assert.Equal(t, 2, r.height)
			assert.Equal(t, 0, balanceFactor(r))
			assert.Equal(t, 1, r.left.key)
			assert.Equal(t, 3, r.right.key)
			assertLinks(t, r)
		})
	}
}

func TestParentLinksAfterEveryInsert(t *testing.T) {
	tree := New[int, string]()
	for i := range 200 {
		// zig-zag keys hit all four rotation cases
		key := i
		if i%2 == 1 {
			key = 1000 - i
		}
		tree.Insert(key, "")
		assertLinks(t, tree.root)
		require.NoError(t, tree.Check())
	}
}

func TestClearVisitsEachNodeOnce(t *testing.T) {
	tree := New[int, string]()
	for i := range 100 {
		tree.Insert(i, "")
	}
	assert.Equal(t, 100, clearNodes(tree.root))
}
