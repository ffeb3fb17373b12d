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

package avltree_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/cybrota/wordbook/avltree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(it *avltree.Iterator[int, int]) []int {
	var keys []int
	for ; it.Valid(); it.Next() {
		keys = append(keys, it.Node().Key())
	}
	return keys
}

func TestIteratorEmptyTree(t *testing.T) {
	tree := avltree.New[int, int]()
	it := tree.Begin()

	assert.False(t, it.Valid())
	assert.Nil(t, it.Node())
	assert.Nil(t, it.Next())
	assert.Nil(t, it.Next())
}

func TestIteratorShapes(t *testing.T) {
	testCases := []struct {
		Name   string
		Insert []int
		Remove []int
	}{
		{Name: "Single", Insert: []int{1}},
		{Name: "Left Child Only", Insert: []int{2, 1}},
		{Name: "Right Child Only", Insert: []int{1, 2}},
		{Name: "Full Three", Insert: []int{2, 1, 3}},
		// 2(1, 4(3, _)): the right subtree has only a left child
		{Name: "Right Subtree Left Leaf", Insert: []int{2, 1, 4, 3}},
		{Name: "Left Subtree Right Leaf", Insert: []int{3, 1, 4, 2}},
		{Name: "Ascending", Insert: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{Name: "Descending", Insert: []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}},
		{Name: "After Removals", Insert: []int{8, 4, 12, 2, 6, 10, 14, 1, 3, 5, 7}, Remove: []int{4, 12, 8}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := avltree.New[int, int]()
			want := map[int]bool{}
			for _, k := range tc.Insert {
				tree.Insert(k, k)
				want[k] = true
			}
			for _, k := range tc.Remove {
				tree.Remove(k)
				delete(want, k)
			}

			expected := make([]int, 0, len(want))
			for k := range want {
				expected = append(expected, k)
			}
			slices.Sort(expected)

			assert.Equal(t, expected, collect(tree.Begin()))
		})
	}
}

func TestIteratorRandomTrees(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := range 64 {
		tree := avltree.New[int, int]()
		for _, k := range rng.Perm(n + 1) {
			tree.Insert(k, -k)
		}
		got := collect(tree.Begin())
		require.Len(t, got, n+1)
		assert.True(t, slices.IsSorted(got))
		assert.Equal(t, 0, got[0])
		assert.Equal(t, n, got[n])
	}
}

func TestIteratorNextReturnsNode(t *testing.T) {
	tree := avltree.New[int, int]()
	for _, k := range []int{5, 3, 8} {
		tree.Insert(k, k*10)
	}

	it := tree.Begin()
	require.True(t, it.Valid())
	assert.Equal(t, 3, it.Node().Key())

	n := it.Next()
	require.NotNil(t, n)
	assert.Same(t, n, it.Node())
	assert.Equal(t, 5, n.Key())
	assert.Equal(t, 50, n.Value())

	assert.Equal(t, 8, it.Next().Key())
	assert.Nil(t, it.Next())
	assert.False(t, it.Valid())
}

func TestSeek(t *testing.T) {
	tree := avltree.New[int, int]()
	for i := range 20 {
		tree.Insert(i*2, i)
	}

	assert.Equal(t, []int{30, 32, 34, 36, 38}, collect(tree.Seek(30)))
	assert.Equal(t, []int{38}, collect(tree.Seek(38)))
	assert.Len(t, collect(tree.Seek(0)), 20)

	missing := tree.Seek(31)
	assert.False(t, missing.Valid())
	assert.Nil(t, missing.Next())
}

func TestAllStopsEarly(t *testing.T) {
	tree := avltree.New[int, int]()
	for i := range 10 {
		tree.Insert(i, i*i)
	}

	var seen []int
	for k, v := range tree.All() {
		assert.Equal(t, k*k, v)
		if k == 3 {
			break
		}
		seen = append(seen, k)
	}
	assert.Equal(t, []int{0, 1, 2}, seen)
}
