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
	"fmt"
)

// Check walks the whole tree and returns an error describing the first
// structural inconsistency found: a wrong parent link, keys out of order,
// a stale stored height, an unbalanced node or a count mismatch.
func (t *Tree[K, V]) Check() error {
	if t.root != nil && t.root.parent != nil {
		return fmt.Errorf("root %v has parent %v", t.root.key, t.root.parent.key)
	}
	nodes, _, err := checkNode(t.root, nil, nil, nil)
	if err != nil {
		return err
	}
	if nodes != t.count {
		return fmt.Errorf("count is %d but tree holds %d nodes", t.count, nodes)
	}
	return nil
}

// checkNode validates the subtree rooted at p whose keys must lie strictly
// between lo and hi (nil means unbounded). It returns the node count and
// the computed height.
func checkNode[K cmp.Ordered, V any](p, up, lo, hi *Node[K, V]) (int, int, error) {
	if p == nil {
		return 0, 0, nil
	}
	if p.parent != up {
		return 0, 0, fmt.Errorf("node %v: parent link does not match", p.key)
	}
	if lo != nil && cmp.Compare(p.key, lo.key) <= 0 {
		return 0, 0, fmt.Errorf("node %v: not above %v", p.key, lo.key)
	}
	if hi != nil && cmp.Compare(p.key, hi.key) >= 0 {
		return 0, 0, fmt.Errorf("node %v: not below %v", p.key, hi.key)
	}

	ln, lh, err := checkNode(p.left, p, lo, p)
	if err != nil {
		return 0, 0, err
	}
	rn, rh, err := checkNode(p.right, p, p, hi)
	if err != nil {
		return 0, 0, err
	}

	h := max(lh, rh) + 1
	if p.height != h {
		return 0, 0, fmt.Errorf("node %v: stored height %d, actual %d", p.key, p.height, h)
	}
	if bf := rh - lh; bf < -1 || bf > 1 {
		return 0, 0, fmt.Errorf("node %v: balance factor %+d", p.key, bf)
	}
	return ln + rn + 1, h, nil
}
