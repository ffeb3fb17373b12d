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
	"io"
)

type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print writes the tree to w sideways, right subtree on top, one node per
// line with its value, height and balance factor.
func (t *Tree[K, V]) Print(w io.Writer) {
	printNode(w, t.root, "", rootBranch)
}

func printNode[K cmp.Ordered, V any](w io.Writer, n *Node[K, V], prefix string, br branch) {
	if n == nil {
		return
	}
	if n.right != nil {
		pad := "       "
		if br == leftBranch {
			pad = "|      "
		}
		printNode(w, n.right, prefix+pad, rightBranch)
	}

	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v → %v h=%d %+d\n", n.key, n.value, n.height, balanceFactor(n))

	if n.left != nil {
		pad := "       "
		if br == rightBranch {
			pad = "|      "
		}
		printNode(w, n.left, prefix+pad, leftBranch)
	}
}
