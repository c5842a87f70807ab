// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package paths

import (
	"strconv"
	"strings"
)

// Node - a node of a plain (not necessarily ordered or balanced)
// binary tree
type Node struct {
	Key   int
	Left  *Node
	Right *Node
}

// Equal - true if every root to leaf path has the same length
//
// a node with a single child only contributes the depth of that
// child, so a chain is always equal; a node with two children must
// have sub-trees of the same height
func Equal(root *Node) bool {
	valid := true
	pathHeight(root, &valid)
	return valid
}

// internal: height of the sub-tree, clears valid on a mismatch
func pathHeight(p *Node, valid *bool) int {
	if nil == p {
		return 0
	}
	lh := pathHeight(p.Left, valid)
	rh := pathHeight(p.Right, valid)

	switch {
	case nil == p.Left:
		return 1 + rh
	case nil == p.Right:
		return 1 + lh
	case lh != rh:
		*valid = false
	}
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}

// String - render in bracket notation: key(left,right)
// a leaf is just its key
func (p *Node) String() string {
	if nil == p {
		return ""
	}
	var b strings.Builder
	p.write(&b)
	return b.String()
}

func (p *Node) write(b *strings.Builder) {
	b.WriteString(strconv.Itoa(p.Key))
	if nil == p.Left && nil == p.Right {
		return
	}
	b.WriteByte('(')
	if nil != p.Left {
		p.Left.write(b)
	}
	b.WriteByte(',')
	if nil != p.Right {
		p.Right.write(b)
	}
	b.WriteByte(')')
}
