// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// rotateLeft - the right child of p takes the position of p and p
// becomes its left child
//
//        p                r
//       / \              / \
//      a   r     →      p   c
//         / \          / \
//        b   c        a   b
//
// balance factors are not changed, the caller knows the correct
// values for the case being fixed up
func (tree *Tree) rotateLeft(p *Node) {
	r := p.right
	if nil == r {
		fault.Panicf("rotate left: key: %v  error: %s", p.key, fault.ErrMissingChild)
	}

	tree.replaceChild(p, r)

	p.right = r.left
	if nil != p.right {
		p.right.up = p
	}
	p.rightNodes = r.leftNodes

	r.left = p
	p.up = r
	r.leftNodes = 1 + p.leftNodes + p.rightNodes
}

// rotateRight - the left child of p takes the position of p and p
// becomes its right child
//
//          p            l
//         / \          / \
//        l   c   →    a   p
//       / \              / \
//      a   b            b   c
func (tree *Tree) rotateRight(p *Node) {
	l := p.left
	if nil == l {
		fault.Panicf("rotate right: key: %v  error: %s", p.key, fault.ErrMissingChild)
	}

	tree.replaceChild(p, l)

	p.left = l.right
	if nil != p.left {
		p.left.up = p
	}
	p.leftNodes = l.rightNodes

	l.right = p
	p.up = l
	l.rightNodes = 1 + p.leftNodes + p.rightNodes
}

// make q occupy the parent link of p; only the links between p's
// parent (or the root) and q are changed
func (tree *Tree) replaceChild(p *Node, q *Node) {
	up := p.up
	switch {
	case nil == up:
		tree.root = q
	case p == up.left:
		up.left = q
	default:
		up.right = q
	}
	if nil != q {
		q.up = up
	}
}
