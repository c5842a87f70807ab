// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// swapNodes - exchange the positions of two nodes in the tree
//
// keys and values stay with their nodes; everything that describes
// the position (links, balance factor and sub-tree counts) is
// exchanged so each position still matches the sub-tree below it
func (tree *Tree) swapNodes(n1 *Node, n2 *Node) {
	if n1 == n2 {
		return
	}

	// if one node is the parent of the other, make n1 the parent
	if n1.up == n2 {
		n1, n2 = n2, n1
	}

	p1, l1, r1 := n1.up, n1.left, n1.right
	p2, l2, r2 := n2.up, n2.left, n2.right
	n1IsLeft := nil != p1 && n1 == p1.left
	n2IsLeft := nil != p2 && n2 == p2.left

	n1.up, n1.left, n1.right = p2, l2, r2
	n2.up, n2.left, n2.right = p1, l1, r1

	switch {
	case n1 == p2:
		// n2 was a direct child of n1
		n1.up = n2
		if n2IsLeft {
			n2.left = n1
		} else {
			n2.right = n1
		}
	case nil == p2:
		tree.root = n1
	case n2IsLeft:
		p2.left = n1
	default:
		p2.right = n1
	}

	switch {
	case nil == p1:
		tree.root = n2
	case n1IsLeft:
		p1.left = n2
	default:
		p1.right = n2
	}

	for _, c := range []*Node{n1.left, n1.right} {
		if nil != c {
			c.up = n1
		}
	}
	for _, c := range []*Node{n2.left, n2.right} {
		if nil != c {
			c.up = n2
		}
	}

	n1.balance, n2.balance = n2.balance, n1.balance
	n1.leftNodes, n2.leftNodes = n2.leftNodes, n1.leftNodes
	n1.rightNodes, n2.rightNodes = n2.rightNodes, n1.rightNodes
}
