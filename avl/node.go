// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key item must implement the Compare function
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
type Node struct {
	left       *Node       // left sub-tree
	right      *Node       // right sub-tree
	up         *Node       // points to parent node
	key        Item        // key part for ordering
	value      interface{} // value part for data storage
	balance    int         // -1, 0, +1
	leftNodes  int         // count of nodes in left sub-tree
	rightNodes int         // count of nodes in right sub-tree
}

// create a new leaf node attached below parent
func newNode(key Item, value interface{}, parent *Node) *Node {
	return &Node{
		up:      parent,
		key:     key,
		value:   value,
		balance: 0,
	}
}

// clear all links of a node that has been removed from the tree so
// that any retained pointer cannot reach the remaining nodes
func freeNode(node *Node) {
	node.left = nil
	node.right = nil
	node.up = nil
	node.key = nil
	node.value = nil
	node.balance = 0
	node.leftNodes = 0
	node.rightNodes = 0
}

// adjust the sub-tree counts of every ancestor of a node, the node
// must still be linked into the tree
func adjustCounts(node *Node, delta int) {
	for p := node.up; nil != p; node, p = p, p.up {
		if node == p.left {
			p.leftNodes += delta
		} else {
			p.rightNodes += delta
		}
	}
}
