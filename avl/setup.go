// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Clear - remove every node
func (tree *Tree) Clear() {
	clearNodes(tree.root)
	tree.root = nil
	tree.count = 0
}

func clearNodes(p *Node) {
	if nil == p {
		return
	}
	clearNodes(p.left)
	clearNodes(p.right)
	freeNode(p)
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - number of levels in the tree, zero for an empty tree
func (tree *Tree) Height() int {
	return height(tree.root)
}

func height(p *Node) int {
	if nil == p {
		return 0
	}
	l := height(p.left)
	r := height(p.right)
	if l > r {
		return 1 + l
	}
	return 1 + r
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p *Node) Balance() int {
	return p.balance
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return the left child of a node
func (p *Node) Left() *Node {
	return p.left
}

// Right - return the right child of a node
func (p *Node) Right() *Node {
	return p.right
}

// Size - number of nodes in the sub-tree rooted at this node
func (p *Node) Size() int {
	return 1 + p.leftNodes + p.rightNodes
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
