// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item
// returns the node and its zero based position in key order, or
// nil and -1 if the key is not in the tree
func (tree *Tree) Search(key Item) (*Node, int) {
	index := 0
	p := tree.root
	for nil != p {
		c := p.key.Compare(key)
		switch {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			index += p.leftNodes + 1
			p = p.right
		default:
			return p, index + p.leftNodes
		}
	}
	return nil, -1
}

// internal: plain binary search
func (tree *Tree) find(key Item) *Node {
	p := tree.root
	for nil != p {
		c := p.key.Compare(key)
		switch {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}
