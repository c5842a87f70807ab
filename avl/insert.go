// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, or overwrite the value
// of an existing key
// returns true if a new node was added
func (tree *Tree) Insert(key Item, value interface{}) bool {
	if nil == tree.root {
		tree.root = newNode(key, value, nil)
		tree.count += 1
		return true
	}

	p := tree.root
	var n *Node
search:
	for {
		c := p.key.Compare(key)
		switch {
		case c > 0: // p.key > key
			if nil == p.left {
				n = newNode(key, value, p)
				p.left = n
				break search
			}
			p = p.left
		case c < 0: // p.key < key
			if nil == p.right {
				n = newNode(key, value, p)
				p.right = n
				break search
			}
			p = p.right
		default: // existing key: tree shape is unchanged
			p.value = value
			return false
		}
	}
	tree.count += 1
	adjustCounts(n, +1)

	// new leaf filled the shorter side so p's height is unchanged
	if 0 != p.balance {
		p.balance = 0
		return true
	}

	if n == p.left {
		p.balance = -1
	} else {
		p.balance = +1
	}
	tree.insertFixup(p, n)
	return true
}

// insertFixup - p has just grown taller because of its child n
//
// walk towards the root until the extra height is absorbed by a
// node that was leaning the other way, or a rotation restores the
// previous height
func (tree *Tree) insertFixup(p *Node, n *Node) {
	for {
		g := p.up
		if nil == g {
			return
		}

		if p == g.left {
			g.balance -= 1
			switch g.balance {
			case 0:
				return
			case -1:
				p, n = g, p
				continue
			}

			// g.balance == -2
			if n == p.left {
				// single LL rotation
				tree.rotateRight(g)
				g.balance = 0
				p.balance = 0
				return
			}

			// double LR rotation, n is pivot
			b := n.balance
			tree.rotateLeft(p)
			tree.rotateRight(g)
			switch b {
			case -1:
				g.balance = +1
				p.balance = 0
			case 0:
				g.balance = 0
				p.balance = 0
			case +1:
				g.balance = 0
				p.balance = -1
			}
			n.balance = 0
			return
		}

		g.balance += 1
		switch g.balance {
		case 0:
			return
		case +1:
			p, n = g, p
			continue
		}

		// g.balance == +2
		if n == p.right {
			// single RR rotation
			tree.rotateLeft(g)
			g.balance = 0
			p.balance = 0
			return
		}

		// double RL rotation, n is pivot
		b := n.balance
		tree.rotateRight(p)
		tree.rotateLeft(g)
		switch b {
		case -1:
			g.balance = 0
			p.balance = +1
		case 0:
			g.balance = 0
			p.balance = 0
		case +1:
			g.balance = -1
			p.balance = 0
		}
		n.balance = 0
		return
	}
}
