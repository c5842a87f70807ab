// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
// returns the value of the removed item, or nil if the key was not
// in the tree
func (tree *Tree) Delete(key Item) interface{} {
	q := tree.find(key)
	if nil == q { // key not in tree
		return nil
	}
	value := q.value // preserve the value part

	// a node with two children swaps position with its predecessor,
	// which has no right child
	if nil != q.left && nil != q.right {
		tree.swapNodes(q, q.left.last())
	}

	adjustCounts(q, -1)

	child := q.left
	if nil == child {
		child = q.right
	}
	p := q.up
	diff := 0
	if nil != p {
		if q == p.left {
			diff = +1 // left side shrank
		} else {
			diff = -1 // right side shrank
		}
	}
	tree.replaceChild(q, child)

	freeNode(q)
	tree.count -= 1

	tree.removeFixup(p, diff)
	return value
}

// removeFixup - one side of p has become one level shorter, diff is
// +1 for the left side and -1 for the right side
//
// walk towards the root while the height of the sub-tree keeps
// decreasing
func (tree *Tree) removeFixup(p *Node, diff int) {
	for nil != p {
		up := p.up
		next := 0
		if nil != up {
			if p == up.left {
				next = +1
			} else {
				next = -1
			}
		}

		switch p.balance + diff {
		case -1, +1:
			// was balanced, now leaning: height unchanged
			p.balance += diff
			return

		case 0:
			// was leaning to the side that shrank: height reduced
			p.balance = 0

		case -2:
			p1 := p.left
			switch p1.balance {
			case -1:
				// single LL rotation
				tree.rotateRight(p)
				p.balance = 0
				p1.balance = 0
			case 0:
				// single LL rotation, height unchanged
				tree.rotateRight(p)
				p.balance = -1
				p1.balance = +1
				return
			case +1:
				// double LR rotation
				p2 := p1.right
				b := p2.balance
				tree.rotateLeft(p1)
				tree.rotateRight(p)
				switch b {
				case -1:
					p.balance = +1
					p1.balance = 0
				case 0:
					p.balance = 0
					p1.balance = 0
				case +1:
					p.balance = 0
					p1.balance = -1
				}
				p2.balance = 0
			}

		case +2:
			p1 := p.right
			switch p1.balance {
			case +1:
				// single RR rotation
				tree.rotateLeft(p)
				p.balance = 0
				p1.balance = 0
			case 0:
				// single RR rotation, height unchanged
				tree.rotateLeft(p)
				p.balance = +1
				p1.balance = -1
				return
			case -1:
				// double RL rotation
				p2 := p1.left
				b := p2.balance
				tree.rotateRight(p1)
				tree.rotateLeft(p)
				switch b {
				case -1:
					p.balance = 0
					p1.balance = +1
				case 0:
					p.balance = 0
					p1.balance = 0
				case +1:
					p.balance = -1
					p1.balance = 0
				}
				p2.balance = 0
			}
		}

		p, diff = up, next
	}
}
