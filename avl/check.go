// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return nil == checkUp(tree.root, nil)
}

// CheckBalance - recompute every sub-tree height and compare with the
// stored balance factors
func (tree *Tree) CheckBalance() bool {
	_, err := checkBalance(tree.root)
	return nil == err
}

// CheckOrder - keys must be strictly increasing in iteration order
func (tree *Tree) CheckOrder() bool {
	return nil == checkOrder(tree)
}

// CheckCounts - check the sub-tree node counts and the tree count
func (tree *Tree) CheckCounts() bool {
	return nil == checkCounts(tree)
}

// Validate - run all consistency checks
// returns the fault for the first check that fails
func (tree *Tree) Validate() error {
	if err := checkUp(tree.root, nil); nil != err {
		return err
	}
	if _, err := checkBalance(tree.root); nil != err {
		return err
	}
	if err := checkOrder(tree); nil != err {
		return err
	}
	return checkCounts(tree)
}

// internal: parent pointer checker
func checkUp(p *Node, up *Node) error {
	if nil == p {
		return nil
	}
	if p.up != up {
		return fault.ErrParentLink
	}
	if err := checkUp(p.left, p); nil != err {
		return err
	}
	return checkUp(p.right, p)
}

// internal: returns the height of the sub-tree
func checkBalance(p *Node) (int, error) {
	if nil == p {
		return 0, nil
	}
	lh, err := checkBalance(p.left)
	if nil != err {
		return 0, err
	}
	rh, err := checkBalance(p.right)
	if nil != err {
		return 0, err
	}
	if p.balance < -1 || p.balance > +1 {
		return 0, fault.ErrOutOfBalance
	}
	if rh-lh != p.balance {
		return 0, fault.ErrBalanceFactor
	}
	if lh > rh {
		return 1 + lh, nil
	}
	return 1 + rh, nil
}

func checkOrder(tree *Tree) error {
	p := tree.First()
	if nil == p {
		return nil
	}
	for n := p.Next(); nil != n; p, n = n, n.Next() {
		if p.key.Compare(n.key) >= 0 {
			return fault.ErrKeyOrder
		}
	}
	return nil
}

func checkCounts(tree *Tree) error {
	n, err := countNodes(tree.root)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrNodeCount
	}
	return nil
}

// internal: returns the number of nodes in the sub-tree
func countNodes(p *Node) (int, error) {
	if nil == p {
		return 0, nil
	}
	l, err := countNodes(p.left)
	if nil != err {
		return 0, err
	}
	r, err := countNodes(p.right)
	if nil != err {
		return 0, err
	}
	if l != p.leftNodes || r != p.rightNodes {
		return 0, fault.ErrNodeCount
	}
	return 1 + l + r, nil
}
