// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Every node stores its balance factor, the height of its right
// sub-tree minus the height of its left sub-tree, which is always one
// of -1, 0, +1 between calls.  Insert and Delete first change the tree
// as a plain binary search tree, then walk up the parent pointers
// adjusting balance factors and rotating until the height change is
// absorbed or the root is reached.
//
// This version allows for data associated with key, which can be
// overwritten by an insert with the same key.  Also delete does not
// copy data around: a node with two children exchanges its position
// with its in-order predecessor before being unlinked, so that
// pointers to other nodes remain valid and previous nodes can be
// deleted during iteration.
package avl
