// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
)

func runRandom(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	toDelete := c.Int("delete")
	if count < 0 || toDelete < 0 || toDelete > count {
		return fault.ErrInvalidCount
	}

	tree := avl.New()
	s, err := randomWorkload(tree, count, toDelete, c.Int64("seed"), m.config.CheckEach)
	if nil != err {
		fault.Criticalf("random workload seed: %d  failed: %s", c.Int64("seed"), err)
		return err
	}

	if c.Bool("print") {
		tree.Fprint(m.w, m.config.PrintData)
	}
	printSummary(m, s, tree)

	bound := heightBound(tree.Count())
	if tree.Height() > bound {
		m.log.Criticalf("height: %d  exceeds bound: %d", tree.Height(), bound)
		return fault.ErrOutOfBalance
	}
	fmt.Fprintf(m.w, "height bound: %d  ok\n", bound)
	return nil
}

// insert count distinct keys in random order then delete a random
// selection of them
func randomWorkload(tree *avl.Tree, count int, toDelete int, seed int64, checkEach bool) (script.Summary, error) {
	s := script.Summary{}
	r := rand.New(rand.NewSource(seed))

	keys := r.Perm(count)
	for _, k := range keys {
		if tree.Insert(script.IntKey(k), k) {
			s.Inserted += 1
		} else {
			s.Replaced += 1
		}
		if checkEach {
			s.Checks += 1
			if err := tree.Validate(); nil != err {
				return s, err
			}
		}
	}

	r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for _, k := range keys[:toDelete] {
		if nil == tree.Delete(script.IntKey(k)) {
			s.Missing += 1
		} else {
			s.Deleted += 1
		}
		if checkEach {
			s.Checks += 1
			if err := tree.Validate(); nil != err {
				return s, err
			}
		}
	}

	s.Checks += 1
	if err := tree.Validate(); nil != err {
		return s, err
	}
	if tree.Count() != count-toDelete {
		return s, fault.ErrNodeCount
	}
	return s, nil
}

// maximum height of a balanced tree holding n nodes
func heightBound(n int) int {
	return int(math.Ceil(1.44 * math.Log2(float64(n+2))))
}
