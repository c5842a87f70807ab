// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/script"
	"github.com/bitmark-inc/avltree/util"
)

func runRun(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	files, err := util.InputFiles(c.Args())
	if nil != err {
		return err
	}

	tree := avl.New()
	runner, err := newRunner(m, tree)
	if nil != err {
		return err
	}

	for _, file := range files {
		if err := replayFile(m, runner, file); nil != err {
			return fmt.Errorf("%s: %s", file, err)
		}
	}

	if c.Bool("print") {
		tree.Fprint(m.w, m.config.PrintData)
	}
	printSummary(m, runner.Summary(), tree)
	return nil
}

func newRunner(m *metadata, index script.Index) (*script.Runner, error) {
	options := script.Options{
		NumericKeys: m.config.NumericKeys,
		CheckEach:   m.config.CheckEach,
		PrintData:   m.config.PrintData,
	}
	return script.NewRunner(index, options, m.w, m.log)
}

// parse a whole file before running any of it
func replayFile(m *metadata, runner *script.Runner, file string) error {
	f, err := os.Open(file)
	if nil != err {
		return err
	}
	defer f.Close()

	operations, err := script.Parse(f)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "replaying %d operations from: %s\n", len(operations), file)
	}
	m.log.Infof("replay: %s  operations: %d", file, len(operations))

	return runner.Run(operations)
}

func printSummary(m *metadata, s script.Summary, tree *avl.Tree) {
	fmt.Fprintf(m.w, "inserted: %d  replaced: %d  deleted: %d  missing: %d  found: %d  checks: %d\n",
		s.Inserted, s.Replaced, s.Deleted, s.Missing, s.Found, s.Checks)
	fmt.Fprintf(m.w, "count: %d  height: %d\n", tree.Count(), tree.Height())
}
