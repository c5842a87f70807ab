// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if c.NArg() > 1 {
		return fault.ErrTooManyArguments
	}
	files, err := util.InputFiles(c.Args())
	if nil != err {
		return err
	}
	file := files[0]
	printTree := c.Bool("print")

	channels := newWatcherChannels()
	watcher, err := newFileWatcher(file, logger.New(fileWatcherLoggerPrefix), channels)
	if nil != err {
		return err
	}
	if err := watcher.Start(); nil != err {
		return err
	}
	defer watcher.Stop()

	// every replay starts from an empty tree
	replay := func() {
		tree := avl.New()
		runner, err := newRunner(m, tree)
		if nil != err {
			fmt.Fprintf(m.e, "runner: %s\n", err)
			return
		}
		if err := replayFile(m, runner, file); nil != err {
			m.log.Warnf("replay: %s  error: %s", file, err)
			fmt.Fprintf(m.e, "%s: %s\n", file, err)
		}
		if printTree {
			tree.Fprint(m.w, m.config.PrintData)
		}
		printSummary(m, runner.Summary(), tree)
	}

	replay()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	for {
		select {
		case <-channels.change:
			m.log.Info("file changed, replay")
			if m.verbose {
				fmt.Fprintf(m.e, "changed: %s\n", file)
			}
			replay()

		case <-channels.remove:
			m.log.Warnf("file removed: %s", file)
			return fault.ErrWatcherStopped

		case sig := <-ch:
			m.log.Infof("received signal: %v", sig)
			return nil
		}
	}
}
