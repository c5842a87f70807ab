// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"

	"github.com/bitmark-inc/avltree/paths"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] TREE...\n"+
			"  TREE is written key(left,right), e.g. 1(2(3,),4)", program)
	}

	verbose := len(options["verbose"]) > 0

	unequal, err := checkAll(os.Stdout, arguments, verbose)
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}
	if unequal > 0 {
		exitwithstatus.Exit(1)
	}
}

// print one result line per tree, return the number of unequal trees
func checkAll(w io.Writer, trees []string, verbose bool) (int, error) {
	unequal := 0
	for _, s := range trees {
		root, err := paths.Parse(s)
		if nil != err {
			return unequal, fmt.Errorf("tree: %q  error: %w", s, err)
		}

		result := "equal"
		if !paths.Equal(root) {
			result = "unequal"
			unequal += 1
		}

		if verbose {
			fmt.Fprintf(w, "%s: %s\n", root, result)
		} else {
			fmt.Fprintf(w, "%s\n", result)
		}
	}
	return unequal, nil
}
