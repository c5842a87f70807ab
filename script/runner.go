// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// Index - the ordered store a script is replayed against
type Index interface {
	Insert(key avl.Item, value interface{}) bool
	Delete(key avl.Item) interface{}
	Search(key avl.Item) (*avl.Node, int)
	Get(index int) *avl.Node
	Count() int
	Height() int
	Clear()
	Validate() error
	Fprint(w io.Writer, printData bool) int
}

// Options - runner behaviour
type Options struct {
	NumericKeys bool // IntKey instead of StringKey
	CheckEach   bool // validate after every insert and delete
	PrintData   bool // print shows values and balance details
}

// Summary - totals from one or more runs
type Summary struct {
	Inserted int // new keys
	Replaced int // inserts of a key already present
	Deleted  int
	Missing  int // delete or search of an absent key
	Found    int // successful search or get
	Checks   int // validations performed
}

// Runner - replays operations against an index
type Runner struct {
	index     Index
	log       *logger.L
	out       io.Writer
	parseKey  KeyParser
	checkEach bool
	printData bool
	summary   Summary
}

// NewRunner - create a runner writing results to out
func NewRunner(index Index, options Options, out io.Writer, log *logger.L) (*Runner, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	parseKey := ParseStringKey
	if options.NumericKeys {
		parseKey = ParseIntKey
	}

	return &Runner{
		index:     index,
		log:       log,
		out:       out,
		parseKey:  parseKey,
		checkEach: options.CheckEach,
		printData: options.PrintData,
	}, nil
}

// Summary - totals of all operations run so far
func (r *Runner) Summary() Summary {
	return r.summary
}

// Run - execute operations in order, stopping at the first failure
// the returned error is an *Error carrying the line number
func (r *Runner) Run(operations []Operation) error {
	for _, op := range operations {
		if err := r.execute(op); nil != err {
			r.log.Errorf("line: %d  %s  error: %s", op.Line, op.Code, err)
			return &Error{Line: op.Line, Err: err}
		}
	}
	r.log.Infof("summary: %+v  count: %d", r.summary, r.index.Count())
	return nil
}

func (r *Runner) execute(op Operation) error {
	r.log.Debugf("line: %d  %s  key: %q  index: %d", op.Line, op.Code, op.Key, op.Index)

	switch op.Code {
	case OpInsert:
		key, err := r.parseKey(op.Key)
		if nil != err {
			return err
		}
		if r.index.Insert(key, op.Value) {
			r.summary.Inserted += 1
			fmt.Fprintf(r.out, "insert %s: new\n", op.Key)
		} else {
			r.summary.Replaced += 1
			fmt.Fprintf(r.out, "insert %s: replaced\n", op.Key)
		}
		return r.checkEachStep()

	case OpDelete:
		key, err := r.parseKey(op.Key)
		if nil != err {
			return err
		}
		if _, index := r.index.Search(key); index < 0 {
			r.summary.Missing += 1
			fmt.Fprintf(r.out, "delete %s: missing\n", op.Key)
			return nil
		}
		value := r.index.Delete(key)
		r.summary.Deleted += 1
		fmt.Fprintf(r.out, "delete %s: removed %v\n", op.Key, value)
		return r.checkEachStep()

	case OpSearch:
		key, err := r.parseKey(op.Key)
		if nil != err {
			return err
		}
		node, index := r.index.Search(key)
		if nil == node {
			r.summary.Missing += 1
			fmt.Fprintf(r.out, "search %s: missing\n", op.Key)
			return nil
		}
		r.summary.Found += 1
		fmt.Fprintf(r.out, "search %s: index %d value %v\n", op.Key, index, node.Value())

	case OpGet:
		node := r.index.Get(op.Index)
		if nil == node {
			fmt.Fprintf(r.out, "get %d: out of range\n", op.Index)
			return nil
		}
		r.summary.Found += 1
		fmt.Fprintf(r.out, "get %d: %v → %v\n", op.Index, node.Key(), node.Value())

	case OpCheck:
		if err := r.check(); nil != err {
			return err
		}
		fmt.Fprintf(r.out, "check: ok  count: %d  height: %d\n", r.index.Count(), r.index.Height())

	case OpPrint:
		r.index.Fprint(r.out, r.printData)

	case OpCount:
		fmt.Fprintf(r.out, "count: %d  height: %d\n", r.index.Count(), r.index.Height())

	case OpClear:
		r.index.Clear()
		fmt.Fprintf(r.out, "clear\n")

	default:
		return fault.ErrUnknownOperation
	}
	return nil
}

func (r *Runner) checkEachStep() error {
	if !r.checkEach {
		return nil
	}
	return r.check()
}

func (r *Runner) check() error {
	r.summary.Checks += 1
	if err := r.index.Validate(); nil != err {
		r.log.Criticalf("tree validation failed: %s", err)
		return err
	}
	return nil
}
