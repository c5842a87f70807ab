// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// Opcode - the kind of an operation
type Opcode int

// the operations
const (
	OpInsert Opcode = iota
	OpDelete
	OpSearch
	OpGet
	OpCheck
	OpPrint
	OpCount
	OpClear
)

var opcodeNames = []string{
	OpInsert: "insert",
	OpDelete: "delete",
	OpSearch: "search",
	OpGet:    "get",
	OpCheck:  "check",
	OpPrint:  "print",
	OpCount:  "count",
	OpClear:  "clear",
}

func (op Opcode) String() string {
	if op < 0 || int(op) >= len(opcodeNames) {
		return "unknown"
	}
	return opcodeNames[op]
}

// words accepted in a script and the operation with its argument rule
var keywords = map[string]struct {
	code Opcode
	args arguments
}{
	"insert": {OpInsert, keyAndValue},
	"add":    {OpInsert, keyAndValue},
	"delete": {OpDelete, keyOnly},
	"remove": {OpDelete, keyOnly},
	"search": {OpSearch, keyOnly},
	"get":    {OpGet, indexOnly},
	"check":  {OpCheck, none},
	"print":  {OpPrint, none},
	"count":  {OpCount, none},
	"clear":  {OpClear, none},
}

type arguments int

const (
	none arguments = iota
	keyOnly
	keyAndValue
	indexOnly
)

// Operation - one parsed line of a script
type Operation struct {
	Line  int    // line number in the source, from 1
	Code  Opcode // what to do
	Key   string // insert, delete, search
	Value string // insert: the remaining words joined by single spaces
	Index int    // get
}

// Error - an error tied to a script line
type Error struct {
	Line int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

// Unwrap - the underlying fault
func (e *Error) Unwrap() error {
	return e.Err
}

// Parse - read a script
//
// one operation per line, words separated by white space, anything
// after '#' is a comment and blank lines are ignored
func Parse(r io.Reader) ([]Operation, error) {
	operations := make([]Operation, 0, 64)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line += 1

		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		words := strings.Fields(text)
		if 0 == len(words) {
			continue
		}

		op, err := parseWords(words)
		if nil != err {
			return nil, &Error{Line: line, Err: err}
		}
		op.Line = line
		operations = append(operations, op)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return operations, nil
}

func parseWords(words []string) (Operation, error) {
	k, ok := keywords[strings.ToLower(words[0])]
	if !ok {
		return Operation{}, fault.ErrUnknownOperation
	}
	op := Operation{Code: k.code}
	args := words[1:]

	switch k.args {
	case none:
		if 0 != len(args) {
			return op, fault.ErrTooManyArguments
		}

	case keyOnly:
		if 0 == len(args) {
			return op, fault.ErrMissingArgument
		}
		if len(args) > 1 {
			return op, fault.ErrTooManyArguments
		}
		op.Key = args[0]

	case keyAndValue:
		if 0 == len(args) {
			return op, fault.ErrMissingArgument
		}
		op.Key = args[0]
		op.Value = strings.Join(args[1:], " ")

	case indexOnly:
		if 0 == len(args) {
			return op, fault.ErrMissingArgument
		}
		if len(args) > 1 {
			return op, fault.ErrTooManyArguments
		}
		index, err := strconv.Atoi(args[0])
		if nil != err || index < 0 {
			return op, fault.ErrInvalidIndex
		}
		op.Index = index
	}
	return op, nil
}
