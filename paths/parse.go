// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package paths

import (
	"fmt"
	"unicode"

	"github.com/bitmark-inc/avltree/fault"
)

// Parse - read a tree in bracket notation
//
//   1(2(3,),4)  is  1 with left 2 (whose left is 3) and right 4
//   -           is  the empty tree
//
// spaces are ignored
func Parse(s string) (*Node, error) {
	text := make([]rune, 0, len(s))
	for _, c := range s {
		if !unicode.IsSpace(c) {
			text = append(text, c)
		}
	}

	if 0 == len(text) || (1 == len(text) && '-' == text[0]) {
		return nil, nil
	}

	p := &parser{text: text}
	root, err := p.node()
	if nil != err {
		return nil, err
	}
	if nil == root || p.pos != len(p.text) {
		return nil, p.fail("unexpected input")
	}
	return root, nil
}

type parser struct {
	text []rune
	pos  int
}

func (p *parser) fail(message string) error {
	return fmt.Errorf("%w: %s at offset %d", fault.ErrInvalidTree, message, p.pos)
}

func (p *parser) peek() rune {
	if p.pos >= len(p.text) {
		return 0
	}
	return p.text[p.pos]
}

// an absent node is an empty string before ',' or ')'
func (p *parser) node() (*Node, error) {
	c := p.peek()
	if ',' == c || ')' == c {
		return nil, nil
	}

	key, err := p.number()
	if nil != err {
		return nil, err
	}
	n := &Node{Key: key}

	if '(' != p.peek() {
		return n, nil
	}
	p.pos += 1

	if n.Left, err = p.node(); nil != err {
		return nil, err
	}
	if ',' != p.peek() {
		return nil, p.fail("expected ','")
	}
	p.pos += 1

	if n.Right, err = p.node(); nil != err {
		return nil, err
	}
	if ')' != p.peek() {
		return nil, p.fail("expected ')'")
	}
	p.pos += 1

	return n, nil
}

func (p *parser) number() (int, error) {
	sign := 1
	if '-' == p.peek() {
		sign = -1
		p.pos += 1
	}
	start := p.pos
	n := 0
	for p.pos < len(p.text) && '0' <= p.text[p.pos] && p.text[p.pos] <= '9' {
		n = 10*n + int(p.text[p.pos]-'0')
		p.pos += 1
	}
	if start == p.pos {
		return 0, p.fail("expected a key")
	}
	return sign * n, nil
}
