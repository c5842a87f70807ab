// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// StringKey - keys ordered by byte-wise string comparison
type StringKey string

// Compare - for avl.Item
func (s StringKey) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(StringKey)))
}

func (s StringKey) String() string {
	return string(s)
}

// IntKey - keys ordered numerically
type IntKey int64

// Compare - for avl.Item
func (i IntKey) Compare(x interface{}) int {
	j := x.(IntKey)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

func (i IntKey) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// KeyParser - convert the text of a key to a tree item
type KeyParser func(string) (avl.Item, error)

// ParseStringKey - any non-empty text
func ParseStringKey(s string) (avl.Item, error) {
	if "" == s {
		return nil, fault.ErrInvalidKey
	}
	return StringKey(s), nil
}

// ParseIntKey - decimal, optionally signed
func ParseIntKey(s string) (avl.Item, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if nil != err {
		return nil, fault.ErrInvalidKey
	}
	return IntKey(i), nil
}
