// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - replay insert/delete workloads against a tree
//
// a script is plain text, one operation per line:
//
//   insert KEY [VALUE...]   (or add)
//   delete KEY              (or remove)
//   search KEY
//   get INDEX
//   check
//   print
//   count
//   clear
//
//go:generate mockgen -destination=mocks/index.go -package=mocks github.com/bitmark-inc/avltree/script Index
package script
