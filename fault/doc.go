// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances and last-gasp logging
//
// Each error is a single typed string value, so callers compare with
// == (or errors.Is through a wrapper) and test the class with the
// IsErrXxx functions.  Broken tree structure is reported through
// Panicf, which writes to the "fault" log channel before panicking.
package fault
