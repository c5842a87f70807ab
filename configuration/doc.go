// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// a file returns one table:
//
//   return {
//       numeric_keys = false,
//       check_each = true,
//       print_data = true,
//       logging = {
//           directory = "log",
//           file = "avl-cli.log",
//           size = 1048576,
//           count = 10,
//           console = false,
//           levels = { DEFAULT = "info", script = "debug" },
//       },
//   }
package configuration
