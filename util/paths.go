// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/avltree/fault"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - true only for an existing regular file
func EnsureFileExists(name string) bool {
	info, err := os.Stat(name)
	return nil == err && info.Mode().IsRegular()
}

// InputFiles - resolve a list of input file names against the
// current directory; every file must exist
func InputFiles(names []string) ([]string, error) {
	if 0 == len(names) {
		return nil, fault.ErrMissingArgument
	}

	directory, err := os.Getwd()
	if nil != err {
		return nil, err
	}

	files := make([]string, 0, len(names))
	for _, name := range names {
		f := EnsureAbsolute(directory, name)
		if !EnsureFileExists(f) {
			return nil, fault.ErrFileNotFound
		}
		files = append(files, f)
	}
	return files, nil
}
