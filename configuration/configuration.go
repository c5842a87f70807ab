// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

// basic defaults (log directory is relative to the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "avl-cli.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// fresh map each time as decoding merges into it
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		logger.DefaultTag: "info",
	}
}

// Configuration - settings for the tree tools
type Configuration struct {
	NumericKeys bool                 `gluamapper:"numeric_keys" json:"numeric_keys"`
	CheckEach   bool                 `gluamapper:"check_each" json:"check_each"`
	PrintData   bool                 `gluamapper:"print_data" json:"print_data"`
	Logging     logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - the configuration used when no file is given
// logging is copied to the console, the log file goes to the system
// temporary directory
func Default() *Configuration {
	return &Configuration{
		NumericKeys: false,
		CheckEach:   false,
		PrintData:   true,
		Logging: logger.Configuration{
			Directory: os.TempDir(),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   true,
			Levels:    defaultLogLevels(),
		},
	}
}

// GetConfiguration - read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if !util.EnsureFileExists(configurationFileName) {
		return nil, fault.ErrConfigurationFile
	}

	// absolute path to the directory holding the file
	baseDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		NumericKeys: false,
		CheckEach:   false,
		PrintData:   true,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    defaultLogLevels(),
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if options.Logging.Count <= 0 {
		return nil, fault.ErrInvalidCount
	}
	if "" == options.Logging.File || filepath.Base(options.Logging.File) != options.Logging.File {
		return nil, fault.ErrNotPlainFileName
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the configuration file directory
	mustBeAbsolute := []*string{
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(baseDirectory, *f)
	}

	if fileInfo, err := os.Stat(options.Logging.Directory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrInvalidDirectory
	}

	return options, nil
}
