// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// LoggerTag - the channel used for the last messages before a panic
const LoggerTag = "fault"

// PanicMessage - the value passed to panic by Panicf
const PanicMessage = "abort, see last messages in log file"

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
//
// the logger package must already be initialised
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New(LoggerTag)
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the logger
func Finalise() {
	if nil != log {
		log.Flush()
	}
	log = nil
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
// prefixed by the caller's position
func Criticalf(format string, arguments ...interface{}) {
	critical(callerPrefix(2, format, arguments))
}

// Panicf - log a formatted message prefixed by the caller's position
// then panic with PanicMessage
func Panicf(format string, arguments ...interface{}) {
	critical(callerPrefix(2, format, arguments))
	Panic(PanicMessage)
}

// Panic - final panic
func Panic(message string) {
	critical(message)
	if nil != log {
		time.Sleep(100 * time.Millisecond) // to allow logging output
	}
	panic(message)
}

// format the message, with the file and line of the function skip
// levels up the stack when available
func callerPrefix(skip int, format string, arguments []interface{}) string {
	message := fmt.Sprintf(format, arguments...)
	if _, file, line, ok := runtime.Caller(skip); ok {
		return fmt.Sprintf("(%q:%d) %s", file, line, message)
	}
	return message
}

// without a logger channel the message goes to stdout
func critical(message string) {
	if nil == log {
		fmt.Printf("*** %s\n", message)
		return
	}
	log.Critical(message)
	log.Flush() // make sure log file is saved
}
