// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type StructureError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBalanceFactor        = StructureError("balance factor does not match subtree heights")
	ErrConfigurationFile    = NotFoundError("configuration file not found")
	ErrFileNotFound         = NotFoundError("file not found")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidDirectory     = InvalidError("invalid directory")
	ErrInvalidIndex         = InvalidError("invalid index")
	ErrInvalidKey           = InvalidError("invalid key")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidTree          = InvalidError("invalid tree description")
	ErrKeyOrder             = StructureError("keys are not in strictly increasing order")
	ErrMissingArgument      = InvalidError("missing argument")
	ErrMissingChild         = StructureError("rotation pivot has no child on the required side")
	ErrNoConfigurationTable = InvalidError("configuration file must return a table")
	ErrNodeCount            = StructureError("subtree node count mismatch")
	ErrNotPlainFileName     = InvalidError("file name must not contain a directory")
	ErrOutOfBalance         = StructureError("node balance outside -1..+1")
	ErrParentLink           = StructureError("parent link does not match child link")
	ErrTooManyArguments     = InvalidError("too many arguments")
	ErrUnknownOperation     = NotFoundError("unknown operation")
	ErrWatcherStopped       = ProcessError("file watcher stopped")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }
func (e StructureError) Error() string { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool    { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool   { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool  { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool   { _, ok := e.(ProcessError); return ok }
func IsErrStructure(e error) bool { _, ok := e.(StructureError); return ok }
