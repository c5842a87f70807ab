// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

const (
	fileWatcherLoggerPrefix = "file-watcher"
)

// FileWatcher - report writes to, and removal of, a single file
type FileWatcher interface {
	Start() error
	Stop() error
}

type fileWatcher struct {
	log      *logger.L
	channels watcherChannels
	watcher  *fsnotify.Watcher
	filePath string
}

type watcherChannels struct {
	change chan struct{}
	remove chan struct{}
}

func newWatcherChannels() watcherChannels {
	return watcherChannels{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

func newFileWatcher(targetFile string, log *logger.L, channels watcherChannels) (FileWatcher, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if !util.EnsureFileExists(filePath) {
		return nil, fault.ErrFileNotFound
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		channels: channels,
		watcher:  watcher,
		filePath: filePath,
	}, nil
}

// Start - watch the directory holding the file so that a file
// replaced by rename is seen as a create
func (w *fileWatcher) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go w.loop()
	return nil
}

// Stop - release the watcher, the event loop ends
func (w *fileWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *fileWatcher) loop() {
	name := filepath.Base(w.filePath)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				w.log.Info("watcher closed")
				return
			}
			if filepath.Base(event.Name) != name {
				w.log.Tracef("file %s not match, discard event", event.Name)
				continue
			}
			w.log.Debugf("file event: %v", event)

			if watcherEventFileRemove(event) {
				w.log.Warnf("file %s removed, stop", w.filePath)
				w.sendEvent(w.channels.remove, "remove")
				return
			}
			if watcherEventFileChange(event) {
				w.sendEvent(w.channels.change, "change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

func isChannelFull(ch chan<- struct{}) bool {
	return len(ch) == cap(ch)
}

// a full channel already has a pending event of the same kind
func (w *fileWatcher) sendEvent(ch chan<- struct{}, name string) {
	if !isChannelFull(ch) {
		ch <- struct{}{}
	} else {
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
