// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
)

const (
	logDirectory = "testing"
	category     = "testing"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(logDirectory)
	_ = os.Mkdir(logDirectory, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: logDirectory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(logDirectory)
	os.Exit(rc)
}

func testMetadata(w *bytes.Buffer) *metadata {
	return &metadata{
		config:  configuration.Default(),
		verbose: false,
		log:     logger.New(category),
		e:       ioutil.Discard,
		w:       w,
	}
}

func writeScript(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "avl-cli")
	require.NoError(t, err)
	file := filepath.Join(dir, "workload.avl")
	require.NoError(t, ioutil.WriteFile(file, []byte(text), 0600))
	return file, func() { os.RemoveAll(dir) }
}

func TestRandomWorkload(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		tree := avl.New()
		s, err := randomWorkload(tree, 300, 120, seed, true)
		require.NoError(t, err, "seed: %d", seed)

		assert.Equal(t, 300, s.Inserted)
		assert.Equal(t, 0, s.Replaced)
		assert.Equal(t, 120, s.Deleted)
		assert.Equal(t, 0, s.Missing)
		assert.Equal(t, 300+120+1, s.Checks)
		assert.Equal(t, 180, tree.Count())
		assert.True(t, tree.Height() <= heightBound(tree.Count()))
	}
}

func TestRandomWorkloadDeleteAll(t *testing.T) {
	tree := avl.New()
	s, err := randomWorkload(tree, 50, 50, 7, false)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Checks)
	assert.True(t, tree.IsEmpty())
}

func TestHeightBound(t *testing.T) {
	assert.Equal(t, 2, heightBound(0))
	assert.Equal(t, 3, heightBound(1))
	assert.Equal(t, 15, heightBound(1000))
}

func TestReplayFile(t *testing.T) {
	file, cleanup := writeScript(t, "insert b 2\ninsert a 1\nsearch a\n")
	defer cleanup()

	buffer := &bytes.Buffer{}
	m := testMetadata(buffer)
	tree := avl.New()
	runner, err := newRunner(m, tree)
	require.NoError(t, err)

	require.NoError(t, replayFile(m, runner, file))
	assert.Equal(t, "insert b: new\ninsert a: new\nsearch a: index 0 value 1\n", buffer.String())

	buffer.Reset()
	printSummary(m, runner.Summary(), tree)
	assert.Equal(t, "inserted: 2  replaced: 0  deleted: 0  missing: 0  found: 1  checks: 0\ncount: 2  height: 2\n", buffer.String())
}

func TestReplayFileParseError(t *testing.T) {
	file, cleanup := writeScript(t, "insert b\njump\n")
	defer cleanup()

	m := testMetadata(&bytes.Buffer{})
	tree := avl.New()
	runner, err := newRunner(m, tree)
	require.NoError(t, err)

	err = replayFile(m, runner, file)
	require.Error(t, err)
	e, ok := err.(*script.Error)
	require.True(t, ok)
	assert.Equal(t, 2, e.Line)
	assert.True(t, tree.IsEmpty(), "nothing runs when parsing fails")
}

func TestWatcherEvents(t *testing.T) {
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Name: "f", Op: fsnotify.Remove}))
	assert.False(t, watcherEventFileRemove(fsnotify.Event{Name: "f", Op: fsnotify.Write}))
	assert.True(t, watcherEventFileChange(fsnotify.Event{Name: "f", Op: fsnotify.Write}))
	assert.True(t, watcherEventFileChange(fsnotify.Event{Name: "f", Op: fsnotify.Create}))
	assert.False(t, watcherEventFileChange(fsnotify.Event{Name: "f", Op: fsnotify.Chmod}))
}

func TestSendEventDiscardsWhenFull(t *testing.T) {
	w := &fileWatcher{log: logger.New(category)}
	ch := make(chan struct{}, 1)

	w.sendEvent(ch, "change")
	w.sendEvent(ch, "change")
	assert.Equal(t, 1, len(ch))
}

func TestNewFileWatcherErrors(t *testing.T) {
	_, err := newFileWatcher("x", nil, newWatcherChannels())
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err)

	_, err = newFileWatcher("/does/not/exist.avl", logger.New(category), newWatcherChannels())
	assert.Equal(t, fault.ErrFileNotFound, err)
}

func TestFileWatcher(t *testing.T) {
	file, cleanup := writeScript(t, "insert 1\n")
	defer cleanup()

	channels := newWatcherChannels()
	w, err := newFileWatcher(file, logger.New(category), channels)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, ioutil.WriteFile(file, []byte("insert 2\n"), 0600))
	select {
	case <-channels.change:
	case <-time.After(5 * time.Second):
		t.Fatal("no change event")
	}

	require.NoError(t, os.Remove(file))
	select {
	case <-channels.remove:
	case <-time.After(5 * time.Second):
		t.Fatal("no remove event")
	}
}
