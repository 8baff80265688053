// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package datasource

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(path, []byte("a\n1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 16)
	errc := make(chan error, 1)
	go func() {
		errc <- Watch(ctx, path, func() { changed <- struct{}{} })
	}()

	// A sibling file must not trigger the callback.
	deadline := time.After(10 * time.Second)
	for {
		if err := os.WriteFile(filepath.Join(dir, "other.csv"), []byte("b\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("a\n2\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		select {
		case <-changed:
			cancel()
			if err := <-errc; err != nil {
				t.Errorf("Watch returned %v", err)
			}
			return
		case <-time.After(50 * time.Millisecond):
			// The watcher may not be registered yet; write again.
		case <-deadline:
			t.Fatal("no change reported")
		}
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "data.csv"), func() {})
	if err == nil {
		t.Error("expected an error for a missing directory")
	}
}
