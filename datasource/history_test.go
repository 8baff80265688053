// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package datasource

import (
	"context"
	"testing"
	"time"
)

func TestHistoryNewestFirst(t *testing.T) {
	h := NewHistory(3)
	for _, v := range []float64{1, 2, 3, 4} {
		h.Append(Float(v))
	}

	if h.ItemCount() != 3 {
		t.Fatalf("ItemCount() = %d, want 3", h.ItemCount())
	}
	want := []float64{4, 3, 2}
	for i, w := range want {
		if got := h.Item(i).Float(); got != w {
			t.Errorf("Item(%d) = %v, want %v", i, got, w)
		}
	}
	if h.Item(3).Valid() {
		t.Error("Item(3) should be invalid")
	}
	if h.Minimum().Float() != 2 || h.Maximum().Float() != 4 {
		t.Errorf("extrema = %v, %v, want 2, 4", h.Minimum().Float(), h.Maximum().Float())
	}
}

func TestHistoryIgnoresInvalid(t *testing.T) {
	h := NewHistory(2)
	h.Append(Invalid())
	if h.ItemCount() != 0 {
		t.Errorf("ItemCount() = %d, want 0", h.ItemCount())
	}
	if h.Minimum().Valid() {
		t.Error("empty history minimum should be invalid")
	}
}

func TestHistorySetLength(t *testing.T) {
	h := NewHistory(0)
	if h.Length() != DefaultHistoryLength {
		t.Errorf("Length() = %d, want %d", h.Length(), DefaultHistoryLength)
	}
	for i := 0; i < 5; i++ {
		h.Append(Int(i))
	}
	calls := 0
	h.OnDataChanged(func() { calls++ })

	h.SetLength(2)
	if h.ItemCount() != 2 || First(h).Int() != 4 {
		t.Errorf("after shrinking: count %d, first %d", h.ItemCount(), First(h).Int())
	}
	if calls != 1 {
		t.Errorf("listener called %d times, want 1", calls)
	}

	h.Clear()
	if h.ItemCount() != 0 {
		t.Errorf("ItemCount() after Clear = %d", h.ItemCount())
	}
}

func TestHistorySample(t *testing.T) {
	h := NewHistory(100)
	src := NewSingle(Float(7))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Sample(ctx, src, time.Millisecond)
		close(done)
	}()

	deadline := time.After(5 * time.Second)
	for h.ItemCount() < 3 {
		select {
		case <-deadline:
			cancel()
			t.Fatal("history did not sample in time")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	<-done

	if First(h).Float() != 7 {
		t.Errorf("sampled value = %v, want 7", First(h).Float())
	}
}
