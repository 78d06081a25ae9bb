// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering_test

import (
	"testing"

	"code.hybscloud.com/onering"
)

func TestSplitOnMutableBufferPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Split on mutable buffer: want panic")
		}
	}()
	buf := onering.BuildHeap[int](onering.New(4).Mutable())
	buf.Split()
}

func TestSplitMutableOnNonMutableBufferPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("SplitMutable on non-mutable buffer: want panic")
		}
	}()
	buf := onering.NewHeapDefault[int](4, false)
	buf.SplitMutable()
}

func TestDoubleSplitPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("second Split: want panic")
		}
	}()
	buf := onering.NewHeapDefault[int](4, false)
	buf.Split()
	buf.Split()
}

func TestNewWithNonPositiveCapacityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New(0): want panic")
		}
	}()
	onering.New(0)
}

func TestInlineBufferSplitAndTransfer(t *testing.T) {
	buf := onering.NewInlineDefault[int, [8]int](false)
	p, c := buf.Split()
	for i := 0; i < 7; i++ {
		if _, ok := p.Push(i); !ok {
			t.Fatalf("Push(%d): want ok", i)
		}
	}
	for i := 0; i < 7; i++ {
		v, ok := c.Pop()
		if !ok || v != i {
			t.Fatalf("Pop(%d): got (%d,%v)", i, v, ok)
		}
	}
}

func TestNewVMemPushPopOnAnyBacking(t *testing.T) {
	buf := onering.NewVMem[int](4, false)
	p, c := buf.Split()
	if _, ok := p.Push(1); !ok {
		t.Fatal("Push after NewVMem: want ok regardless of backing")
	}
	if v, ok := c.Pop(); !ok || v != 1 {
		t.Fatalf("Pop after NewVMem: got (%d,%v)", v, ok)
	}
}

func TestCloseReleasesLiveElementsOnLastHandle(t *testing.T) {
	var closed int
	buf := onering.NewHeap[*resource](4, false)
	p, c := buf.Split()

	p.PushInit(&resource{closed: &closed})
	p.PushInit(&resource{closed: &closed})

	if err := p.Close(); err != nil {
		t.Fatalf("p.Close: %v", err)
	}
	if closed != 0 {
		t.Fatalf("closed after producer-only Close: got %d, want 0 (consumer still live)", closed)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("c.Close: %v", err)
	}
	if closed != 2 {
		t.Fatalf("closed after last handle Close: got %d, want 2", closed)
	}
}
