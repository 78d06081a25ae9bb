// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering

import "testing"

type closeCounter struct {
	n     int
	value int
}

func (c *closeCounter) Close() error {
	c.n++
	return nil
}

func TestWriteInitAtReleasesPriorOccupant(t *testing.T) {
	st := newHeapStorage[*closeCounter](1)
	first := &closeCounter{value: 1}
	writeInitAt[*closeCounter](st, 0, first)
	if first.n != 0 {
		t.Fatalf("first.n: got %d, want 0 before overwrite", first.n)
	}
	second := &closeCounter{value: 2}
	writeInitAt[*closeCounter](st, 0, second)
	if first.n != 1 {
		t.Fatalf("first.n: got %d, want 1 after overwrite", first.n)
	}
	if *st.ValueAt(0) != second {
		t.Fatalf("ValueAt(0): got %v, want second", *st.ValueAt(0))
	}
	if *st.StateAt(0) != slotInit {
		t.Fatalf("StateAt(0): got %v, want slotInit", *st.StateAt(0))
	}
}

func TestWriteInitAtSkipsReleaseWhenNotInit(t *testing.T) {
	st := newHeapStorage[*closeCounter](1)
	*st.StateAt(0) = slotMoved
	v := &closeCounter{value: 1}
	writeInitAt[*closeCounter](st, 0, v)
	if *st.ValueAt(0) != v || *st.StateAt(0) != slotInit {
		t.Fatalf("writeInitAt over moved slot: got (%v,%v)", *st.ValueAt(0), *st.StateAt(0))
	}
	if v.n != 0 {
		t.Fatalf("v.n: got %d, want 0 (nothing to release on a moved slot)", v.n)
	}
}

func TestTakeMoveAtLeavesMovedState(t *testing.T) {
	st := newHeapStorageInit[int](1)
	*st.ValueAt(0) = 7
	v := takeMoveAt[int](st, 0)
	if v != 7 {
		t.Fatalf("takeMoveAt value: got %d, want 7", v)
	}
	if *st.StateAt(0) != slotMoved {
		t.Fatalf("StateAt(0): got %v, want slotMoved", *st.StateAt(0))
	}
}

func TestSlotIsZeroState(t *testing.T) {
	var s slot[int]
	if !s.isZeroState() {
		t.Fatal("isZeroState: want true for a fresh zero-value slot")
	}
	s.state = slotInit
	if s.isZeroState() {
		t.Fatal("isZeroState: want false once slotInit")
	}
	s.state = slotMoved
	if !s.isZeroState() {
		t.Fatal("isZeroState: want true once slotMoved")
	}
}

func TestSlotReleaseClosesLiveValueOnce(t *testing.T) {
	var s slot[*closeCounter]
	v := &closeCounter{value: 1}
	s.value = v
	s.state = slotInit
	s.release()
	if v.n != 1 {
		t.Fatalf("v.n: got %d, want 1", v.n)
	}
	if s.state != slotUninit {
		t.Fatalf("state: got %v, want slotUninit", s.state)
	}
	// releasing an already-uninitialized slot is a no-op
	s.release()
	if v.n != 1 {
		t.Fatalf("v.n after second release: got %d, want 1", v.n)
	}
}
