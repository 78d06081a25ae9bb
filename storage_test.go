// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering

import "testing"

func TestHeapStorageChunkWraps(t *testing.T) {
	st := newHeapStorageInit[int](4)
	for i := 0; i < 4; i++ {
		*st.ValueAt(i) = i
	}
	head, tail := st.Chunk(2, 4)
	if len(head) != 2 || len(tail) != 2 {
		t.Fatalf("Chunk(2,4): got head=%d tail=%d, want 2,2", len(head), len(tail))
	}
	if head[0] != 2 || head[1] != 3 || tail[0] != 0 || tail[1] != 1 {
		t.Fatalf("Chunk(2,4) contents: head=%v tail=%v", head, tail)
	}
}

func TestHeapStorageChunkNoWrap(t *testing.T) {
	st := newHeapStorageInit[int](4)
	head, tail := st.Chunk(0, 2)
	if len(head) != 2 || tail != nil {
		t.Fatalf("Chunk(0,2): got head=%d tail=%v, want 2,nil", len(head), tail)
	}
}

func TestHeapStorageReleaseClosesRange(t *testing.T) {
	st := newHeapStorage[*closeCounter](4)
	vals := make([]*closeCounter, 4)
	for i := range vals {
		vals[i] = &closeCounter{value: i}
		*st.ValueAt(i) = vals[i]
		*st.StateAt(i) = slotInit
	}
	st.release(1, 3)
	if vals[0].n != 0 || vals[3].n != 0 {
		t.Fatal("release(1,3): touched slots outside range")
	}
	if vals[1].n != 1 || vals[2].n != 1 {
		t.Fatal("release(1,3): did not close slots in range")
	}
}

func TestHeapStorageFromWrapsSequence(t *testing.T) {
	seq := []int{1, 2, 3}
	st := newHeapStorageFrom[int](seq)
	if st.Len() != 3 {
		t.Fatalf("Len: got %d, want 3", st.Len())
	}
	if *st.StateAt(0) != slotInit {
		t.Fatalf("StateAt(0): got %v, want slotInit", *st.StateAt(0))
	}
}

func TestInlineStorageLenMatchesArray(t *testing.T) {
	st := newInlineStorage[int, [8]int]()
	if st.Len() != 8 {
		t.Fatalf("Len: got %d, want 8", st.Len())
	}
	for i := 0; i < 8; i++ {
		if *st.StateAt(i) != slotUninit {
			t.Fatalf("StateAt(%d): got %v, want slotUninit", i, *st.StateAt(i))
		}
	}
}

func TestInlineStorageChunkWraps(t *testing.T) {
	st := newInlineStorageInit[int, [4]int]()
	for i := 0; i < 4; i++ {
		*st.ValueAt(i) = i * 10
	}
	head, tail := st.Chunk(3, 3)
	if len(head) != 1 || len(tail) != 2 {
		t.Fatalf("Chunk(3,3): got head=%d tail=%d", len(head), len(tail))
	}
	if head[0] != 30 || tail[0] != 0 || tail[1] != 10 {
		t.Fatalf("Chunk(3,3) contents: head=%v tail=%v", head, tail)
	}
}

func TestInlineStorageFromCopiesArray(t *testing.T) {
	arr := [4]int{9, 8, 7, 6}
	st := newInlineStorageFrom[int, [4]int](arr)
	if *st.ValueAt(2) != 7 {
		t.Fatalf("ValueAt(2): got %d, want 7", *st.ValueAt(2))
	}
	if *st.StateAt(0) != slotInit {
		t.Fatalf("StateAt(0): got %v, want slotInit", *st.StateAt(0))
	}
}

func TestWriteSliceAndReadSliceRoundTripAcrossWrap(t *testing.T) {
	st := newHeapStorage[int](4)
	markRange[int](st, 0, 4, slotInit)
	writeSlice[int](st, 2, []int{100, 200, 300})
	dst := make([]int, 3)
	readSlice[int](st, 2, dst)
	if dst[0] != 100 || dst[1] != 200 || dst[2] != 300 {
		t.Fatalf("round trip: got %v", dst)
	}
}
