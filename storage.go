// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering

// Storage is the capability interface every ring backing satisfies (spec
// §4.1, Design Notes §9: "Parametric backings... expressed as a capability
// interface"). Implementations: inlineStorage, heapStorage, vmemStorage.
//
// len(Storage) is the physical slot count N; callers derive the usable
// capacity (N-1) themselves, the gap slot is a property of the index
// protocol, not of storage.
type Storage[T any] interface {
	// Len returns N, the physical slot count.
	Len() int

	// ValueAt returns a pointer to slot i's element. Undefined if i >= Len().
	ValueAt(i int) *T

	// StateAt returns a pointer to slot i's tri-state tag.
	StateAt(i int) *slotState

	// Chunk returns a view of k consecutive slots' elements starting at i,
	// wrapping around N as needed. Two-slice backings split the range at
	// the physical end of the array (tail is empty if the range doesn't
	// wrap); the double-mapped backing always returns a single contiguous
	// head and a nil tail. Callers must accept either shape.
	Chunk(i, k int) (head, tail []T)

	// release invokes slot.release() over every slot currently known to
	// hold a live value in [lo, hi) (mod Len()), used when the last handle
	// referencing the storage is closed (spec P6).
	release(lo, hi int)

	// teardown releases any backing resources (heap/vmem). Inline storage's
	// teardown is a no-op: its backing array is not heap-owned.
	teardown()
}

// writeSlice copies src into st starting at logical index i, splitting the
// write across the wrap exactly once (spec's push_slice_at helper).
func writeSlice[T any](st Storage[T], i int, src []T) {
	head, tail := st.Chunk(i, len(src))
	n := copy(head, src)
	copy(tail, src[n:])
}

// readSlice copies k = len(dst) elements out of st starting at logical
// index i into dst, splitting the read across the wrap exactly once (spec's
// extract_slice_at helper).
func readSlice[T any](st Storage[T], i int, dst []T) {
	head, tail := st.Chunk(i, len(dst))
	n := copy(dst, head)
	copy(dst[n:], tail)
}

// markRange sets every slot in [lo, lo+count) (mod Len()) to state s. Used by the
// slice push/pop variants to keep the tri-state tag consistent without
// forcing callers through the single-element path.
func markRange[T any](st Storage[T], lo, count int, s slotState) {
	n := st.Len()
	for j := 0; j < count; j++ {
		*st.StateAt((lo + j) % n) = s
	}
}

// heapStorage is the runtime-sized, heap-allocated backing (spec §4.1.2).
type heapStorage[T any] struct {
	values []T
	states []slotState
}

// newHeapStorage allocates a heap-backed Storage with n physical slots, all
// slots uninitialized.
func newHeapStorage[T any](n int) *heapStorage[T] {
	if n <= 0 {
		badCapacity(n)
	}
	return &heapStorage[T]{
		values: make([]T, n),
		states: make([]slotState, n),
	}
}

// newHeapStorageInit allocates a heap-backed Storage with n physical slots,
// all marked initialized (the "Default-initialized slots" factory variant
// of spec §6).
func newHeapStorageInit[T any](n int) *heapStorage[T] {
	st := newHeapStorage[T](n)
	for i := range st.states {
		st.states[i] = slotInit
	}
	return st
}

// newHeapStorageFrom wraps an owned, resizable sequence as heap backing,
// all slots marked initialized (spec §6 "from an owned resizable sequence").
func newHeapStorageFrom[T any](seq []T) *heapStorage[T] {
	if len(seq) <= 0 {
		badCapacity(len(seq))
	}
	states := make([]slotState, len(seq))
	for i := range states {
		states[i] = slotInit
	}
	return &heapStorage[T]{values: seq, states: states}
}

func (h *heapStorage[T]) Len() int               { return len(h.values) }
func (h *heapStorage[T]) ValueAt(i int) *T        { return &h.values[i] }
func (h *heapStorage[T]) StateAt(i int) *slotState { return &h.states[i] }

func (h *heapStorage[T]) Chunk(i, k int) (head, tail []T) {
	n := len(h.values)
	if k == 0 {
		return nil, nil
	}
	first := n - i
	if first > k {
		first = k
	}
	head = h.values[i : i+first]
	if rem := k - first; rem > 0 {
		tail = h.values[:rem]
	}
	return head, tail
}

func (h *heapStorage[T]) release(lo, hi int) {
	n := len(h.values)
	for j := lo; j != hi; j = (j + 1) % n {
		s := slot[T]{value: h.values[j], state: h.states[j]}
		s.release()
		h.values[j] = s.value
		h.states[j] = s.state
	}
}

func (h *heapStorage[T]) teardown() {
	h.values = nil
	h.states = nil
}
