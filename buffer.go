// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering

// ring is the shared state co-owned by every handle split from a Buffer:
// the storage and the index state (spec §3 "Lifecycle" / Design Notes §9
// "Shared-buffer ownership across handles").
type ring[T any] struct {
	storage Storage[T]
	idx     indexState
}

// Buffer is the not-yet-split ring. It is produced by one of the New*
// constructors and consumed by Split or SplitMutable (spec §3/§6: "a single
// atomic split operation... After splitting, the buffer itself is
// logically consumed").
type Buffer[T any] struct {
	r       *ring[T]
	mutable bool
	split   bool
}

// newBuffer wires a Storage to a freshly built indexState. shared selects
// the sharedIndex (cross-goroutine) implementation over localIndex
// (single-goroutine).
func newBuffer[T any](st Storage[T], mutable, shared bool) *Buffer[T] {
	var idx indexState
	if shared {
		idx = newSharedIndex(mutable)
	} else {
		idx = newLocalIndex(mutable)
	}
	return &Buffer[T]{r: &ring[T]{storage: st, idx: idx}, mutable: mutable}
}

// NewHeap constructs a heap-backed Buffer with capacity n (runtime-sized),
// all slots uninitialized — the "capacity argument and zero-initialized
// slots" factory variant of spec §6. Callers must use the *Init methods
// until every slot has been written at least once.
//
// shared selects whether the handles produced by Split/SplitMutable will be
// used across goroutines (sharedIndex) or from a single goroutine
// (localIndex, no synchronization overhead).
func NewHeap[T any](n int, shared bool) *Buffer[T] {
	return newBuffer[T](newHeapStorage[T](n), false, shared)
}

// NewHeapDefault constructs a heap-backed Buffer with capacity n, every
// slot marked initialized to T's zero value (spec §6 "capacity argument and
// Default-initialized slots").
func NewHeapDefault[T any](n int, shared bool) *Buffer[T] {
	return newBuffer[T](newHeapStorageInit[T](n), false, shared)
}

// NewHeapFrom wraps an owned, resizable sequence as a heap-backed Buffer
// (spec §6 "from an owned resizable sequence"), every slot marked
// initialized.
func NewHeapFrom[T any](seq []T, shared bool) *Buffer[T] {
	return newBuffer[T](newHeapStorageFrom[T](seq), false, shared)
}

// NewInline constructs an inline-backed Buffer whose capacity is fixed by
// the array type A (spec §6 "from an owned fixed-size array", zero-init
// variant). See InlineArray for the supported tiers.
func NewInline[T any, A InlineArray[T]](shared bool) *Buffer[T] {
	return newBuffer[T](newInlineStorage[T, A](), false, shared)
}

// NewInlineDefault constructs an inline-backed Buffer with every slot
// marked initialized to T's zero value.
func NewInlineDefault[T any, A InlineArray[T]](shared bool) *Buffer[T] {
	return newBuffer[T](newInlineStorageInit[T, A](), false, shared)
}

// NewInlineFrom copies an owned fixed-size array into an inline-backed
// Buffer, every slot marked initialized.
func NewInlineFrom[T any, A InlineArray[T]](arr A, shared bool) *Buffer[T] {
	return newBuffer[T](newInlineStorageFrom[T, A](arr), false, shared)
}

// NewVMem constructs a double-mapped virtual-memory-backed Buffer with
// capacity n (rounded up to a page-size multiple), all slots uninitialized.
// Falls back to the heap backing when the host doesn't support double
// mapping (spec §6/§4.1.3).
func NewVMem[T any](n int, shared bool) *Buffer[T] {
	if st, ok := newVMemStorage[T](n); ok {
		return newBuffer[T](st, false, shared)
	}
	return NewHeap[T](n, shared)
}

// AsMutable reconfigures a not-yet-split Buffer to support a Worker
// participant. Must be called before Split/SplitMutable; calling it after a
// split is a precondition violation.
func (b *Buffer[T]) AsMutable(shared bool) *Buffer[T] {
	if b.mutable {
		return b
	}
	if shared {
		b.r.idx = newSharedIndex(true)
	} else {
		b.r.idx = newLocalIndex(true)
	}
	b.mutable = true
	return b
}

// Split consumes a non-mutable Buffer into a (Producer, Consumer) pair
// (spec §3/§6). Panics if called on a mutable buffer or twice on the same
// Buffer.
func (b *Buffer[T]) Split() (*Producer[T], *Consumer[T]) {
	if b.mutable {
		panic("onering: Split called on a mutable buffer, use SplitMutable")
	}
	if b.split {
		panic("onering: buffer already split")
	}
	b.split = true
	return &Producer[T]{r: b.r}, &Consumer[T]{r: b.r}
}

// SplitMutable consumes a mutable Buffer into a (Producer, Worker,
// Consumer) triple. Panics if called on a non-mutable buffer or twice on
// the same Buffer.
func (b *Buffer[T]) SplitMutable() (*Producer[T], *Worker[T], *Consumer[T]) {
	if !b.mutable {
		panic("onering: SplitMutable called on a non-mutable buffer, use Split")
	}
	if b.split {
		panic("onering: buffer already split")
	}
	b.split = true
	return &Producer[T]{r: b.r}, &Worker[T]{r: b.r}, &Consumer[T]{r: b.r}
}

// available computes the number of slots a participant at index own may
// advance over before reaching succ, using the closed form from spec §4.3:
// (succ - own - gap) mod N, gap=1 for the producer (the reserved gap slot),
// gap=0 for worker/consumer. own and succ are both physical slot indices in
// [0,N), so the forward distance must be reduced mod N before the gap is
// subtracted — a plain unsigned succ-own only happens to equal that when
// succ>=own.
func available(own, succ uint64, n int, gap uint64) uint64 {
	nn := uint64(n)
	fwd := (succ + nn - own) % nn
	return (fwd + nn - gap) % nn
}

// releaseHandle decrements the shared alive count; the caller that observes
// the count drop to 0 (the last holder) performs the acquire fence and
// tears storage down — releasing every element still live in [lo, hi)
// (spec §4.3.5/P6). Every caller passes the consumer-visible range
// [cons, work) at the moment of its release; elements in the worker-owned
// range [work, prod) are not released.
func releaseHandle[T any](r *ring[T], lo, hi int) {
	remaining := r.idx.release()
	if remaining != 0 {
		return
	}
	r.idx.fence()
	r.storage.release(lo, hi)
	r.storage.teardown()
}
