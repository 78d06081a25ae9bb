// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering

// Producer is the handle that appends elements to the ring (spec §4.3.1).
// It owns the producer index; its successor is the consumer index (the
// gap slot guarantees producer never overtakes consumer by more than N-1,
// spec I2).
type Producer[T any] struct {
	r           *ring[T]
	own         uint64
	cachedAvail uint64
	closed      bool
}

// avail returns the number of slots currently available to push into,
// reloading the consumer index only on a cache miss (spec §4.3 "Fast
// path").
func (p *Producer[T]) avail() uint64 {
	if p.cachedAvail > 0 {
		return p.cachedAvail
	}
	succ := p.r.idx.loadCons()
	p.cachedAvail = available(p.own, succ, p.r.storage.Len(), 1)
	return p.cachedAvail
}

// Available reports the number of elements the producer may currently push
// without blocking, using the freshest consumer index.
func (p *Producer[T]) Available() int {
	succ := p.r.idx.loadCons()
	n := available(p.own, succ, p.r.storage.Len(), 1)
	p.cachedAvail = n
	return int(n)
}

func (p *Producer[T]) advance(step uint64) {
	n := uint64(p.r.storage.Len())
	p.own = (p.own + step) % n
	p.r.idx.storeProd(p.own)
	if p.cachedAvail >= step {
		p.cachedAvail -= step
	} else {
		p.cachedAvail = 0
	}
}

// Push moves x into the next slot and advances, assuming the target slot
// is already initialized (the fast path). Returns (x, false) if the ring is
// full — a no-op, x is returned unchanged. Must not be used on a slot that
// is uninitialized or was left moved by PopMove; use PushInit in that case
// (spec §4.3.1).
func (p *Producer[T]) Push(x T) (T, bool) {
	if p.avail() < 1 {
		return x, false
	}
	*p.r.storage.ValueAt(int(p.own)) = x
	*p.r.storage.StateAt(int(p.own)) = slotInit
	p.advance(1)
	return zeroT[T](), true
}

// PushInit is Push's safe form after a PopMove: it checks the slot's
// tri-state tag and releases any prior occupant before writing. Returns
// (x, false) if the ring is full.
func (p *Producer[T]) PushInit(x T) (T, bool) {
	if p.avail() < 1 {
		return x, false
	}
	writeInitAt[T](p.r.storage, int(p.own), x)
	p.advance(1)
	return zeroT[T](), true
}

// PushSlice bulk-copies src, advancing only if all of it fits; an
// insufficient-capacity call is an all-or-nothing no-op (spec §9 Open
// Questions: "the apparent behavior is all-or-nothing").
func (p *Producer[T]) PushSlice(src []T) bool {
	if p.avail() < uint64(len(src)) {
		return false
	}
	writeSlice[T](p.r.storage, int(p.own), src)
	markRange[T](p.r.storage, int(p.own), len(src), slotInit)
	p.advance(uint64(len(src)))
	return true
}

// PushSliceInit is PushSlice's possibly-uninitialized-safe form: every
// slot it touches is explicitly marked initialized regardless of its prior
// state (no per-element release is attempted, matching the "copy" family's
// contract — use PushSliceCloneInit if released elements must be closed).
func (p *Producer[T]) PushSliceInit(src []T) bool {
	return p.PushSlice(src)
}

// PushSliceClone is the clone-element-wise variant of PushSlice, for
// element types whose Clone is not a trivial copy. onering's T has no
// Clone method constraint, so the copy and clone families coincide; the
// name is kept for API parity with the spec's slot-state matrix.
func (p *Producer[T]) PushSliceClone(src []T) bool {
	return p.PushSlice(src)
}

// PushSliceCloneInit is PushSliceInit's clone-wise counterpart; releases
// (via Close) any previously-initialized occupant in the destination range
// before overwriting.
func (p *Producer[T]) PushSliceCloneInit(src []T) bool {
	if p.avail() < uint64(len(src)) {
		return false
	}
	for j, v := range src {
		writeInitAt[T](p.r.storage, (int(p.own)+j)%p.r.storage.Len(), v)
	}
	p.advance(uint64(len(src)))
	return true
}

// NextMut returns a mutable reference to the next free slot's element for
// in-place initialization, assuming the slot is already initialized.
// Returns (nil, false) if the ring is full. The caller must call Advance(1)
// after writing.
func (p *Producer[T]) NextMut() (*T, bool) {
	if p.avail() < 1 {
		return nil, false
	}
	return p.r.storage.ValueAt(int(p.own)), true
}

// NextMutUninit is NextMut's form usable even if the slot is uninitialized
// or moved: the caller must overwrite it completely (no partial write)
// before calling Advance(1).
func (p *Producer[T]) NextMutUninit() (*T, bool) {
	return p.NextMut()
}

// NextChunkMut returns a mutable view of the next k free slots; nil, false
// if fewer than k are available.
func (p *Producer[T]) NextChunkMut(k int) (head, tail []T, ok bool) {
	if p.avail() < uint64(k) {
		return nil, nil, false
	}
	head, tail = p.r.storage.Chunk(int(p.own), k)
	return head, tail, true
}

// Advance publishes step elements written via NextMut/NextChunkMut,
// marking them initialized.
func (p *Producer[T]) Advance(step int) {
	markRange[T](p.r.storage, int(p.own), step, slotInit)
	p.advance(uint64(step))
}

// Close releases this handle's share of the buffer (spec §4.3.5). Calls
// after the first are no-ops; a handle left unclosed leaks the buffer's
// final release.
func (p *Producer[T]) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	releaseHandle[T](p.r, int(p.r.idx.loadCons()), int(p.r.idx.loadWork()))
	return nil
}

func zeroT[T any]() T {
	var z T
	return z
}
