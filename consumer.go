// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering

// Consumer is the handle that removes elements from the ring (spec
// §4.3.3). Its successor is the worker index when a Worker exists,
// otherwise the producer index directly (indexState.loadWork() already
// folds that fallback in, per spec §4.2).
type Consumer[T any] struct {
	r           *ring[T]
	own         uint64
	cachedAvail uint64
	closed      bool
}

func (c *Consumer[T]) avail() uint64 {
	if c.cachedAvail > 0 {
		return c.cachedAvail
	}
	succ := c.r.idx.loadWork()
	c.cachedAvail = available(c.own, succ, c.r.storage.Len(), 0)
	return c.cachedAvail
}

// Available reports the number of elements currently available to pop,
// using the freshest successor index.
func (c *Consumer[T]) Available() int {
	succ := c.r.idx.loadWork()
	n := available(c.own, succ, c.r.storage.Len(), 0)
	c.cachedAvail = n
	return int(n)
}

func (c *Consumer[T]) advance(step uint64) {
	n := uint64(c.r.storage.Len())
	c.own = (c.own + step) % n
	c.r.idx.storeCons(c.own)
	if c.cachedAvail >= step {
		c.cachedAvail -= step
	} else {
		c.cachedAvail = 0
	}
}

// PeekRef returns a reference to the next element without advancing; the
// caller must call Advance explicitly. The reference's validity ends at
// the next call to Advance on this handle.
func (c *Consumer[T]) PeekRef() (*T, bool) {
	if c.avail() < 1 {
		return nil, false
	}
	return c.r.storage.ValueAt(int(c.own)), true
}

// PeekSlice returns a view of the next k elements without advancing.
func (c *Consumer[T]) PeekSlice(k int) (head, tail []T, ok bool) {
	if c.avail() < uint64(k) {
		return nil, nil, false
	}
	head, tail = c.r.storage.Chunk(int(c.own), k)
	return head, tail, true
}

// PeekAvailable returns a view of every currently available element
// without advancing.
func (c *Consumer[T]) PeekAvailable() (head, tail []T, ok bool) {
	n := c.avail()
	if n == 0 {
		return nil, nil, false
	}
	head, tail = c.r.storage.Chunk(int(c.own), int(n))
	return head, tail, true
}

// Advance marks count peeked elements consumed, clearing their tri-state
// tag back to uninitialized (the producer must PushInit into them again
// before a plain Push; see PopMove).
func (c *Consumer[T]) Advance(count int) {
	markRange[T](c.r.storage, int(c.own), count, slotUninit)
	c.advance(uint64(count))
}

// Pop duplicates the next slot's bits and advances, leaving the slot
// bitwise unchanged (state left Init): safe whenever T has no external
// resource that a bitwise duplicate would double-release, since the
// producer will overwrite the slot with Push before it is read again.
func (c *Consumer[T]) Pop() (T, bool) {
	if c.avail() < 1 {
		return zeroT[T](), false
	}
	v := *c.r.storage.ValueAt(int(c.own))
	c.advance(1)
	return v, true
}

// PopClone is Pop's explicit-clone form, for symmetry with the spec; T has
// no Clone constraint in onering, so it behaves identically to Pop.
func (c *Consumer[T]) PopClone() (T, bool) {
	return c.Pop()
}

// PopMove moves the value out of the slot, leaving it in the moved state
// (spec §3). The slot must be re-initialized with Producer.PushInit before
// a subsequent Producer.Push targets it.
func (c *Consumer[T]) PopMove() (T, bool) {
	if c.avail() < 1 {
		return zeroT[T](), false
	}
	v := takeMoveAt[T](c.r.storage, int(c.own))
	c.advance(1)
	return v, true
}

// PopUnsafe is a bitwise duplicate for an arbitrary T, identical to Pop in
// onering (kept for spec API parity; the "unsafe" designation in the
// source language concerned move/copy semantics that don't apply to Go
// values, which are always copied by assignment).
func (c *Consumer[T]) PopUnsafe() (T, bool) {
	return c.Pop()
}

// CopyItem extracts the next element into dst, advancing on success.
func (c *Consumer[T]) CopyItem(dst *T) bool {
	v, ok := c.Pop()
	if !ok {
		return false
	}
	*dst = v
	return true
}

// CloneItem is CopyItem's clone-wise counterpart.
func (c *Consumer[T]) CloneItem(dst *T) bool {
	return c.CopyItem(dst)
}

// CopySlice extracts len(dst) elements into dst, advancing on success;
// an insufficient-availability call is an all-or-nothing no-op.
func (c *Consumer[T]) CopySlice(dst []T) bool {
	if c.avail() < uint64(len(dst)) {
		return false
	}
	readSlice[T](c.r.storage, int(c.own), dst)
	markRange[T](c.r.storage, int(c.own), len(dst), slotUninit)
	c.advance(uint64(len(dst)))
	return true
}

// CloneSlice is CopySlice's clone-wise counterpart.
func (c *Consumer[T]) CloneSlice(dst []T) bool {
	return c.CopySlice(dst)
}

// Close releases this handle's share of the buffer.
func (c *Consumer[T]) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	releaseHandle[T](c.r, int(c.own), int(c.r.idx.loadWork()))
	return nil
}
