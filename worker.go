// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering

// Worker is the optional in-place-mutation handle on a mutable Buffer
// (spec §4.3.2). It owns the worker index; its successor is the producer
// index, and its slots [work, prod) are guaranteed initialized per I3, so
// every access here yields a mutable reference without a tri-state check.
type Worker[T any] struct {
	r           *ring[T]
	own         uint64
	cachedAvail uint64
	closed      bool
}

func (w *Worker[T]) avail() uint64 {
	if w.cachedAvail > 0 {
		return w.cachedAvail
	}
	succ := w.r.idx.loadProd()
	w.cachedAvail = available(w.own, succ, w.r.storage.Len(), 0)
	return w.cachedAvail
}

// Available reports the number of elements currently available to the
// worker, using the freshest producer index.
func (w *Worker[T]) Available() int {
	succ := w.r.idx.loadProd()
	n := available(w.own, succ, w.r.storage.Len(), 0)
	w.cachedAvail = n
	return int(n)
}

func (w *Worker[T]) advance(step uint64, publish bool) {
	n := uint64(w.r.storage.Len())
	w.own = (w.own + step) % n
	if publish {
		w.r.idx.storeWork(w.own)
	}
	if w.cachedAvail >= step {
		w.cachedAvail -= step
	} else {
		w.cachedAvail = 0
	}
}

// Get returns a mutable reference to the next element the worker owns, or
// (nil, false) if the worker has caught up with the producer. The caller
// must call Advance(1) after mutating it.
func (w *Worker[T]) Get() (*T, bool) {
	if w.avail() < 1 {
		return nil, false
	}
	return w.r.storage.ValueAt(int(w.own)), true
}

// Exact returns a view of exactly k owned elements, or (nil, nil, false) if
// fewer than k are currently available.
func (w *Worker[T]) Exact(k int) (head, tail []T, ok bool) {
	if w.avail() < uint64(k) {
		return nil, nil, false
	}
	head, tail = w.r.storage.Chunk(int(w.own), k)
	return head, tail, true
}

// Avail returns a view of every element currently available to the
// worker, or (nil, nil, false) if none are.
func (w *Worker[T]) Avail() (head, tail []T, ok bool) {
	n := w.avail()
	if n == 0 {
		return nil, nil, false
	}
	head, tail = w.r.storage.Chunk(int(w.own), int(n))
	return head, tail, true
}

// MultipleOf returns a view sized to the largest available count that is a
// multiple of k (possibly zero-length if fewer than k are available).
func (w *Worker[T]) MultipleOf(k int) (head, tail []T, count int) {
	n := int(w.avail())
	if k <= 0 {
		return nil, nil, 0
	}
	count = (n / k) * k
	if count == 0 {
		return nil, nil, 0
	}
	head, tail = w.r.storage.Chunk(int(w.own), count)
	return head, tail, count
}

// Advance publishes step elements the worker has finished mutating.
func (w *Worker[T]) Advance(step int) {
	w.advance(uint64(step), true)
}

// Detach returns a Detached wrapper that advances this Worker's index
// locally without publishing, per spec §4.3.4.
func (w *Worker[T]) Detach() *Detached[T] {
	return &Detached[T]{w: w}
}

// Close releases this handle's share of the buffer.
func (w *Worker[T]) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	releaseHandle[T](w.r, int(w.r.idx.loadCons()), int(w.own))
	return nil
}
