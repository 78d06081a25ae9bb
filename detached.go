// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering

// Detached wraps a Worker so its index advances locally without publishing
// to the shared counter (spec §4.3.4). The consumer therefore does not
// observe the worker moving, letting application code scan forward and
// back without opening the trailing window. Detached's local index is the
// truth; publication is deferred until Attach or SyncIndex.
type Detached[T any] struct {
	w *Worker[T]
}

// Get, Exact, Avail, and MultipleOf are re-exported from the underlying
// Worker unchanged — Detached only changes what Advance/GoBack/SetIndex do
// to the index, never how elements are read.
func (d *Detached[T]) Get() (*T, bool)                         { return d.w.Get() }
func (d *Detached[T]) Exact(k int) (head, tail []T, ok bool)   { return d.w.Exact(k) }
func (d *Detached[T]) Avail() (head, tail []T, ok bool)        { return d.w.Avail() }
func (d *Detached[T]) MultipleOf(k int) ([]T, []T, int)        { return d.w.MultipleOf(k) }
func (d *Detached[T]) Available() int                          { return d.w.Available() }

// Advance moves the local index forward by step without publishing.
func (d *Detached[T]) Advance(step int) {
	d.w.advance(uint64(step), false)
}

// GoBack moves the local index backward by step, wrapping symmetrically to
// Advance. step must not move the index before the consumer's index (the
// caller's responsibility; violating it is a precondition violation per
// spec §7).
func (d *Detached[T]) GoBack(step int) {
	n := uint64(d.w.r.storage.Len())
	s := uint64(step) % n
	d.w.own = (d.w.own + n - s) % n
	// cachedAvail is no longer valid once the index moves backward; force
	// a reload on the next avail() call.
	d.w.cachedAvail = 0
}

// ResetIndex snaps the local index to the producer's published index,
// discarding any local advance/go-back not yet synced.
func (d *Detached[T]) ResetIndex() {
	d.w.own = d.w.r.idx.loadProd()
	d.w.cachedAvail = 0
}

// SetIndex places the local index at an arbitrary position within the
// legal range. Unchecked: placing it outside [cons, prod] is a
// precondition violation.
func (d *Detached[T]) SetIndex(i uint64) {
	d.w.own = i % uint64(d.w.r.storage.Len())
	d.w.cachedAvail = 0
}

// SyncIndex publishes the current local index without re-yielding the
// Worker, letting the consumer observe progress while the caller keeps
// scanning detached.
func (d *Detached[T]) SyncIndex() {
	d.w.r.idx.storeWork(d.w.own)
}

// Attach publishes the current local index and re-yields the underlying
// Worker, ending the detached scan.
func (d *Detached[T]) Attach() *Worker[T] {
	d.SyncIndex()
	return d.w
}
