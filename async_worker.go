// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering

import "context"

// AsyncWorker wraps a Worker, turning "caught up with the producer" into a
// context-cancelable wait instead of a (nil, false) no-op (spec §4.4).
type AsyncWorker[T any] struct {
	w *Worker[T]
}

// NewAsyncWorker wraps w.
func NewAsyncWorker[T any](w *Worker[T]) *AsyncWorker[T] {
	return &AsyncWorker[T]{w: w}
}

// Sync returns the underlying Worker for synchronous-path use.
func (a *AsyncWorker[T]) Sync() *Worker[T] {
	return a.w
}

// Get waits until an element is owned by the worker, then returns a
// mutable reference to it. The caller must call Advance(1) after mutating.
func (a *AsyncWorker[T]) Get(ctx context.Context) (*T, error) {
	if err := waitAsync(ctx, 1, a.w.Available); err != nil {
		return nil, err
	}
	v, _ := a.w.Get()
	return v, nil
}

// Exact waits until k elements are owned, then returns a view of exactly k.
func (a *AsyncWorker[T]) Exact(ctx context.Context, k int) (head, tail []T, err error) {
	if err := waitAsync(ctx, k, a.w.Available); err != nil {
		return nil, nil, err
	}
	head, tail, _ = a.w.Exact(k)
	return head, tail, nil
}

// Advance publishes step elements the worker has finished mutating.
func (a *AsyncWorker[T]) Advance(step int) {
	a.w.Advance(step)
}

// Detach returns a Detached wrapper over the underlying Worker (see
// Worker.Detach); detached scanning has no async form since it never
// blocks on the counterpart.
func (a *AsyncWorker[T]) Detach() *Detached[T] {
	return a.w.Detach()
}

// Close releases this handle's share of the buffer.
func (a *AsyncWorker[T]) Close() error {
	return a.w.Close()
}
