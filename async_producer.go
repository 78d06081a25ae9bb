// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering

import "context"

// AsyncProducer wraps a Producer, turning a full ring into a context-
// cancelable wait instead of a (x, false) no-op (spec §4.4).
type AsyncProducer[T any] struct {
	p *Producer[T]
}

// NewAsyncProducer wraps p. p must not be used directly afterwards; all
// access should go through the returned AsyncProducer (or back through
// Sync, which hands the same *Producer[T] back out).
func NewAsyncProducer[T any](p *Producer[T]) *AsyncProducer[T] {
	return &AsyncProducer[T]{p: p}
}

// Sync returns the underlying Producer for synchronous-path use.
func (a *AsyncProducer[T]) Sync() *Producer[T] {
	return a.p
}

// Push waits until the ring has room, then pushes x. Returns
// ErrWouldBlock-compatible error if ctx is cancelled first.
func (a *AsyncProducer[T]) Push(ctx context.Context, x T) error {
	if err := waitAsync(ctx, 1, a.p.Available); err != nil {
		return err
	}
	_, _ = a.p.Push(x)
	return nil
}

// PushInit is Push's safe form to use after a PopMove, per Producer.PushInit.
func (a *AsyncProducer[T]) PushInit(ctx context.Context, x T) error {
	if err := waitAsync(ctx, 1, a.p.Available); err != nil {
		return err
	}
	_, _ = a.p.PushInit(x)
	return nil
}

// PushSlice waits until len(src) slots are free, then bulk-copies src.
func (a *AsyncProducer[T]) PushSlice(ctx context.Context, src []T) error {
	if err := waitAsync(ctx, len(src), a.p.Available); err != nil {
		return err
	}
	a.p.PushSlice(src)
	return nil
}

// NextMut waits for a free slot, then returns a mutable reference to it;
// the caller must call Advance(1) after writing.
func (a *AsyncProducer[T]) NextMut(ctx context.Context) (*T, error) {
	if err := waitAsync(ctx, 1, a.p.Available); err != nil {
		return nil, err
	}
	v, _ := a.p.NextMut()
	return v, nil
}

// Advance publishes step elements written via NextMut.
func (a *AsyncProducer[T]) Advance(step int) {
	a.p.Advance(step)
}

// Close releases this handle's share of the buffer.
func (a *AsyncProducer[T]) Close() error {
	return a.p.Close()
}
