// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering

import "context"

// AsyncConsumer wraps a Consumer, turning an empty ring into a context-
// cancelable wait instead of a (zero, false) no-op (spec §4.4).
type AsyncConsumer[T any] struct {
	c *Consumer[T]
}

// NewAsyncConsumer wraps c.
func NewAsyncConsumer[T any](c *Consumer[T]) *AsyncConsumer[T] {
	return &AsyncConsumer[T]{c: c}
}

// Sync returns the underlying Consumer for synchronous-path use.
func (a *AsyncConsumer[T]) Sync() *Consumer[T] {
	return a.c
}

// Pop waits until an element is available, then pops it (see Consumer.Pop).
func (a *AsyncConsumer[T]) Pop(ctx context.Context) (T, error) {
	if err := waitAsync(ctx, 1, a.c.Available); err != nil {
		return zeroT[T](), err
	}
	v, _ := a.c.Pop()
	return v, nil
}

// PopMove waits until an element is available, then moves it out, leaving
// its slot moved (see Consumer.PopMove).
func (a *AsyncConsumer[T]) PopMove(ctx context.Context) (T, error) {
	if err := waitAsync(ctx, 1, a.c.Available); err != nil {
		return zeroT[T](), err
	}
	v, _ := a.c.PopMove()
	return v, nil
}

// PeekSlice waits until k elements are available, then returns a view of
// them without advancing.
func (a *AsyncConsumer[T]) PeekSlice(ctx context.Context, k int) (head, tail []T, err error) {
	if err := waitAsync(ctx, k, a.c.Available); err != nil {
		return nil, nil, err
	}
	head, tail, _ = a.c.PeekSlice(k)
	return head, tail, nil
}

// Advance marks count peeked elements consumed.
func (a *AsyncConsumer[T]) Advance(count int) {
	a.c.Advance(count)
}

// CopySlice waits until len(dst) elements are available, then copies them
// out and advances.
func (a *AsyncConsumer[T]) CopySlice(ctx context.Context, dst []T) error {
	if err := waitAsync(ctx, len(dst), a.c.Available); err != nil {
		return err
	}
	a.c.CopySlice(dst)
	return nil
}

// Close releases this handle's share of the buffer.
func (a *AsyncConsumer[T]) Close() error {
	return a.c.Close()
}
