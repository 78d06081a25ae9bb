// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package onering

// PageAlignCapacity rounds n up to a page-size multiple on hosts that
// support the double-mapped backing. On this host the backing is never
// double-mapped, so it returns n unchanged.
func PageAlignCapacity(n, elemSize int) int {
	if elemSize <= 0 || n <= 0 {
		badCapacity(n)
	}
	return n
}

// newVMemStorage always reports false on this host: the double-mapped
// backing depends on memfd_create/mmap, which this build does not wire up.
// Callers fall back to the heap backing, per spec §6.
func newVMemStorage[T any](n int) (*vmemStorage[T], bool) {
	return nil, false
}

// vmemStorage is an empty placeholder on hosts without the double-mapped
// backing, kept so NewVMem's type signature doesn't vary across builds.
type vmemStorage[T any] struct{}

func (v *vmemStorage[T]) Len() int                  { return 0 }
func (v *vmemStorage[T]) ValueAt(i int) *T          { return nil }
func (v *vmemStorage[T]) StateAt(i int) *slotState  { return nil }
func (v *vmemStorage[T]) Chunk(i, k int) ([]T, []T) { return nil, nil }
func (v *vmemStorage[T]) release(lo, hi int)        {}
func (v *vmemStorage[T]) teardown()                 {}
