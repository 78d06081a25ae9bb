// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering

import "unsafe"

// InlineArray is the set of array types usable as the compile-time-sized
// backing of an inline Storage. Go has no const generics (no way to write
// "an array of N elements of T for any N"), so the compile-time N from
// spec §4.1.1 is modeled as a closed menu of array-type type parameters
// instead — one tier per power of two from 4 to 4096, mirroring the
// 12-tier power-of-four size hierarchy the sibling iobuf package documents
// for its buffer pools (Pico..Titan). Instantiate with a concrete array
// type, e.g. onering.NewInline[Event, [64]Event](false).
type InlineArray[T any] interface {
	~[4]T | ~[8]T | ~[16]T | ~[32]T | ~[64]T | ~[128]T | ~[256]T |
		~[512]T | ~[1024]T | ~[2048]T | ~[4096]T
}

// inlineStorage is the compile-time-sized backing with no heap allocation
// for the element array itself (spec §4.1.1). The tri-state tag array is a
// small heap-allocated slice sized at construction from A's length — Go's
// generics give no way to size a second array identically to A without
// reflection, so this one bookkeeping array is the pragmatic exception to
// "no heap".
type inlineStorage[T any, A InlineArray[T]] struct {
	values A
	states []slotState
}

// newInlineStorage builds an inline Storage, all slots uninitialized.
func newInlineStorage[T any, A InlineArray[T]]() *inlineStorage[T, A] {
	s := &inlineStorage[T, A]{}
	s.states = make([]slotState, s.len())
	return s
}

// newInlineStorageInit builds an inline Storage with every slot marked
// initialized (spec §6 "capacity argument and Default-initialized slots" —
// for inline backing the capacity is fixed by A, so this is the zero-value
// default-constructed variant).
func newInlineStorageInit[T any, A InlineArray[T]]() *inlineStorage[T, A] {
	s := newInlineStorage[T, A]()
	for i := range s.states {
		s.states[i] = slotInit
	}
	return s
}

// newInlineStorageFrom copies an owned fixed-size array into inline
// storage, every slot marked initialized (spec §6 "from an owned
// fixed-size array").
func newInlineStorageFrom[T any, A InlineArray[T]](arr A) *inlineStorage[T, A] {
	s := &inlineStorage[T, A]{values: arr}
	s.states = make([]slotState, s.len())
	for i := range s.states {
		s.states[i] = slotInit
	}
	return s
}

func (s *inlineStorage[T, A]) len() int {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 {
		return 0
	}
	return int(unsafe.Sizeof(s.values)) / elemSize
}

// slice reinterprets the fixed-size array field as a []T without copying —
// legal under the unsafe package's array-to-slice conversion rules, and the
// idiomatic Go stand-in for the language's missing const generics.
func (s *inlineStorage[T, A]) slice() []T {
	n := s.len()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&s.values)), n)
}

func (s *inlineStorage[T, A]) Len() int { return s.len() }

func (s *inlineStorage[T, A]) ValueAt(i int) *T {
	return &s.slice()[i]
}

func (s *inlineStorage[T, A]) StateAt(i int) *slotState {
	return &s.states[i]
}

func (s *inlineStorage[T, A]) Chunk(i, k int) (head, tail []T) {
	values := s.slice()
	n := len(values)
	if k == 0 {
		return nil, nil
	}
	first := n - i
	if first > k {
		first = k
	}
	head = values[i : i+first]
	if rem := k - first; rem > 0 {
		tail = values[:rem]
	}
	return head, tail
}

func (s *inlineStorage[T, A]) release(lo, hi int) {
	values := s.slice()
	n := len(values)
	for j := lo; j != hi; j = (j + 1) % n {
		sl := slot[T]{value: values[j], state: s.states[j]}
		sl.release()
		values[j] = sl.value
		s.states[j] = sl.state
	}
}

// teardown is a no-op: inline storage is not heap-owned, the buffer value
// itself (and its array field) must outlive every handle referencing it.
func (s *inlineStorage[T, A]) teardown() {}
