// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package onering

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// pageSize is queried once; all vmem sizing rounds up to it.
var pageSize = unix.Getpagesize()

// PageAlignCapacity rounds n up so that n*elemSize is a multiple of the OS
// page size (spec §6's "a helper rounds up"), returning the rounded
// capacity. elemSize must be > 0.
func PageAlignCapacity(n, elemSize int) int {
	if elemSize <= 0 || n <= 0 {
		badCapacity(n)
	}
	bytes := n * elemSize
	if rem := bytes % pageSize; rem != 0 {
		bytes += pageSize - rem
	}
	return bytes / elemSize
}

// vmemStorage is the double-mapped virtual-memory backing (spec §4.1.3): a
// single N*sizeof(T) physical region is mapped twice at consecutive
// addresses, so any length-<=N contiguous read starting anywhere in [0,N)
// lands on one linear slice instead of a wrapped head/tail pair.
type vmemStorage[T any] struct {
	region []byte // the full 2N*sizeof(T) reservation
	states []slotState
	n      int
}

// newVMemStorage builds a double-mapped Storage with n physical slots, all
// uninitialized. Returns (nil, false) on any host failure so the caller can
// fall back to the heap backing per spec §6 ("Implementations on hosts
// lacking these fall back to the heap backing").
func newVMemStorage[T any](n int) (*vmemStorage[T], bool) {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 || n <= 0 {
		return nil, false
	}
	n = PageAlignCapacity(n, elemSize)
	size := n * elemSize

	fd, err := unix.MemfdCreate("onering-vmem", 0)
	if err != nil {
		return nil, false
	}
	defer unix.Close(fd)

	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		return nil, false
	}

	reservation, err := unix.Mmap(-1, 0, 2*size, unix.PROT_NONE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, false
	}

	base := uintptr(unsafe.Pointer(&reservation[0]))

	first, err := mmapFixed(fd, base, size)
	if err != nil {
		_ = unix.Munmap(reservation)
		return nil, false
	}
	_, err = mmapFixed(fd, base+uintptr(size), size)
	if err != nil {
		_ = unix.Munmap(first)
		return nil, false
	}

	return &vmemStorage[T]{
		region: reservation[:2*size:2*size],
		states: make([]slotState, n),
		n:      n,
	}, true
}

// mmapFixed maps fd's contents at the fixed address addr using MAP_FIXED,
// reusing the anonymous reservation's address space. golang.org/x/sys/unix
// does not expose a fixed-address overload of Mmap, so this goes through
// the raw syscall directly.
func mmapFixed(fd int, addr uintptr, size int) ([]byte, error) {
	data, _, errno := unix.Syscall6(unix.SYS_MMAP, addr, uintptr(size),
		uintptr(unix.PROT_READ|unix.PROT_WRITE),
		uintptr(unix.MAP_SHARED|unix.MAP_FIXED), uintptr(fd), 0)
	if errno != 0 {
		return nil, errno
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(data)), size), nil
}

func (v *vmemStorage[T]) typed() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.region[0])), 2*v.n)
}

func (v *vmemStorage[T]) Len() int { return v.n }

func (v *vmemStorage[T]) ValueAt(i int) *T {
	return &v.typed()[i]
}

func (v *vmemStorage[T]) StateAt(i int) *slotState {
	return &v.states[i]
}

// Chunk always returns a single contiguous head and a nil tail: the double
// mapping guarantees values[i:i+k] is valid for any i in [0,N) and k<=N.
func (v *vmemStorage[T]) Chunk(i, k int) (head, tail []T) {
	if k == 0 {
		return nil, nil
	}
	return v.typed()[i : i+k], nil
}

func (v *vmemStorage[T]) release(lo, hi int) {
	values := v.typed()
	for j := lo; j != hi; j = (j + 1) % v.n {
		sl := slot[T]{value: values[j], state: v.states[j]}
		sl.release()
		values[j] = sl.value
		v.states[j] = sl.state
	}
}

func (v *vmemStorage[T]) teardown() {
	_ = unix.Munmap(v.region)
	v.region = nil
	v.states = nil
}
