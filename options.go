// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering

// Options configures buffer construction via Builder.
type Options struct {
	capacity int
	mutable  bool
	shared   bool
	zeroed   bool
	vmem     bool
}

// Builder constructs a Buffer with fluent configuration, in the same style
// as the teacher lfq package's queue Builder — here selecting storage
// backing and index-state flavor instead of producer/consumer cardinality,
// since onering's cardinality is fixed at one of each.
//
// Example:
//
//	// Mutable (Producer, Worker, Consumer) buffer, shared across goroutines
//	buf := onering.BuildHeap[Event](onering.New(1024).Mutable().Shared())
//	p, w, c := buf.SplitMutable()
//
//	// Non-mutable (Producer, Consumer) buffer, single goroutine
//	buf := onering.BuildHeap[int](onering.New(64))
//	p, c := buf.Split()
type Builder struct {
	opts Options
}

// New creates a buffer builder with the given capacity. Panics if
// capacity <= 0.
func New(capacity int) *Builder {
	if capacity <= 0 {
		badCapacity(capacity)
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// Mutable declares that the buffer will be split with SplitMutable (a
// Worker participant will be present).
func (b *Builder) Mutable() *Builder {
	b.opts.mutable = true
	return b
}

// Shared declares that the handles will be used from more than one
// goroutine, selecting the atomix-backed sharedIndex over localIndex.
func (b *Builder) Shared() *Builder {
	b.opts.shared = true
	return b
}

// Zeroed declares that slots should start uninitialized (spec §6's "unsafe:
// caller must use the *_init methods" variant) instead of default-
// initialized to T's zero value.
func (b *Builder) Zeroed() *Builder {
	b.opts.zeroed = true
	return b
}

// VMem selects the double-mapped virtual-memory backing (falling back to
// heap where unsupported) instead of the default heap backing.
func (b *Builder) VMem() *Builder {
	b.opts.vmem = true
	return b
}

// BuildHeap builds the Buffer with a heap backing, honoring the builder's
// Mutable/Shared/Zeroed configuration.
func BuildHeap[T any](b *Builder) *Buffer[T] {
	var st Storage[T]
	if b.opts.zeroed {
		st = newHeapStorage[T](b.opts.capacity)
	} else {
		st = newHeapStorageInit[T](b.opts.capacity)
	}
	return newBuffer[T](st, b.opts.mutable, b.opts.shared)
}

// BuildVMem builds the Buffer using the double-mapped virtual-memory
// backing (falling back to heap on unsupported hosts), honoring the
// builder's Mutable/Shared/Zeroed configuration.
func BuildVMem[T any](b *Builder) *Buffer[T] {
	st, ok := newVMemStorage[T](b.opts.capacity)
	if !ok {
		return BuildHeap[T](b)
	}
	if !b.opts.zeroed {
		for i := 0; i < st.Len(); i++ {
			*st.StateAt(i) = slotInit
		}
	}
	return newBuffer[T](st, b.opts.mutable, b.opts.shared)
}

// Build dispatches to BuildVMem or BuildHeap based on the builder's VMem
// configuration.
func Build[T any](b *Builder) *Buffer[T] {
	if b.opts.vmem {
		return BuildVMem[T](b)
	}
	return BuildHeap[T](b)
}
