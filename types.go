// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering

// ProducerHandle is the interface satisfied by Producer[T]. It lets
// application code be written generically against "whatever produces into
// a ring" instead of the concrete type — the Go analogue of the source
// library's shared iterator trait (see its manage_traits example).
//
// Example:
//
//	func feed(p onering.ProducerHandle[int], values []int) {
//	    for _, v := range values {
//	        for {
//	            if _, ok := p.Push(v); ok {
//	                break
//	            }
//	        }
//	    }
//	}
type ProducerHandle[T any] interface {
	// Push moves x into the next slot and advances. Returns (x, false) if
	// the ring is full.
	Push(x T) (T, bool)
	// PushInit is Push's safe form to use after a PopMove.
	PushInit(x T) (T, bool)
	// Available reports slots currently free to push into.
	Available() int
	// Close releases this handle's share of the buffer.
	Close() error
}

// WorkerHandle is the interface satisfied by Worker[T].
type WorkerHandle[T any] interface {
	// Get returns a mutable reference to the next owned element.
	Get() (*T, bool)
	// Advance publishes step elements the worker has finished mutating.
	Advance(step int)
	// Available reports elements currently owned by the worker.
	Available() int
	// Close releases this handle's share of the buffer.
	Close() error
}

// ConsumerHandle is the interface satisfied by Consumer[T].
type ConsumerHandle[T any] interface {
	// Pop duplicates and advances past the next element.
	Pop() (T, bool)
	// PopMove moves the element out, leaving its slot in the moved state.
	PopMove() (T, bool)
	// Available reports elements currently ready to pop.
	Available() int
	// Close releases this handle's share of the buffer.
	Close() error
}

var (
	_ ProducerHandle[int] = (*Producer[int])(nil)
	_ WorkerHandle[int]   = (*Worker[int])(nil)
	_ ConsumerHandle[int] = (*Consumer[int])(nil)
)
