// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package onering provides a bounded ring buffer shared between a single
// producer, an optional single worker, and a single consumer.
//
// Unlike the sibling lfq package's queue family (which trades physical
// slots for support of multiple producers/consumers), onering supports
// exactly one producer, at most one in-place worker, and exactly one
// consumer — in exchange it offers a typed, tri-state slot protocol, three
// interchangeable storage backings, and an optional async adapter.
//
// # Quick Start
//
// Non-mutable buffer (Producer, Consumer only):
//
//	buf := onering.NewHeapDefault[Event](1024, true) // shared across goroutines
//	p, c := buf.Split()
//
//	go func() {
//	    for _, ev := range events {
//	        for {
//	            if _, ok := p.Push(ev); ok {
//	                break
//	            }
//	        }
//	    }
//	    p.Close()
//	}()
//
//	go func() {
//	    for {
//	        ev, ok := c.Pop()
//	        if !ok {
//	            continue
//	        }
//	        process(ev)
//	    }
//	}()
//
// Mutable buffer (Producer, Worker, Consumer) via the Builder:
//
//	buf := onering.BuildHeap[int](onering.New(256).Mutable().Shared())
//	p, w, c := buf.SplitMutable()
//
//	// Worker doubles every value in place before the consumer sees it.
//	go func() {
//	    for {
//	        v, ok := w.Get()
//	        if !ok {
//	            continue
//	        }
//	        *v *= 2
//	        w.Advance(1)
//	    }
//	}()
//
// # Storage Backings
//
// Three backings share the same Storage[T] contract:
//
//	NewHeap[T](n, shared)           - runtime-sized, heap-allocated
//	NewInline[T, A](shared)         - compile-time-sized via an array-type
//	                                  type parameter (see InlineArray)
//	NewVMem[T](n, shared)           - double-mapped virtual memory, falling
//	                                  back to heap where unsupported
//
// # Slot Tri-State
//
// Every slot is uninitialized, initialized, or moved (spec'd in the slot
// state machine). Push/Pop assume the slot is already initialized;
// PushInit/PopMove are the safe forms to use once a moved slot needs
// re-filling:
//
//	v, _ := consumer.PopMove()      // slot now "moved"
//	// ... consumer does something with v that releases its resources ...
//	producer.PushInit(newValue)     // detects the moved slot, no double-release
//
// Plain Push after a PopMove, without an intervening PushInit, is a
// documented precondition violation — not a runtime-checked error.
//
// # Detached Worker
//
// A Worker can be temporarily detached to scan forward and back without
// the consumer observing its movement, then re-attached:
//
//	d := worker.Detach()
//	d.Advance(3)
//	d.GoBack(2)
//	worker = d.Attach() // publishes the local index, hands the Worker back
//
// # Async Adapter
//
// AsyncProducer/AsyncWorker/AsyncConsumer wrap the sync handles, spinning
// (with a periodic check of the context) until the operation can proceed
// instead of returning a would-block result:
//
//	ap := onering.NewAsyncProducer(p)
//	if err := ap.Push(ctx, ev); err != nil {
//	    // ctx cancelled while waiting for the consumer to make room
//	}
//
// # Error Handling
//
// The sync handles never return an error: a full Push is a no-op that
// returns (x, false), and an empty Pop is a no-op that returns (zero, false). Only the async adapter's context-cancellation
// path surfaces [ErrWouldBlock], sourced from [code.hybscloud.com/iox] for
// ecosystem consistency with lfq.
//
// # Thread Safety
//
// A Buffer built with shared=true produces handles safe to hand to
// separate goroutines, one handle per goroutine, for the lifetime of the
// buffer (spec's "Parallel threads" mode). shared=false (localIndex) must
// never cross a goroutine boundary — there is no synchronization at all in
// that mode, by design, to avoid the cost when it isn't needed.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for the shared index
// state's ordered atomics, [code.hybscloud.com/spin] for the busy-wait
// helper, [code.hybscloud.com/iox] for the async adapter's cancellation
// error, and golang.org/x/sys/unix for the double-mapped virtual-memory
// backing's memfd_create/mmap calls on Linux.
package onering
