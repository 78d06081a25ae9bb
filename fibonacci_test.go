// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"code.hybscloud.com/onering"
)

func fib(n int) int {
	switch n {
	case 1, 2:
		return 1
	case 3:
		return 2
	default:
		return fib(n-1) + fib(n-2)
	}
}

// TestConcurrentFibonacci is a three-goroutine stress test: the producer
// streams an endlessly-cycling 1..20 counter, the worker turns each value
// into the matching Fibonacci number in place, and the consumer records
// what came out. It is the Go counterpart of the original Rust source's
// concurrent_fib stress test: same three-role pipeline; the producer runs
// for a fixed interval and then signals that it has stopped, and the
// worker and consumer each drain what is left before returning.
func TestConcurrentFibonacci(t *testing.T) {
	const bufSize = 64

	for iter := 0; iter < 5; iter++ {
		buf := onering.BuildHeap[int](onering.New(bufSize).Mutable().Shared())
		p, w, c := buf.SplitMutable()

		var stopProd atomic.Bool
		// prodFinished gates the worker's drain loop and workFinished the
		// consumer's: each keeps reading while its predecessor is still
		// running OR while it still owns unconsumed elements, so the last
		// batch the producer wrote before stopping is never dropped. Memory
		// visibility of the producer's final pushes is already guaranteed by
		// sharedIndex's release/acquire ordering, so (unlike the source test)
		// no separate "last published index" handoff is needed.
		var prodFinished atomic.Bool
		var workFinished atomic.Bool

		var produced []int
		var consumed []int

		var wg sync.WaitGroup
		wg.Add(3)

		go func() {
			defer wg.Done()
			counter := 1
			for !stopProd.Load() {
				for {
					if _, ok := p.Push(counter); ok {
						break
					}
				}
				produced = append(produced, counter)
				if counter < 20 {
					counter++
				} else {
					counter = 1
				}
			}
			prodFinished.Store(true)
		}()

		go func() {
			defer wg.Done()
			a, b := 1, 0
			for !prodFinished.Load() || w.Available() > 0 {
				v, ok := w.Get()
				if !ok {
					continue
				}
				if *v == 1 {
					a, b = 1, 0
				}
				*v = a + b
				a, b = b, *v
				w.Advance(1)
			}
			workFinished.Store(true)
		}()

		go func() {
			defer wg.Done()
			for !workFinished.Load() || c.Available() > 0 {
				v, ok := c.PeekRef()
				if !ok {
					continue
				}
				consumed = append(consumed, *v)
				c.Advance(1)
			}
		}()

		time.Sleep(2 * time.Millisecond)
		stopProd.Store(true)
		wg.Wait()

		p.Close()
		w.Close()
		c.Close()

		if len(consumed) != len(produced) {
			t.Fatalf("iteration %d: consumed %d values, produced %d", iter, len(consumed), len(produced))
		}
		for i, pv := range produced {
			want := fib(pv)
			if consumed[i] != want {
				t.Fatalf("iteration %d: consumed[%d] = %d, want fib(%d) = %d", iter, i, consumed[i], pv, want)
			}
		}
	}
}
