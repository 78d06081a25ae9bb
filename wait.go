// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering

import "code.hybscloud.com/spin"

// WaitFor busy-waits until check reports at least n, using the same
// spin.Wait backoff the teacher lfq package's MPMC/MPSC Enqueue/Dequeue
// loops use. It never blocks the OS thread; it is the one pure busy-wait
// helper spec §5 allows ("applications needing blocking waits compose
// their own").
//
// Typical use: WaitFor(n, producer.Available) before a batch Push, or
// WaitFor(n, consumer.Available) before a batch Pop.
func WaitFor(n int, check func() int) {
	sw := spin.Wait{}
	for check() < n {
		sw.Once()
	}
}
