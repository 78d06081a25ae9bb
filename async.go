// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering

import (
	"context"

	"code.hybscloud.com/spin"
)

// waitAsync busy-waits for check() to report at least n, same as WaitFor,
// but yields to ctx cancellation between spins instead of running forever.
// It returns iox.ErrWouldBlock, wrapping ctx.Err(), when ctx is done before
// check() succeeds.
//
// Every async handle uses this instead of a channel-based park/wake: the
// counterpart side never signals anything beyond advancing its own index
// (spec §4.4, "edge-triggered wake from the counterpart's next advance"),
// so there is no wake token to hold other than re-polling the index. A
// spurious wake on cancellation racing a true wake is benign: the extra
// check() call is cheap and idempotent.
func waitAsync(ctx context.Context, n int, check func() int) error {
	if check() >= n {
		return nil
	}
	sw := spin.Wait{}
	const pollEvery = 64
	for i := 0; ; i++ {
		if check() >= n {
			return nil
		}
		if i%pollEvery == pollEvery-1 {
			select {
			case <-ctx.Done():
				return asyncCancelled(ctx.Err())
			default:
			}
		}
		sw.Once()
	}
}

// asyncCancelled wraps ctx's cancellation cause as ErrWouldBlock, so
// callers can use IsWouldBlock uniformly regardless of whether a buffer
// operation failed because it was full/empty or because ctx was cancelled
// while waiting.
func asyncCancelled(cause error) error {
	return &asyncCancelError{cause: cause}
}

type asyncCancelError struct {
	cause error
}

func (e *asyncCancelError) Error() string {
	return "onering: async wait cancelled: " + e.cause.Error()
}

func (e *asyncCancelError) Unwrap() error {
	return e.cause
}

func (e *asyncCancelError) Is(target error) bool {
	return target == ErrWouldBlock
}
