// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering

import (
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately and is
// surfaced only by the async adapter's context-cancellation path; the sync
// handles never return it — a full Push is a no-op returning (x, false) and
// an empty Pop is a no-op returning (zero, false), per the element-transfer
// API.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}

// badCapacity panics with a message identifying the offending capacity.
// Construction failures are fatal: the constructor aborts, never returns
// a partially built buffer.
func badCapacity(n int) {
	panic(fmt.Sprintf("onering: capacity must be > 0, got %d", n))
}
