// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering

// pad is cache line padding to prevent false sharing, same shape as the
// teacher lfq package's padding fields.
type pad [64]byte

// padAfterUint64 pads out the remainder of a cache line following one
// 8-byte field.
type padAfterUint64 [64 - 8]byte
