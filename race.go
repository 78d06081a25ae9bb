// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package onering

// RaceEnabled is true when the race detector is active.
// The race detector cannot verify concurrent use of sharedIndex: its
// synchronization is carried by acquire/release
// orderings on independent atomix fields rather than a mutex or channel, so
// the detector can report false positives on the plain fields (slot
// values/state tags) that those orderings actually protect.
const RaceEnabled = true
