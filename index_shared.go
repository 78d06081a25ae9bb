// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering

import "code.hybscloud.com/atomix"

// sharedIndex is the multi-execution-context implementation: each counter
// is an atomix.Uint64 isolated on its own cache line by the same pad type
// the teacher lfq package uses to keep producer/worker/consumer counters
// from false-sharing, and the alive count is an atomix.Int32 (lfq has no
// atomix.Uint8; Int32 is the smallest width lfq's ecosystem exposes and is
// already used for tests' atomic counters).
type sharedIndex struct {
	_       pad
	prod    atomix.Uint64
	_       pad
	work    atomix.Uint64
	_       pad
	cons    atomix.Uint64
	_       pad
	alive   atomix.Int32
	_       pad
	mutable bool
}

func newSharedIndex(mutable bool) *sharedIndex {
	s := &sharedIndex{mutable: mutable}
	n := int32(2)
	if mutable {
		n = 3
	}
	s.alive.StoreRelaxed(n)
	return s
}

func (s *sharedIndex) loadProd() uint64   { return s.prod.LoadAcquire() }
func (s *sharedIndex) storeProd(v uint64) { s.prod.StoreRelease(v) }

func (s *sharedIndex) loadWork() uint64 {
	if !s.mutable {
		return s.prod.LoadAcquire()
	}
	return s.work.LoadAcquire()
}
func (s *sharedIndex) storeWork(v uint64) { s.work.StoreRelease(v) }

func (s *sharedIndex) loadCons() uint64   { return s.cons.LoadAcquire() }
func (s *sharedIndex) storeCons(v uint64) { s.cons.StoreRelease(v) }

func (s *sharedIndex) hasWorker() bool { return s.mutable }

// release decrements the alive count with release ordering (so every prior
// store this handle made to its own slot range is visible to whichever
// handle observes the count reach zero) and returns the count remaining.
func (s *sharedIndex) release() uint8 {
	remaining := s.alive.AddAcqRel(-1)
	return uint8(remaining)
}

// fence performs an acquire-fenced reload of the alive count. atomix has no
// free-standing fence primitive; an acquire load of the same variable the
// release step stored to is the spec-sanctioned equivalent ("or, on
// thread-sanitizer builds, an equivalent acquire load").
func (s *sharedIndex) fence() {
	_ = s.alive.LoadAcquire()
}
