// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering

// indexState is the capability interface for the three position counters
// plus the alive-participant count (spec §4.2, Design Notes §9). Two
// implementations share it: localIndex (single execution context, plain
// scalars) and sharedIndex (atomix-backed, release/acquire ordered). There
// is no dispatch on the hot path beyond this one interface call per
// operation — the "one inline branch if runtime-chosen" alternative spec §9
// allows.
type indexState interface {
	loadProd() uint64
	storeProd(uint64)

	// loadWork returns the worker index, or loadProd() on a non-mutable
	// buffer (spec §4.2: "Non-mutable variants omit the worker counter;
	// reads of worker index return producer index").
	loadWork() uint64
	storeWork(uint64)

	loadCons() uint64
	storeCons(uint64)

	hasWorker() bool

	// release decrements the alive count (with release ordering) and
	// returns the count remaining after the decrement.
	release() uint8

	// fence performs the acquire fence spec §4.2 requires of the final
	// holder before it releases storage, so that element drops in that
	// holder's context happen-after all prior slot stores.
	fence()
}

// localIndex is the single-execution-context implementation: plain scalars,
// no synchronization. Using it across goroutines is undefined, matching
// spec §5 ("Using a Local-index buffer across threads is undefined").
type localIndex struct {
	prod, work, cons uint64
	alive            uint8
	mutable          bool
}

func newLocalIndex(mutable bool) *localIndex {
	n := uint8(2)
	if mutable {
		n = 3
	}
	return &localIndex{alive: n, mutable: mutable}
}

func (l *localIndex) loadProd() uint64   { return l.prod }
func (l *localIndex) storeProd(v uint64) { l.prod = v }

func (l *localIndex) loadWork() uint64 {
	if !l.mutable {
		return l.prod
	}
	return l.work
}
func (l *localIndex) storeWork(v uint64) { l.work = v }

func (l *localIndex) loadCons() uint64   { return l.cons }
func (l *localIndex) storeCons(v uint64) { l.cons = v }

func (l *localIndex) hasWorker() bool { return l.mutable }

func (l *localIndex) release() uint8 {
	l.alive--
	return l.alive
}

func (l *localIndex) fence() {}
