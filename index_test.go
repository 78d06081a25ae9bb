// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering

import "testing"

func TestLocalIndexWorkFallsBackToProdWhenNotMutable(t *testing.T) {
	idx := newLocalIndex(false)
	idx.storeProd(5)
	if got := idx.loadWork(); got != 5 {
		t.Fatalf("loadWork on non-mutable: got %d, want 5 (fallback to prod)", got)
	}
}

func TestLocalIndexWorkIndependentWhenMutable(t *testing.T) {
	idx := newLocalIndex(true)
	idx.storeProd(5)
	idx.storeWork(2)
	if got := idx.loadWork(); got != 2 {
		t.Fatalf("loadWork on mutable: got %d, want 2", got)
	}
}

func TestLocalIndexReleaseCountsDownToZero(t *testing.T) {
	idx := newLocalIndex(false)
	if r := idx.release(); r != 1 {
		t.Fatalf("first release: got %d, want 1", r)
	}
	if r := idx.release(); r != 0 {
		t.Fatalf("second release: got %d, want 0", r)
	}
}

func TestSharedIndexWorkFallsBackToProdWhenNotMutable(t *testing.T) {
	idx := newSharedIndex(false)
	idx.storeProd(9)
	if got := idx.loadWork(); got != 9 {
		t.Fatalf("loadWork on non-mutable: got %d, want 9", got)
	}
}

func TestSharedIndexReleaseCountsDownToZero(t *testing.T) {
	idx := newSharedIndex(true) // alive=3
	if r := idx.release(); r != 2 {
		t.Fatalf("release 1: got %d, want 2", r)
	}
	if r := idx.release(); r != 1 {
		t.Fatalf("release 2: got %d, want 1", r)
	}
	if r := idx.release(); r != 0 {
		t.Fatalf("release 3: got %d, want 0", r)
	}
}

func TestAvailableClosedForm(t *testing.T) {
	// N=4, producer gap=1: own=0, succ=0 (consumer hasn't moved) -> 3 free
	if got := available(0, 0, 4, 1); got != 3 {
		t.Fatalf("available(0,0,4,1): got %d, want 3", got)
	}
	// worker/consumer gap=0: own=succ -> nothing available
	if got := available(2, 2, 4, 0); got != 0 {
		t.Fatalf("available(2,2,4,0): got %d, want 0", got)
	}
	// wraps correctly when succ < own
	if got := available(3, 1, 4, 0); got != 2 {
		t.Fatalf("available(3,1,4,0): got %d, want 2", got)
	}
}
