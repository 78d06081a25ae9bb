// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package onering

import "io"

// slotState is the tri-state tag for a ring slot: a cell may be
// uninitialized (zeroed bits, must not be read), initialized (holds a live
// T), or moved (bitwise a copy of some T whose owner has transferred
// ownership via PopMove; reading it as a valid T risks a double-release).
//
// The spec's data model offers a zero-byte heuristic as an alternative
// discriminator; onering does not use it. A type whose zero value is a
// valid, meaningful T (e.g. a struct embedding a sync.Mutex) makes the
// heuristic indistinguishable from "genuinely initialized", so every slot
// instead carries this explicit tag, set only by the handle methods that
// change slot ownership (push_init/pop_move's Go equivalents). See
// DESIGN.md OQ-2.
type slotState uint8

const (
	slotUninit slotState = iota
	slotInit
	slotMoved
)

// slot is a detached value+tag pair, used only where a storage backing's
// release walk already holds both halves as local copies (storage.go's and
// storage_inline.go's/storage_vmem_linux.go's release(lo,hi)). It is never
// the thing Producer/Worker/Consumer operate on directly: live storage
// keeps the element and its tag in separate arrays (Storage.ValueAt /
// Storage.StateAt), so `*T` itself has no methods — handles call the
// writeInitAt/takeMoveAt free functions below instead, which read and
// write both arrays through the Storage capability interface.
type slot[T any] struct {
	value T
	state slotState
}

// closer is satisfied by element types that own a resource needing release
// before being overwritten. Go has no destructors, so the "drop" step from
// spec §4.3.5/§8 P5 is realized as an explicit Close call on the outgoing
// value, mirroring the release step of the sibling iobuf pool's Put/Get
// pair rather than a language-level finalizer.
type closer = io.Closer

// writeInitAt stores value into st's slot i, releasing any resource held by
// a previously-initialized occupant first (push_init's contract: detect
// moved/uninitialized state and skip the release, otherwise release-then-
// overwrite). Safe to call regardless of the slot's current state.
func writeInitAt[T any](st Storage[T], i int, value T) {
	if *st.StateAt(i) == slotInit {
		if c, ok := any(*st.ValueAt(i)).(closer); ok {
			_ = c.Close()
		} else if c, ok := any(st.ValueAt(i)).(closer); ok {
			_ = c.Close()
		}
	}
	*st.ValueAt(i) = value
	*st.StateAt(i) = slotInit
}

// takeMoveAt moves the value out of st's slot i, leaving it in the moved
// state. The slot must be re-initialized with writeInitAt before any
// subsequent plain write (Push, a slice push) targets it.
func takeMoveAt[T any](st Storage[T], i int) T {
	v := *st.ValueAt(i)
	var zero T
	*st.ValueAt(i) = zero
	*st.StateAt(i) = slotMoved
	return v
}

// isZeroState reports whether the slot is not currently holding a live,
// consumer-owned value (uninitialized or moved). Never used as the sole
// discriminator for a release decision on its own (see slotState's doc for
// why a bit-pattern check is not used).
func (s *slot[T]) isZeroState() bool {
	return s.state == slotUninit || s.state == slotMoved
}

// release invokes Close on a live element, used when storage is torn down
// and a consumer-visible slot still holds a value (spec P6:
// dropping the last handle invokes drop on every element known to be in the
// consumer-visible range). Operates on the local value+tag copy a storage
// backing's release(lo,hi) constructs per slot; the caller writes the
// (possibly now-zeroed) result back into its arrays.
func (s *slot[T]) release() {
	if s.state != slotInit {
		return
	}
	if c, ok := any(s.value).(closer); ok {
		_ = c.Close()
	} else if c, ok := any(&s.value).(closer); ok {
		_ = c.Close()
	}
	var zero T
	s.value = zero
	s.state = slotUninit
}
