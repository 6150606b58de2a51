package gc

import "github.com/duskvm/duskgc/gc/value"

// Pin marks a heap value as collection-resistant regardless of whether the
// tracer would otherwise reach it (spec.md §4.6). It exists for objects not
// yet linked into any traced root — freshly constructed, not yet stored
// anywhere the active fiber or another pinned object can reach. Non-heap
// values are ignored.
//
// Pinning is idempotent: pinning an already-pinned value changes nothing,
// matching spec.md §4.6's "behavior does not depend on a count" contract
// (duskgc uses a single bit, not a pin counter).
func Pin(v value.Value) {
	if v.Ptr == nil {
		return
	}
	v.Ptr.SetDisabled()
}

// Unpin clears the pin set by Pin. A single Unpin call always makes the
// object collectable again, even if Pin was called on it more than once —
// spec.md §4.6 requires this regardless of which pin-tracking strategy an
// implementation picks.
func Unpin(v value.Value) {
	if v.Ptr == nil {
		return
	}
	v.Ptr.ClearDisabled()
}
