package gc

import "github.com/duskvm/duskgc/gc/value"

// Interner is the external collaborator spec.md §1/§6 describes as a
// black-box registry for immutable aggregates: Remove must be idempotent
// and, per §4.4, must accept a key whose backing block is mid-finalization
// — it looks entries up by the content hash cached on the block, never by
// dereferencing fields that finalization may already have torn down.
// Remove must not allocate GC memory or trigger a collection.
type Interner interface {
	Remove(v value.Value)
}

// NopInterner discards every removal. It is the default for a Collector
// that has no host-provided interning cache (e.g. unit tests exercising the
// tracer/sweeper in isolation), matching the spec's treatment of the
// interner as optional external state from the collector's point of view.
type NopInterner struct{}

func (NopInterner) Remove(value.Value) {}
