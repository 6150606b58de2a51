// Package intern provides duskgc's concrete stand-in for the interning
// cache spec.md §1 treats as an external collaborator: a registry of
// immutable aggregates (strings, symbols, tuples, structs) keyed by content
// hash so that equal values share one block. The collector only ever calls
// Remove, and only during finalization (spec.md §4.3, §4.4); Intern/Lookup
// are the evaluator-side half of the contract, included here so the cache
// is independently useful and testable rather than a Remove-only stub.
package intern

import (
	"sync"

	"github.com/duskvm/duskgc/gc/value"
)

// entry pairs a cached content hash with the Value that produced it, so
// Remove can find the right bucket slot even when called with a Value whose
// underlying block is already mid-finalization — it never dereferences
// anything beyond the hash the block cached at construction time.
type entry struct {
	hash uint64
	v    value.Value
}

// Cache is a simple chained hash table over content hashes. It is not used
// concurrently by the collector (spec.md §5's single-threaded model), but
// the evaluator collaborator that shares it may run on a different
// goroutine between collections, so lookups and removals take a lock.
type Cache struct {
	mu      sync.Mutex
	buckets map[uint64][]entry
}

// NewCache returns an empty interning cache.
func NewCache() *Cache {
	return &Cache{buckets: make(map[uint64][]entry)}
}

// Intern returns the canonical block for a value with the given content
// hash: an existing entry if one with an equal hash and kind is already
// cached, otherwise v itself, newly registered. The caller (the evaluator,
// in a full implementation) is responsible for actually comparing contents
// on a hash collision; duskgc's cache only does the hash-bucket bookkeeping
// spec.md assigns the interner.
func (c *Cache) Intern(v value.Value, hash uint64) value.Value {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.buckets[hash] {
		if e.v.Tag == v.Tag {
			return e.v
		}
	}
	c.buckets[hash] = append(c.buckets[hash], entry{hash: hash, v: v})
	return v
}

// Remove implements gc.Interner. It is idempotent: removing a value not
// present (already removed, or never interned) is a no-op, matching
// spec.md §6's "idempotent removal" requirement.
func (c *Cache) Remove(v value.Value) {
	hash, ok := contentHash(v)
	if !ok {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	bucket := c.buckets[hash]
	for i, e := range bucket {
		if e.v.Ptr == v.Ptr {
			c.buckets[hash] = append(bucket[:i], bucket[i+1:]...)
			return
		}
	}
}

// Len reports the number of entries currently cached, for tests.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, b := range c.buckets {
		n += len(b)
	}
	return n
}

// contentHash reads back the hash a block cached at construction time,
// exactly the lookup strategy spec.md §4.4's Open Questions section
// requires: "lookup by content hash that was computed and cached in the
// block," not by dereferencing fields finalization may have already torn
// down.
func contentHash(v value.Value) (uint64, bool) {
	switch v.Tag {
	case value.TagString, value.TagSymbol:
		return value.ToString(v.Ptr).Hash, true
	case value.TagTuple:
		return value.ToTuple(v.Ptr).Hash, true
	case value.TagStruct:
		return value.ToStruct(v.Ptr).Hash, true
	default:
		return 0, false
	}
}
