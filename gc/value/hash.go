package value

import "github.com/dchest/siphash"

// hashKey is fixed for the process: content hashes only need to be stable
// within one run (they key the interner's lookup table, not anything
// persisted), so there is no need to randomize or configure it.
var hashKey0, hashKey1 uint64 = 0x646f6c6c20706172, 0x746f6e2062726561

// siphashString computes the content hash cached on every interned String
// block, per spec.md §4.4's requirement that finalization be able to look a
// block up in the interner "by content hash that was computed and cached in
// the block" rather than by a possibly-dangling pointer.
func siphashString(s string) uint64 {
	return siphash.Hash(hashKey0, hashKey1, []byte(s))
}

// siphashValues hashes an ordered sequence of Values structurally, for
// Tuple and StructVal content hashing. Heap-pointer elements hash by their
// own cached content hash when available (interned kinds), or by pointer
// identity otherwise — good enough for the interner's purposes, since two
// distinct non-interned blocks are never expected to compare equal anyway.
func siphashValues(vs []Value) uint64 {
	buf := make([]byte, 0, len(vs)*8)
	for _, v := range vs {
		buf = appendUint64(buf, uint64(v.Tag))
		buf = appendUint64(buf, contentHash(v))
	}
	return siphash.Hash(hashKey0, hashKey1, buf)
}

func contentHash(v Value) uint64 {
	switch v.Tag {
	case TagString, TagSymbol:
		return ToString(v.Ptr).Hash
	case TagTuple:
		return ToTuple(v.Ptr).Hash
	case TagStruct:
		return ToStruct(v.Ptr).Hash
	case TagNil:
		return 0
	case TagBool:
		if v.Ptr != nil {
			return uint64(uintptr(unsafePointer(v.Ptr)))
		}
		if v.Bool {
			return 1
		}
		return 0
	case TagNumber:
		return uint64(v.Number)
	default:
		return hashValue(v)
	}
}

func appendUint64(buf []byte, x uint64) []byte {
	for i := 0; i < 8; i++ {
		buf = append(buf, byte(x))
		x >>= 8
	}
	return buf
}

// HashTuple and HashStruct are exported so the evaluator collaborator (or
// tests building interned aggregates) can compute the cached hash before
// handing data to a constructor.
func HashTuple(vs []Value) uint64        { return siphashValues(vs) }
func HashStruct(data []KV) uint64 {
	flat := make([]Value, 0, len(data)*2)
	for _, kv := range data {
		flat = append(flat, kv.Key, kv.Value)
	}
	return siphashValues(flat)
}
