package value

// Tuple is an immutable ordered sequence of Values. Like String, it has no
// secondary allocation — Data is part of the Go allocation itself — but it
// is still an interned kind: two tuples with equal contents share one block.
type Tuple struct {
	Header
	Data []Value
	Hash uint64
}

func NewTuple(data []Value, hash uint64) *Tuple {
	return &Tuple{Data: data, Hash: hash}
}

func headerToTuple(h *Header) *Tuple { return (*Tuple)(unsafePointer(h)) }
