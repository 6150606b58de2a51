package value

// StructVal is an immutable value-to-value mapping, open-addressed like
// Table but, like Tuple, interned and inline (no secondary allocation beyond
// the Data slice that is part of the block itself).
type StructVal struct {
	Header
	Data []KV
	Hash uint64
}

func NewStruct(data []KV, hash uint64) *StructVal {
	return &StructVal{Data: data, Hash: hash}
}

func headerToStruct(h *Header) *StructVal { return (*StructVal)(unsafePointer(h)) }
