package value

// String is the shared representation for STRING and SYMBOL: an immutable
// byte sequence with no secondary allocation (the bytes live inline in the
// Go string header, not in a separately tracked buffer). Kind distinguishes
// the two at the header; Data, Hash and the finalization path are identical.
type String struct {
	Header
	Data string
	// Hash is computed once at construction and cached for the interner,
	// which must be able to look an entry up by content hash even after
	// the block itself is mid-finalization (spec.md §4.4).
	Hash uint64
}

func headerToString(h *Header) *String { return (*String)(unsafePointer(h)) }
