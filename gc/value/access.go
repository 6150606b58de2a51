package value

// The functions below are the seams the collector's tracer and finalizer
// dispatch through: given a block's Header and its Kind tag (already known
// to the caller), recover the concrete struct, or wrap a concrete struct as
// a traceable Value. Kept in one file because they are mechanical and have
// no behavior of their own beyond the unsafe cast in header.go.

func ToString(h *Header) *String       { return headerToString(h) }
func ToArray(h *Header) *Array         { return headerToArray(h) }
func ToTable(h *Header) *Table         { return headerToTable(h) }
func ToTuple(h *Header) *Tuple         { return headerToTuple(h) }
func ToStruct(h *Header) *StructVal    { return headerToStruct(h) }
func ToBuffer(h *Header) *Buffer       { return headerToBuffer(h) }
func ToFiber(h *Header) *Fiber         { return headerToFiber(h) }
func ToFunction(h *Header) *Function   { return headerToFunction(h) }
func ToFuncDef(h *Header) *FuncDef     { return headerToFuncDef(h) }
func ToFuncEnv(h *Header) *FuncEnv     { return headerToFuncEnv(h) }
func ToUserData(h *Header) *UserData   { return headerToUserData(h) }

func FromString(s *String) Value     { return Value{Tag: s.Kind.valueTag(), Ptr: &s.Header} }
func FromArray(a *Array) Value       { return Value{Tag: TagArray, Ptr: &a.Header} }
func FromTable(t *Table) Value       { return Value{Tag: TagTable, Ptr: &t.Header} }
func FromTuple(t *Tuple) Value       { return Value{Tag: TagTuple, Ptr: &t.Header} }
func FromStruct(s *StructVal) Value  { return Value{Tag: TagStruct, Ptr: &s.Header} }
func FromBuffer(b *Buffer) Value     { return Value{Tag: TagBuffer, Ptr: &b.Header} }
func FromFiber(f *Fiber) Value       { return Value{Tag: TagFiber, Ptr: &f.Header} }
func FromFunction(fn *Function) Value { return Value{Tag: TagFunction, Ptr: &fn.Header} }
func FromFuncEnv(e *FuncEnv) Value   { return Value{Tag: TagFuncEnv, Ptr: &e.Header} }
func FromUserData(u *UserData) Value { return Value{Tag: TagUserData, Ptr: &u.Header} }

// valueTag maps a String block's Kind (String or Symbol, the only two kinds
// that share the String struct) to its Value tag.
func (k Kind) valueTag() Tag {
	if k == KindSymbol {
		return TagSymbol
	}
	return TagString
}

// NewString allocates a detached String block, not yet tracked by any
// collector and not yet tagged with its Kind (String vs Symbol); a
// Collector's NewString/NewSymbol call fills that in and links the block.
func NewString(data string) *String {
	return &String{Data: data, Hash: siphashString(data)}
}
