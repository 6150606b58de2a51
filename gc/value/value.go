package value

// Tag discriminates a Value: the primitive kinds plus one entry per heap
// Kind. Tag and Kind are deliberately separate types — a Value can be Nil,
// Bool or Number without ever touching the heap, and the tracer's top-level
// dispatch (Mark in the gc package) only needs Tag to decide whether there
// is a heap pointer to follow at all.
type Tag uint8

const (
	TagNil Tag = iota
	TagBool
	TagNumber
	TagString
	TagSymbol
	TagArray
	TagTable
	TagTuple
	TagStruct
	TagBuffer
	TagFiber
	TagFunction
	TagFuncEnv
	TagUserData
)

// Value is the tagged union the evaluator operates on. It is copied by
// value everywhere except Ptr, which is the only field the collector ever
// traces. Non-heap tags (Nil, Bool, Number) carry no pointer and are no-ops
// to the tracer.
type Value struct {
	Tag    Tag
	Number float64
	Bool   bool
	// Ptr addresses the Header embedded in the referenced heap object,
	// never the object's interior. Nil for non-heap tags.
	Ptr *Header
}

func Nil() Value                 { return Value{Tag: TagNil} }
func Boolean(b bool) Value       { return Value{Tag: TagBool, Bool: b} }
func Number(n float64) Value     { return Value{Tag: TagNumber, Number: n} }
func (v Value) IsNil() bool      { return v.Tag == TagNil }
func (v Value) IsHeap() bool     { return v.Ptr != nil }

// funcDefValue wraps a *FuncDef as a Value using the boolean-tag convention
// documented for nested FuncDefs embedded in a FuncDef's constants array:
// the discriminant is TagBool, but Ptr aliases the FuncDef's header rather
// than being nil. Only the tracer's FuncDef walk (gc package) and AsFuncDef
// below are meant to unwrap this; everything else must keep treating an
// ordinary TagBool Value as an ordinary boolean.
func funcDefValue(def *FuncDef) Value {
	return Value{Tag: TagBool, Ptr: &def.Header}
}

// FuncDefValue exposes the boolean-tag encoding to callers outside this
// package (the compiler collaborator, in a full implementation) that build
// a FuncDef's constants table.
func FuncDefValue(def *FuncDef) Value { return funcDefValue(def) }

// AsFuncDef unwraps a Value produced by FuncDefValue. ok is false if v is
// not a boolean-tagged FuncDef reference.
func AsFuncDef(v Value) (def *FuncDef, ok bool) {
	if v.Tag != TagBool || v.Ptr == nil {
		return nil, false
	}
	return headerToFuncDef(v.Ptr), true
}
