package gc

import "github.com/duskvm/duskgc/gc/value"

// Mark is the tracer's entry point (spec.md §4.2): it dispatches on v's Tag
// and forwards to the kind-specific mark routine for heap kinds, doing
// nothing for Nil, Number and ordinary Bool values (a Bool carrying a
// FuncDef pointer is marked as that FuncDef). It is exported so a host-provided
// custom kind (spec.md §6) can call back into the tracer for values it
// embeds.
func Mark(v value.Value) {
	if v.Ptr == nil {
		return
	}
	switch v.Tag {
	case value.TagString, value.TagSymbol:
		markLeaf(v.Ptr)
	case value.TagArray:
		markArray(value.ToArray(v.Ptr))
	case value.TagTable:
		markTable(value.ToTable(v.Ptr))
	case value.TagTuple:
		markTuple(value.ToTuple(v.Ptr))
	case value.TagStruct:
		markStruct(value.ToStruct(v.Ptr))
	case value.TagBuffer:
		markLeaf(v.Ptr)
	case value.TagFiber:
		markFiber(value.ToFiber(v.Ptr))
	case value.TagFunction:
		markFunction(value.ToFunction(v.Ptr))
	case value.TagFuncEnv:
		markFuncEnv(value.ToFuncEnv(v.Ptr))
	case value.TagUserData:
		markLeaf(v.Ptr)
	case value.TagBool:
		// The boolean-tag/nested-FuncDef convention: an ordinary boolean
		// has Ptr == nil and never reaches here (guarded above). A Value
		// built by value.FuncDefValue carries a FuncDef header in Ptr.
		if def, ok := value.AsFuncDef(v); ok {
			markFuncDef(def)
		}
	}
}

// markLeaf handles every kind with no outgoing references (String, Symbol,
// Buffer, UserData): the "already reachable" guard still applies so a
// shared string reached via two paths isn't double counted, but step 3 of
// the mark contract is a no-op.
func markLeaf(h *value.Header) {
	if h.Reachable() {
		return
	}
	h.SetReachable()
}

func markMany(vs []value.Value) {
	for _, v := range vs {
		Mark(v)
	}
}

func markArray(a *value.Array) {
	if a.Header.Reachable() {
		return
	}
	a.Header.SetReachable()
	markMany(a.Data[:a.Count])
}

func markTable(t *value.Table) {
	if t.Header.Reachable() {
		return
	}
	t.Header.SetReachable()
	for _, kv := range t.Data {
		Mark(kv.Key)
		Mark(kv.Value)
	}
}

func markTuple(t *value.Tuple) {
	if t.Header.Reachable() {
		return
	}
	t.Header.SetReachable()
	markMany(t.Data)
}

func markStruct(s *value.StructVal) {
	if s.Header.Reachable() {
		return
	}
	s.Header.SetReachable()
	for _, kv := range s.Data {
		Mark(kv.Key)
		Mark(kv.Value)
	}
}

// markFuncDef walks a FuncDef's constants, treating any boolean-tagged
// entry as a nested FuncDef reference rather than a literal boolean
// (spec.md §3, §4.2). A nil Constants slice is marked without being
// dereferenced (boundary behavior 11 in §8).
func markFuncDef(def *value.FuncDef) {
	if def.Header.Reachable() {
		return
	}
	def.Header.SetReachable()
	if def.Constants == nil {
		return
	}
	for _, v := range def.Constants {
		if nested, ok := value.AsFuncDef(v); ok {
			markFuncDef(nested)
			continue
		}
		Mark(v)
	}
}

// markFunction marks every captured FuncEnv (skipping nil entries for
// uncaptured slots) and then the FuncDef itself.
func markFunction(fn *value.Function) {
	if fn.Header.Reachable() {
		return
	}
	fn.Header.SetReachable()
	for _, env := range fn.Envs {
		if env != nil {
			markFuncEnv(env)
		}
	}
	if fn.Def != nil {
		markFuncDef(fn.Def)
	}
}

// markFuncEnv marks the owning fiber if the env still borrows its stack
// (offset != 0), or its own closed value array otherwise.
func markFuncEnv(env *value.FuncEnv) {
	if env.Header.Reachable() {
		return
	}
	env.Header.SetReachable()
	if env.IsOnStack() {
		if env.Fiber != nil {
			markFiber(env.Fiber)
		}
		return
	}
	markMany(env.Values)
}

// markFiber walks the frame chain from the fiber's current frame backwards
// through PrevFrame links until the sentinel index 0, marking each frame's
// function (if any) and its slice of the value stack, then the parent
// fiber and the return value.
func markFiber(f *value.Fiber) {
	if f.Header.Reachable() {
		return
	}
	f.Header.SetReachable()

	idx := f.FrameIdx
	for idx != 0 {
		frame := f.Frames[idx-1]
		if frame.Func != nil {
			markFunction(frame.Func)
		}
		markMany(f.Data[frame.Base:frame.Top])
		idx = frame.PrevFrame
	}

	if f.Parent != nil {
		markFiber(f.Parent)
	}
	Mark(f.Ret)
}
