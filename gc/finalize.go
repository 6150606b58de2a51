package gc

import "github.com/duskvm/duskgc/gc/value"

// deinitBlock is spec.md §4.3's deinit_block: a type-dispatched routine run
// once per unreachable block, during sweep, before the block is unlinked.
// It releases secondary allocations and notifies the interner for interned
// kinds. The block's own memory is reclaimed by the sweeper after this
// returns — in duskgc that means dropping every reference so Go's own
// collector can eventually reclaim it, since there is no manual free here.
//
// Finalizers must not allocate new tracked blocks or call Mark/Collect
// (spec.md §4.4, §5); Interner.Remove is the sole permitted re-entrant
// call, and it must tolerate a key whose block is already torn down.
func (c *Collector) deinitBlock(h *value.Header) {
	switch h.Kind {
	case value.KindString, value.KindSymbol:
		s := value.ToString(h)
		c.interner.Remove(value.FromString(s))
	case value.KindArray:
		a := value.ToArray(h)
		a.Data = nil
	case value.KindTable:
		t := value.ToTable(h)
		t.Data = nil
	case value.KindTuple:
		t := value.ToTuple(h)
		c.interner.Remove(value.FromTuple(t))
	case value.KindStruct:
		s := value.ToStruct(h)
		c.interner.Remove(value.FromStruct(s))
	case value.KindBuffer:
		b := value.ToBuffer(h)
		b.Data = nil
	case value.KindFiber:
		f := value.ToFiber(h)
		f.Data = nil
		f.Frames = nil
	case value.KindFunction:
		fn := value.ToFunction(h)
		fn.Envs = nil
	case value.KindFuncDef:
		def := value.ToFuncDef(h)
		def.Environments = nil
		def.Constants = nil
		def.Bytecode = nil
	case value.KindFuncEnv:
		env := value.ToFuncEnv(h)
		if !env.IsOnStack() {
			env.Values = nil
		}
	case value.KindUserData:
		u := value.ToUserData(h)
		if u.Type != nil && u.Type.Finalize != nil {
			u.Type.Finalize(u.Payload)
		}
	}
}
