package gc

import (
	"unsafe"

	"github.com/duskvm/duskgc/gc/value"
)

// track is the Go analogue of spec.md §4.1's alloc(type, size): it links a
// freshly built block at the head of the collector's list, tags it with its
// Kind, and charges size against the allocation counter. Unlike the C
// original, duskgc's constructors have already asked Go's own allocator for
// the memory by the time track runs — there is no manual malloc to fail —
// so the only way to observe the OutOfMemory contract is the test-only
// FailNextAlloc hook. The block is left unlinked (as the spec requires) on
// any error path.
func (c *Collector) track(h *value.Header, kind value.Kind, size uintptr) error {
	if c == nil || !c.initialized {
		return ErrUninitialized
	}
	if c.failNextAlloc {
		c.failNextAlloc = false
		return ErrOutOfMemory
	}
	h.Kind = kind
	h.Size = size
	h.SetNext(c.head)
	c.head = h
	c.count++
	c.bytesSinceCollection += uint64(size)
	return nil
}

// NewString allocates an interned immutable byte string.
func (c *Collector) NewString(data string) (*value.String, error) {
	s := value.NewString(data)
	if err := c.track(&s.Header, value.KindString, uintptr(len(data))); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSymbol allocates an interned symbol. Symbols share String's
// representation and differ only in their Kind tag.
func (c *Collector) NewSymbol(data string) (*value.String, error) {
	s := value.NewString(data)
	if err := c.track(&s.Header, value.KindSymbol, uintptr(len(data))); err != nil {
		return nil, err
	}
	return s, nil
}

// NewArray allocates a growable array with the given initial capacity.
func (c *Collector) NewArray(capacity int) (*value.Array, error) {
	a := value.NewArray(capacity)
	if err := c.track(&a.Header, value.KindArray, uintptr(capacity)*unsafe.Sizeof(value.Value{})); err != nil {
		return nil, err
	}
	return a, nil
}

// NewTable allocates a mutable open-addressed table sized for at least
// capacityHint entries.
func (c *Collector) NewTable(capacityHint int) (*value.Table, error) {
	t := value.NewTable(capacityHint)
	if err := c.track(&t.Header, value.KindTable, uintptr(len(t.Data))*unsafe.Sizeof(value.KV{})); err != nil {
		return nil, err
	}
	return t, nil
}

// NewTuple allocates an interned immutable ordered sequence. hash must be
// value.HashTuple(data); the caller computes it so construction and
// interner lookup always agree on the same hash.
func (c *Collector) NewTuple(data []value.Value, hash uint64) (*value.Tuple, error) {
	t := value.NewTuple(data, hash)
	if err := c.track(&t.Header, value.KindTuple, uintptr(len(data))*unsafe.Sizeof(value.Value{})); err != nil {
		return nil, err
	}
	return t, nil
}

// NewStruct allocates an interned immutable mapping. hash must be
// value.HashStruct(data).
func (c *Collector) NewStruct(data []value.KV, hash uint64) (*value.StructVal, error) {
	s := value.NewStruct(data, hash)
	if err := c.track(&s.Header, value.KindStruct, uintptr(len(data))*unsafe.Sizeof(value.KV{})); err != nil {
		return nil, err
	}
	return s, nil
}

// NewBuffer allocates a growable byte buffer with the given initial
// capacity.
func (c *Collector) NewBuffer(capacity int) (*value.Buffer, error) {
	b := value.NewBuffer(capacity)
	if err := c.track(&b.Header, value.KindBuffer, uintptr(capacity)); err != nil {
		return nil, err
	}
	return b, nil
}

// NewFiber allocates a coroutine stack with the given initial slot
// capacity.
func (c *Collector) NewFiber(stackCapacity int) (*value.Fiber, error) {
	f := value.NewFiber(stackCapacity)
	if err := c.track(&f.Header, value.KindFiber, uintptr(stackCapacity)*unsafe.Sizeof(value.Value{})); err != nil {
		return nil, err
	}
	return f, nil
}

// NewFunction allocates a live closure over def, capturing envs (which may
// contain nil entries for uncaptured environment slots).
func (c *Collector) NewFunction(def *value.FuncDef, envs []*value.FuncEnv) (*value.Function, error) {
	fn := value.NewFunction(def, envs)
	if err := c.track(&fn.Header, value.KindFunction, uintptr(len(envs))*unsafe.Sizeof((*value.FuncEnv)(nil))); err != nil {
		return nil, err
	}
	return fn, nil
}

// NewFuncDef allocates a compiled function definition.
func (c *Collector) NewFuncDef(constants []value.Value, bytecode []byte, envs []value.EnvDescriptor) (*value.FuncDef, error) {
	def := value.NewFuncDef(constants, bytecode, envs)
	size := uintptr(len(constants))*unsafe.Sizeof(value.Value{}) + uintptr(len(bytecode)) + uintptr(len(envs))*unsafe.Sizeof(value.EnvDescriptor{})
	if err := c.track(&def.Header, value.KindFuncDef, size); err != nil {
		return nil, err
	}
	return def, nil
}

// NewStackFuncEnv allocates a FuncEnv still borrowing slots from fiber's
// stack (offset != 0 in spec.md's terms). It owns no secondary allocation.
func (c *Collector) NewStackFuncEnv(fiber *value.Fiber, offset uint32) (*value.FuncEnv, error) {
	e := value.NewStackFuncEnv(fiber, offset)
	if err := c.track(&e.Header, value.KindFuncEnv, 0); err != nil {
		return nil, err
	}
	return e, nil
}

// NewClosedFuncEnv allocates a FuncEnv that owns a copy of its captured
// values independent of any fiber (offset == 0 in spec.md's terms).
func (c *Collector) NewClosedFuncEnv(values []value.Value) (*value.FuncEnv, error) {
	e := value.NewClosedFuncEnv(values)
	if err := c.track(&e.Header, value.KindFuncEnv, uintptr(len(values))*unsafe.Sizeof(value.Value{})); err != nil {
		return nil, err
	}
	return e, nil
}

// NewUserData allocates an opaque host-defined payload described by t.
func (c *Collector) NewUserData(t *value.UserDataType, payload interface{}) (*value.UserData, error) {
	u := value.NewUserData(t, payload)
	size := uintptr(0)
	if t != nil {
		size = t.Size
	}
	if err := c.track(&u.Header, value.KindUserData, size); err != nil {
		return nil, err
	}
	return u, nil
}
