// Package value implements the heap-object data model the collector traces:
// the tagged Value union and the concrete kinds it points at. The evaluator,
// compiler and value representation are out-of-scope collaborators for the
// collector proper; this package is duskgc's own minimal stand-in for them,
// just complete enough to give the tracer something real to walk.
package value

import "unsafe"

// Kind is the closed set of heap object types the collector knows how to
// trace and finalize. It is stored in a block's Header and never changes
// for the life of the block.
type Kind uint8

const (
	KindString Kind = iota
	KindSymbol
	KindArray
	KindTable
	KindTuple
	KindStruct
	KindBuffer
	KindFiber
	KindFunction
	KindFuncDef
	KindFuncEnv
	KindUserData
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	case KindArray:
		return "array"
	case KindTable:
		return "table"
	case KindTuple:
		return "tuple"
	case KindStruct:
		return "struct"
	case KindBuffer:
		return "buffer"
	case KindFiber:
		return "fiber"
	case KindFunction:
		return "function"
	case KindFuncDef:
		return "funcdef"
	case KindFuncEnv:
		return "funcenv"
	case KindUserData:
		return "userdata"
	default:
		return "unknown"
	}
}

// flags bits live in the block header, mirroring the C original's
// DST_MEM_REACHABLE / DST_MEM_DISABLED bitfield.
type flags uint8

const (
	flagReachable flags = 1 << iota
	flagDisabled
)

// Header is embedded as the first field of every heap kind below. Every
// concrete type's address is therefore also the address of its Header,
// which is what lets the collector walk a type-erased intrusive list and
// recover the concrete type from the Kind tag (see the ToX functions in
// access.go).
type Header struct {
	next  *Header
	Kind  Kind
	flags flags
	// Size is the logical payload size charged against the allocation
	// counter at alloc time; it has no bearing on tracing.
	Size uintptr
}

// Next returns the following block in the collector's allocation list, or
// nil at the tail.
func (h *Header) Next() *Header { return h.next }

// SetNext relinks the block's successor. Only the collector's allocator and
// sweeper should call this; it exists on Header rather than being collector-
// private because Header is the only thing both packages share.
func (h *Header) SetNext(n *Header) { h.next = n }

func (h *Header) Reachable() bool   { return h.flags&flagReachable != 0 }
func (h *Header) SetReachable()     { h.flags |= flagReachable }
func (h *Header) ClearReachable()   { h.flags &^= flagReachable }

func (h *Header) Disabled() bool { return h.flags&flagDisabled != 0 }
func (h *Header) SetDisabled()   { h.flags |= flagDisabled }
func (h *Header) ClearDisabled() { h.flags &^= flagDisabled }

// unsafePointer is the one place this package admits it is standing in for
// C's header-prefixed allocations: because Header is always the first field
// of a concrete kind, a *Header recovered from the intrusive list can be
// cast back to its concrete type given the Kind tag. Every headerToX
// function in this package is a thin wrapper around this conversion.
func unsafePointer(h *Header) unsafe.Pointer { return unsafe.Pointer(h) }
