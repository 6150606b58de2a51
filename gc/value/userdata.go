package value

// UserDataType is the vtable-style descriptor a host hands the collector
// for an opaque payload kind: a declared Size (for bookkeeping only — Go's
// own allocator owns the real memory) and an optional Finalize hook run once
// during sweep. Finalize must not allocate GC memory or trigger a
// collection (spec.md §5, §7 — finalizer misuse is undefined behavior, not
// checked here).
type UserDataType struct {
	Name     string
	Size     uintptr
	Finalize func(payload interface{})
}

// UserData is an opaque host-defined payload traced as a leaf: the
// collector never looks inside Payload, only at Type.Finalize.
type UserData struct {
	Header
	Type    *UserDataType
	Payload interface{}
}

func NewUserData(t *UserDataType, payload interface{}) *UserData {
	return &UserData{Type: t, Payload: payload}
}

func headerToUserData(h *Header) *UserData { return (*UserData)(unsafePointer(h)) }
