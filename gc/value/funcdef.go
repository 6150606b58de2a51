package value

// FuncDef is the immutable compiled form of a function: constants, nested
// function definitions (embedded in Constants via the boolean-tag
// convention, see FuncDefValue), bytecode and per-slot environment
// descriptors. Constants may be nil for a def with no constant pool; the
// tracer must not dereference it in that case (spec.md §8, boundary
// behavior 11).
type FuncDef struct {
	Header
	Constants    []Value
	Bytecode     []byte
	Environments []EnvDescriptor
}

// EnvDescriptor records, for one captured variable slot, enough bookkeeping
// for the evaluator to build the FuncEnv at call time. The collector never
// traces these directly; they carry no heap pointers of their own.
type EnvDescriptor struct {
	Name string
}

func NewFuncDef(constants []Value, bytecode []byte, envs []EnvDescriptor) *FuncDef {
	return &FuncDef{Constants: constants, Bytecode: bytecode, Environments: envs}
}

func headerToFuncDef(h *Header) *FuncDef { return (*FuncDef)(unsafePointer(h)) }
