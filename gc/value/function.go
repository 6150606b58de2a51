package value

// Function is a live closure: a reference to its compiled FuncDef plus the
// FuncEnvs it captured, one per environment slot the def declares. An entry
// may be nil if that environment slot was never captured.
type Function struct {
	Header
	Def  *FuncDef
	Envs []*FuncEnv
}

func NewFunction(def *FuncDef, envs []*FuncEnv) *Function {
	return &Function{Def: def, Envs: envs}
}

func headerToFunction(h *Header) *Function { return (*Function)(unsafePointer(h)) }
