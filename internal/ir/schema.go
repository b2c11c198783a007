package ir

// --- Enums ---

// Level identifies which representation level a module is expressed in.
type Level string

const (
	// LevelIR is the high-level intermediate representation.
	LevelIR Level = "ir"
	// LevelMachine is the lowered machine representation. Machine modules
	// carry a TargetLayout describing the instruction set they were
	// lowered for.
	LevelMachine Level = "machine"
)

// OperandKind classifies instruction operands by their static shape.
// Only the shape matters: entity keys derived from operands must never
// depend on runtime values or symbol addresses.
type OperandKind string

const (
	// OperandVariable is a value defined by another instruction.
	OperandVariable OperandKind = "variable"
	// OperandPointer is a defined pointer-typed value.
	OperandPointer OperandKind = "pointer"
	// OperandConstant is an immediate or materialized constant.
	OperandConstant OperandKind = "constant"
	// OperandFunction is a callee or other external symbol reference.
	OperandFunction OperandKind = "function"
	// OperandRegister is a virtual or physical register (machine level).
	OperandRegister OperandKind = "register"
	// OperandImmediate is an inline immediate (machine level).
	OperandImmediate OperandKind = "immediate"
	// OperandLabel is a block or jump-target reference (machine level).
	OperandLabel OperandKind = "label"
)

// KnownOperandKinds lists every operand kind accepted by the loader.
var KnownOperandKinds = []OperandKind{
	OperandVariable,
	OperandPointer,
	OperandConstant,
	OperandFunction,
	OperandRegister,
	OperandImmediate,
	OperandLabel,
}

// --- Models ---

// Operand is one input to an instruction. Name is display-only and never
// participates in entity naming.
type Operand struct {
	Kind OperandKind `yaml:"kind" json:"kind"`
	Name string      `yaml:"name,omitempty" json:"name,omitempty"`
}

// Instruction is a single operation in program order. Opcode is the
// operator name at the module's level ("Add" for IR, a target opcode for
// machine modules). Type is the result type kind name at IR level and the
// result register class at machine level; empty means no result.
type Instruction struct {
	Opcode   string    `yaml:"opcode" json:"opcode"`
	Type     string    `yaml:"type,omitempty" json:"type,omitempty"`
	Operands []Operand `yaml:"operands,omitempty" json:"operands,omitempty"`
	Text     string    `yaml:"text,omitempty" json:"text,omitempty"`
}

// Label returns the display label for the instruction: its textual form
// when present, otherwise its opcode.
func (i *Instruction) Label() string {
	if i.Text != "" {
		return i.Text
	}
	return i.Opcode
}

// BasicBlock is a straight-line sequence of instructions.
type BasicBlock struct {
	Name  string        `yaml:"label" json:"label"`
	Insts []Instruction `yaml:"instructions" json:"instructions"`
}

// Function is an ordered sequence of basic blocks. A function with no
// blocks is a declaration and is skipped by every walk.
type Function struct {
	Name   string       `yaml:"name" json:"name"`
	Blocks []BasicBlock `yaml:"blocks,omitempty" json:"blocks,omitempty"`
}

// IsDeclaration reports whether the function has no body.
func (f *Function) IsDeclaration() bool {
	return len(f.Blocks) == 0
}

// NumInsts returns the total instruction count across all blocks.
func (f *Function) NumInsts() int {
	n := 0
	for _, bb := range f.Blocks {
		n += len(bb.Insts)
	}
	return n
}

// TargetLayout describes the instruction set a machine module was lowered
// for. The machine entity catalog is derived from it, independent of any
// particular program.
type TargetLayout struct {
	Name            string   `yaml:"name" json:"name"`
	Opcodes         []string `yaml:"opcodes" json:"opcodes"`
	RegisterClasses []string `yaml:"registerClasses,omitempty" json:"registerClasses,omitempty"`
}

// Module is a read-only snapshot of one compiled program unit. Function
// order is the declaration order of the source module and is an observable
// contract for every module-wide walk.
type Module struct {
	Name      string        `yaml:"name" json:"name"`
	Level     Level         `yaml:"level" json:"level"`
	Target    *TargetLayout `yaml:"target,omitempty" json:"target,omitempty"`
	Functions []Function    `yaml:"functions" json:"functions"`
}

// FindFunction returns the function with the given raw name, or nil if the
// module does not contain it.
func (m *Module) FindFunction(name string) *Function {
	for i := range m.Functions {
		if m.Functions[i].Name == name {
			return &m.Functions[i]
		}
	}
	return nil
}

// Stats summarizes a module for status output.
type Stats struct {
	FunctionCount    int `json:"functionCount"`
	DeclarationCount int `json:"declarationCount"`
	BlockCount       int `json:"blockCount"`
	InstructionCount int `json:"instructionCount"`
}

// ComputeStats walks the module once and counts its units.
func (m *Module) ComputeStats() Stats {
	var s Stats
	for i := range m.Functions {
		f := &m.Functions[i]
		s.FunctionCount++
		if f.IsDeclaration() {
			s.DeclarationCount++
			continue
		}
		s.BlockCount += len(f.Blocks)
		s.InstructionCount += f.NumInsts()
	}
	return s
}
