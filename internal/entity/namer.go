package entity

import "github.com/dusk-indust/irvec/internal/ir"

// Namer maps program constructs to canonical entity keys. Implementations
// must be pure functions of the construct's static shape: the same opcode,
// type and operand kinds always produce the same keys, across runs and
// across compilations. Data values, variable names and addresses never
// influence a key.
type Namer interface {
	// OpcodeKey returns the entity key for the instruction's operator.
	OpcodeKey(inst *ir.Instruction) string

	// TypeKey returns the entity key for the instruction's result type.
	TypeKey(inst *ir.Instruction) string

	// OperandKey returns the entity key for an operand, and whether the
	// operand resolves to an entity at all. Operands that are not defined
	// values (constants, external symbols, immediates) do not resolve.
	OperandKey(op ir.Operand) (string, bool)
}

// Compile-time interface checks.
var (
	_ Namer = (*IRNamer)(nil)
	_ Namer = (*MachineNamer)(nil)
)

// IRNamer names high-level constructs. Opcode keys are the fixed operator
// names, type keys canonicalize to the irTypeKinds table.
type IRNamer struct{}

var irTypeSet = func() map[string]bool {
	s := make(map[string]bool, len(irTypeKinds))
	for _, t := range irTypeKinds {
		s[t] = true
	}
	return s
}()

// OpcodeKey returns the operator name unchanged.
func (IRNamer) OpcodeKey(inst *ir.Instruction) string {
	return inst.Opcode
}

// TypeKey canonicalizes the result type: an empty type means the
// instruction produces no value (VoidTy), and unrecognized type names
// collapse to UnknownTy so that newer representation versions degrade to a
// stable key instead of an unresolvable one.
func (IRNamer) TypeKey(inst *ir.Instruction) string {
	if inst.Type == "" {
		return "VoidTy"
	}
	if irTypeSet[inst.Type] {
		return inst.Type
	}
	return "UnknownTy"
}

// OperandKey maps defined values to their category entity. Constants and
// function symbols are in the vocabulary key space but are not argument
// material, so they do not resolve here.
func (IRNamer) OperandKey(op ir.Operand) (string, bool) {
	switch op.Kind {
	case ir.OperandVariable:
		return "Variable", true
	case ir.OperandPointer:
		return "Pointer", true
	default:
		return "", false
	}
}

// MachineNamer names lowered constructs against a target layout. Opcode
// keys are target opcode names; type keys are result register classes.
type MachineNamer struct{}

// OpcodeKey returns the target opcode name unchanged.
func (MachineNamer) OpcodeKey(inst *ir.Instruction) string {
	return inst.Opcode
}

// TypeKey returns the result register class, or NoClass for instructions
// that define no register.
func (MachineNamer) TypeKey(inst *ir.Instruction) string {
	if inst.Type == "" {
		return machineNoClass
	}
	return inst.Type
}

// OperandKey resolves register operands only: immediates and labels carry
// no defined value.
func (MachineNamer) OperandKey(op ir.Operand) (string, bool) {
	if op.Kind == ir.OperandRegister {
		return "Register", true
	}
	return "", false
}
