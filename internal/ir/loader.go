package ir

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadModule reads a module description from a YAML file and validates it.
// The description format is this tool's own declarative snapshot of an
// already-parsed program; it is not a compiler IR format.
func LoadModule(path string) (*Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ir: read module description: %w", err)
	}
	return ParseModule(data)
}

// ParseModule decodes and validates a YAML module description.
func ParseModule(data []byte) (*Module, error) {
	var m Module
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("ir: decode module description: %w", err)
	}
	if err := validateModule(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func validateModule(m *Module) error {
	if m.Name == "" {
		return fmt.Errorf("ir: module has no name")
	}

	switch m.Level {
	case LevelIR:
		// No target layout required; a stray one is tolerated and ignored.
	case LevelMachine:
		if m.Target == nil || len(m.Target.Opcodes) == 0 {
			return fmt.Errorf("ir: machine module %q has no target layout", m.Name)
		}
	case "":
		return fmt.Errorf("ir: module %q has no level", m.Name)
	default:
		return fmt.Errorf("ir: module %q has unknown level %q", m.Name, m.Level)
	}

	known := make(map[OperandKind]bool, len(KnownOperandKinds))
	for _, k := range KnownOperandKinds {
		known[k] = true
	}

	seen := make(map[string]bool, len(m.Functions))
	for fi := range m.Functions {
		f := &m.Functions[fi]
		if f.Name == "" {
			return fmt.Errorf("ir: module %q: function %d has no name", m.Name, fi)
		}
		if seen[f.Name] {
			return fmt.Errorf("ir: module %q: duplicate function %q", m.Name, f.Name)
		}
		seen[f.Name] = true

		for bi := range f.Blocks {
			bb := &f.Blocks[bi]
			for ii := range bb.Insts {
				inst := &bb.Insts[ii]
				if inst.Opcode == "" {
					return fmt.Errorf("ir: function %q block %q: instruction %d has no opcode",
						f.Name, bb.Name, ii)
				}
				for oi, op := range inst.Operands {
					if !known[op.Kind] {
						return fmt.Errorf("ir: function %q block %q instruction %d: unknown operand kind %q (operand %d)",
							f.Name, bb.Name, ii, op.Kind, oi)
					}
				}
			}
		}
	}
	return nil
}
