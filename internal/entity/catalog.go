package entity

import (
	"fmt"

	"github.com/dusk-indust/irvec/internal/ir"
)

// Catalog is the stable, index-addressable list of entity names backing a
// vocabulary: entity_id is the position of a name in the catalog. A catalog
// is immutable after construction and independent of any loaded program.
type Catalog struct {
	names []string
	index map[string]int
}

// NewCatalog builds a catalog from an ordered name list. Duplicate names
// are rejected: two semantically distinct constructs must never collide on
// one key.
func NewCatalog(names []string) (*Catalog, error) {
	index := make(map[string]int, len(names))
	for i, name := range names {
		if _, ok := index[name]; ok {
			return nil, fmt.Errorf("entity: duplicate entity name %q", name)
		}
		index[name] = i
	}
	return &Catalog{names: names, index: index}, nil
}

// NewIRCatalog returns the high-level catalog: opcodes, then type kinds,
// then operand kinds. The layout is fixed by the tables in tables.go.
func NewIRCatalog() *Catalog {
	names := make([]string, 0, len(irOpcodes)+len(irTypeKinds)+len(irOperandKinds))
	names = append(names, irOpcodes...)
	names = append(names, irTypeKinds...)
	names = append(names, irOperandKinds...)
	c, err := NewCatalog(names)
	if err != nil {
		// The fixed tables are disjoint; a collision is a table bug.
		panic(err)
	}
	return c
}

// NewMachineCatalog derives the machine-level catalog from a target layout:
// target opcodes, then register classes plus NoClass, then machine operand
// kinds. The layout's opcode order fixes the entity_id assignment.
func NewMachineCatalog(layout *ir.TargetLayout) (*Catalog, error) {
	if layout == nil || len(layout.Opcodes) == 0 {
		return nil, fmt.Errorf("entity: machine catalog requires a target layout")
	}
	names := make([]string, 0, len(layout.Opcodes)+len(layout.RegisterClasses)+1+len(machineOperandKinds))
	names = append(names, layout.Opcodes...)
	names = append(names, layout.RegisterClasses...)
	names = append(names, machineNoClass)
	names = append(names, machineOperandKinds...)
	return NewCatalog(names)
}

// Lookup returns the entity_id for a canonical key.
func (c *Catalog) Lookup(key string) (int, bool) {
	id, ok := c.index[key]
	return id, ok
}

// Name returns the canonical key at entity_id, or "" if out of range.
func (c *Catalog) Name(id int) string {
	if id < 0 || id >= len(c.names) {
		return ""
	}
	return c.names[id]
}

// Names returns a copy of the full ordered name list.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of entities in the catalog.
func (c *Catalog) Len() int {
	return len(c.names)
}
