package triplet

import (
	"github.com/dusk-indust/irvec/internal/entity"
	"github.com/dusk-indust/irvec/internal/ir"
)

// Relation kinds, fixed enumeration. Argument relations are open-ended:
// the relation value for an operand at position k is ArgRelation + k, so
// that position 0 and position 1 arguments are distinguishable kinds.
const (
	TypeRelation = 0
	NextRelation = 1
	ArgRelation  = 2
)

// Triplet is one directed, typed edge in the relation graph: head and tail
// are entity_ids into the catalog the builder was constructed with.
type Triplet struct {
	Head     int `json:"head"`
	Tail     int `json:"tail"`
	Relation int `json:"relation"`
}

// Result is the outcome of one extraction. MaxRelation is the highest
// relation value that occurred, floored at ArgRelation so trainers sizing a
// relation-embedding table get a stable lower bound even when no argument
// triplets were emitted. Skipped counts instructions whose opcode had no
// catalog entry; these are expected for representation versions newer than
// the catalog and are dropped, not errors.
type Result struct {
	MaxRelation int       `json:"maxRelation"`
	Triplets    []Triplet `json:"triplets"`
	Skipped     int       `json:"skipped"`
}

// Builder extracts relation triplets from functions against one namer and
// catalog pair. It is stateless across calls; every extraction allocates a
// fresh Result.
type Builder struct {
	namer   entity.Namer
	catalog *entity.Catalog
}

// NewBuilder returns a Builder over the given namer and catalog.
func NewBuilder(namer entity.Namer, catalog *entity.Catalog) *Builder {
	return &Builder{namer: namer, catalog: catalog}
}

// Function extracts triplets from one function. Per instruction, in
// program order:
//
//   - a TypeRelation edge from the instruction's entity to its result
//     type's entity;
//   - a NextRelation edge to the entity of the instruction that follows it
//     in the same block (none for the block's last instruction: no
//     wraparound, no cross-block edge);
//   - an ArgRelation+k edge per resolvable operand at position k.
//
// Instructions whose opcode is absent from the catalog are skipped and
// counted; the next chain links across them.
func (b *Builder) Function(fn *ir.Function) Result {
	res := Result{MaxRelation: ArgRelation}
	if fn.IsDeclaration() {
		return res
	}

	for bi := range fn.Blocks {
		bb := &fn.Blocks[bi]
		prev := -1 // last resolvable opcode entity in this block

		for ii := range bb.Insts {
			inst := &bb.Insts[ii]
			opcodeID, ok := b.catalog.Lookup(b.namer.OpcodeKey(inst))
			if !ok {
				res.Skipped++
				continue
			}

			if prev >= 0 {
				res.Triplets = append(res.Triplets, Triplet{Head: prev, Tail: opcodeID, Relation: NextRelation})
			}

			if typeID, ok := b.catalog.Lookup(b.namer.TypeKey(inst)); ok {
				res.Triplets = append(res.Triplets, Triplet{Head: opcodeID, Tail: typeID, Relation: TypeRelation})
			}

			for pos, op := range inst.Operands {
				key, ok := b.namer.OperandKey(op)
				if !ok {
					continue
				}
				operandID, ok := b.catalog.Lookup(key)
				if !ok {
					continue
				}
				rel := ArgRelation + pos
				res.Triplets = append(res.Triplets, Triplet{Head: opcodeID, Tail: operandID, Relation: rel})
				if rel > res.MaxRelation {
					res.MaxRelation = rel
				}
			}

			prev = opcodeID
		}
	}
	return res
}

// Module extracts triplets for every function, concatenated in function
// declaration order. MaxRelation is the maximum over all functions.
func (b *Builder) Module(m *ir.Module) Result {
	res := Result{MaxRelation: ArgRelation}
	for i := range m.Functions {
		fr := b.Function(&m.Functions[i])
		if fr.MaxRelation > res.MaxRelation {
			res.MaxRelation = fr.MaxRelation
		}
		res.Triplets = append(res.Triplets, fr.Triplets...)
		res.Skipped += fr.Skipped
	}
	return res
}
