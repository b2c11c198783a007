package embed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/irvec/internal/entity"
	"github.com/dusk-indust/irvec/internal/ir"
)

// mapLookup is a minimal vocabulary for aggregator tests.
type mapLookup struct {
	dim     int
	entries map[string]Embedding
}

func (m mapLookup) Lookup(key string) (Embedding, bool) {
	e, ok := m.entries[key]
	return e, ok
}

func (m mapLookup) Dimension() int { return m.dim }

func testVocab() mapLookup {
	return mapLookup{
		dim: 2,
		entries: map[string]Embedding{
			"Add":       {1, 0},
			"Ret":       {0, 1},
			"IntegerTy": {2, 2},
			"VoidTy":    {4, 4},
			"Variable":  {10, 10},
			"Pointer":   {20, 20},
		},
	}
}

func newTestAggregator(t *testing.T) *Aggregator {
	t.Helper()
	a, err := NewAggregator(testVocab(), entity.IRNamer{}, DefaultWeights(), ModeSymbolic)
	require.NoError(t, err)
	return a
}

func TestNewAggregator_FlowAwareUnsupported(t *testing.T) {
	_, err := NewAggregator(testVocab(), entity.IRNamer{}, DefaultWeights(), ModeFlowAware)
	assert.ErrorIs(t, err, ErrUnsupportedMode)
}

func TestNewAggregator_UnknownMode(t *testing.T) {
	_, err := NewAggregator(testVocab(), entity.IRNamer{}, DefaultWeights(), Mode("turbo"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedMode)
}

func TestInstruction_WeightedSum(t *testing.T) {
	a := newTestAggregator(t)

	inst := &ir.Instruction{
		Opcode: "Add",
		Type:   "IntegerTy",
		Operands: []ir.Operand{
			{Kind: ir.OperandVariable, Name: "%a"},
			{Kind: ir.OperandPointer, Name: "%p"},
		},
	}

	// 1.0*[1,0] + 0.5*[2,2] + 0.2*([10,10]+[20,20])
	got := a.Instruction(inst)
	want := Embedding{1 + 1 + 6, 0 + 1 + 6}
	assert.True(t, got.ApproxEqual(want, 1e-12), "got %v want %v", got, want)
}

func TestInstruction_UnknownOpcodeContributesZero(t *testing.T) {
	a := newTestAggregator(t)

	inst := &ir.Instruction{Opcode: "SomethingNew", Type: "IntegerTy"}
	got := a.Instruction(inst)
	// Only the type term survives: 0.5*[2,2].
	assert.Equal(t, Embedding{1, 1}, got)
}

func TestInstruction_UnresolvableOperandsSkipped(t *testing.T) {
	a := newTestAggregator(t)

	// A call whose only operand is an external symbol still yields a
	// well-formed vector.
	inst := &ir.Instruction{
		Opcode:   "Ret",
		Type:     "VoidTy",
		Operands: []ir.Operand{{Kind: ir.OperandFunction, Name: "@ext"}},
	}
	got := a.Instruction(inst)
	want := Embedding{0 + 2, 1 + 2} // 1.0*[0,1] + 0.5*[4,4]
	assert.Equal(t, want, got)
}

func TestBlock_SumOfInstructions(t *testing.T) {
	a := newTestAggregator(t)

	bb := &ir.BasicBlock{
		Name: "entry",
		Insts: []ir.Instruction{
			{Opcode: "Add", Type: "IntegerTy"},
			{Opcode: "Ret", Type: "VoidTy"},
		},
	}

	want := Zero(2)
	for i := range bb.Insts {
		want.Add(a.Instruction(&bb.Insts[i]))
	}
	assert.Equal(t, want, a.Block(bb))
}

func TestFunction_SumOfBlocks(t *testing.T) {
	a := newTestAggregator(t)

	fn := &ir.Function{
		Name: "f",
		Blocks: []ir.BasicBlock{
			{Name: "entry", Insts: []ir.Instruction{{Opcode: "Add", Type: "IntegerTy"}}},
			{Name: "exit", Insts: []ir.Instruction{{Opcode: "Ret", Type: "VoidTy"}}},
		},
	}

	want := Zero(2)
	for i := range fn.Blocks {
		want.Add(a.Block(&fn.Blocks[i]))
	}
	assert.Equal(t, want, a.Function(fn))
}

func TestAggregator_Deterministic(t *testing.T) {
	a := newTestAggregator(t)

	fn := &ir.Function{
		Name: "f",
		Blocks: []ir.BasicBlock{
			{Name: "entry", Insts: []ir.Instruction{
				{Opcode: "Add", Type: "IntegerTy", Operands: []ir.Operand{{Kind: ir.OperandVariable}}},
				{Opcode: "Ret", Type: "VoidTy"},
			}},
		},
	}

	first := a.Function(fn)
	second := a.Function(fn)
	assert.True(t, first.Equal(second), "repeat aggregation must be bit-identical")
}
