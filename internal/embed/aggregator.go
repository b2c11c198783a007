package embed

import (
	"errors"
	"fmt"

	"github.com/dusk-indust/irvec/internal/entity"
	"github.com/dusk-indust/irvec/internal/ir"
)

// Mode selects the aggregation variant.
type Mode string

const (
	// ModeSymbolic aggregates from static instruction shape only. This is
	// the authoritative mode.
	ModeSymbolic Mode = "sym"
	// ModeFlowAware additionally folds predecessor-block vectors into each
	// block's contribution. Reserved: constructing a flow-aware aggregator
	// yields ErrUnsupportedMode so callers can branch on capability.
	ModeFlowAware Mode = "fa"
)

// ErrUnsupportedMode marks an aggregation mode the engine reserves but does
// not implement.
var ErrUnsupportedMode = errors.New("embed: flow-aware mode is not supported")

// Weights are the fixed scaling factors applied to the three terms of an
// instruction vector. They are configuration, not learned parameters, and
// are shared by both representation pipelines: the training-data generator
// and the inference-time aggregator must agree on them exactly.
type Weights struct {
	Opcode float64 `yaml:"opcode" json:"opcode"`
	Type   float64 `yaml:"type" json:"type"`
	Arg    float64 `yaml:"arg" json:"arg"`
}

// DefaultWeights returns the standard weighting.
func DefaultWeights() Weights {
	return Weights{Opcode: 1.0, Type: 0.5, Arg: 0.2}
}

// Lookup is the vocabulary surface the aggregator reads. A miss is an
// expected condition: the caller receives a zero contribution, never an
// error.
type Lookup interface {
	Lookup(key string) (Embedding, bool)
	Dimension() int
}

// Aggregator computes embeddings at instruction, block and function
// granularity via a fixed bottom-up weighted-sum rule. It holds no mutable
// state: every call allocates its result.
type Aggregator struct {
	vocab Lookup
	namer entity.Namer
	w     Weights
	dim   int
}

// NewAggregator builds a symbolic-mode aggregator. ModeFlowAware is
// rejected with ErrUnsupportedMode.
func NewAggregator(vocab Lookup, namer entity.Namer, w Weights, mode Mode) (*Aggregator, error) {
	switch mode {
	case ModeSymbolic:
	case ModeFlowAware:
		return nil, ErrUnsupportedMode
	default:
		return nil, fmt.Errorf("embed: unknown mode %q", mode)
	}
	return &Aggregator{vocab: vocab, namer: namer, w: w, dim: vocab.Dimension()}, nil
}

// Instruction computes one instruction's vector:
//
//	w.Opcode*V[opcode] + w.Type*V[type] + w.Arg*sum(V[operand])
//
// where the operand sum runs over operands that resolve to an entity.
// Entities absent from the vocabulary contribute zero.
func (a *Aggregator) Instruction(inst *ir.Instruction) Embedding {
	out := Zero(a.dim)
	if v, ok := a.vocab.Lookup(a.namer.OpcodeKey(inst)); ok {
		out.AddScaled(v, a.w.Opcode)
	}
	if v, ok := a.vocab.Lookup(a.namer.TypeKey(inst)); ok {
		out.AddScaled(v, a.w.Type)
	}
	for _, op := range inst.Operands {
		key, ok := a.namer.OperandKey(op)
		if !ok {
			continue
		}
		if v, ok := a.vocab.Lookup(key); ok {
			out.AddScaled(v, a.w.Arg)
		}
	}
	return out
}

// Block computes a block's vector as the unweighted sum of its
// instructions' vectors, in program order.
func (a *Aggregator) Block(bb *ir.BasicBlock) Embedding {
	out := Zero(a.dim)
	for i := range bb.Insts {
		out.Add(a.Instruction(&bb.Insts[i]))
	}
	return out
}

// Function computes a function's vector as the unweighted sum of its
// blocks' vectors.
func (a *Aggregator) Function(fn *ir.Function) Embedding {
	out := Zero(a.dim)
	for i := range fn.Blocks {
		out.Add(a.Block(&fn.Blocks[i]))
	}
	return out
}
