package tool

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dusk-indust/irvec/internal/embed"
	"github.com/dusk-indust/irvec/internal/ir"
)

// FunctionEmbedding pairs a function's display names with its vector.
type FunctionEmbedding struct {
	// Demangled is the human-readable display name.
	Demangled string `json:"demangled"`
	// Name is the base function name (no parameters or template
	// arguments); falls back to the raw symbol when demangling fails.
	Name string `json:"name"`
	// Vector is the function-level embedding.
	Vector embed.Embedding `json:"vector"`
}

// LabeledEmbedding pairs a display label (block label or instruction
// textual form) with a vector. Order follows program layout order.
type LabeledEmbedding struct {
	Label  string          `json:"label"`
	Vector embed.Embedding `json:"vector"`
}

// embeddingsReady gates the embedding query family: the facade must be
// Ready and the pipeline must support embeddings at all.
func (t *Tool) embeddingsReady() error {
	if err := t.ready(); err != nil {
		return err
	}
	if !t.caps.Embeddings {
		return fmt.Errorf("%w: embeddings", ErrUnsupported)
	}
	return nil
}

// FunctionEmbedding computes the function-level vector for one function.
// Declarations yield a zero vector at the vocabulary dimension.
func (t *Tool) FunctionEmbedding(fnName string) (FunctionEmbedding, error) {
	if err := t.embeddingsReady(); err != nil {
		return FunctionEmbedding{}, err
	}
	fn, err := t.function(fnName)
	if err != nil {
		return FunctionEmbedding{}, err
	}
	return FunctionEmbedding{
		Demangled: demangledName(fn.Name),
		Name:      baseName(fn.Name),
		Vector:    t.agg.Function(fn),
	}, nil
}

// FunctionEmbeddings computes function-level vectors for every defined
// function in the module, keyed by demangled display name. When two
// functions demangle to the same display name the later one in module
// order wins; this last-write-wins policy is deliberate, not an error.
//
// Per-function work fans out across goroutines; results are reassembled in
// module order so repeated calls are bit-identical.
func (t *Tool) FunctionEmbeddings(ctx context.Context) (map[string]FunctionEmbedding, error) {
	if err := t.embeddingsReady(); err != nil {
		return nil, err
	}

	results := make([]*FunctionEmbedding, len(t.module.Functions))
	g, _ := errgroup.WithContext(ctx)

	for i := range t.module.Functions {
		fn := &t.module.Functions[i]
		if fn.IsDeclaration() {
			continue
		}
		g.Go(func() error {
			results[i] = &FunctionEmbedding{
				Demangled: demangledName(fn.Name),
				Name:      baseName(fn.Name),
				Vector:    t.agg.Function(fn),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]FunctionEmbedding)
	for _, r := range results {
		if r != nil {
			out[r.Demangled] = *r
		}
	}
	return out, nil
}

// BlockEmbeddings computes block-level vectors for one function, labeled
// by block name, in program order.
func (t *Tool) BlockEmbeddings(fnName string) ([]LabeledEmbedding, error) {
	if err := t.embeddingsReady(); err != nil {
		return nil, err
	}
	fn, err := t.function(fnName)
	if err != nil {
		return nil, err
	}
	return t.blockEmbeddings(fn), nil
}

// ModuleBlockEmbeddings computes block-level vectors for every defined
// function, concatenated in module order. Declarations contribute nothing.
func (t *Tool) ModuleBlockEmbeddings() ([]LabeledEmbedding, error) {
	if err := t.embeddingsReady(); err != nil {
		return nil, err
	}
	var out []LabeledEmbedding
	for i := range t.module.Functions {
		fn := &t.module.Functions[i]
		if fn.IsDeclaration() {
			continue
		}
		out = append(out, t.blockEmbeddings(fn)...)
	}
	return out, nil
}

// InstructionEmbeddings computes instruction-level vectors for one
// function, labeled by each instruction's textual form, in program order.
func (t *Tool) InstructionEmbeddings(fnName string) ([]LabeledEmbedding, error) {
	if err := t.embeddingsReady(); err != nil {
		return nil, err
	}
	fn, err := t.function(fnName)
	if err != nil {
		return nil, err
	}
	return t.instructionEmbeddings(fn), nil
}

// ModuleInstructionEmbeddings computes instruction-level vectors for every
// defined function, concatenated in module order.
func (t *Tool) ModuleInstructionEmbeddings() ([]LabeledEmbedding, error) {
	if err := t.embeddingsReady(); err != nil {
		return nil, err
	}
	var out []LabeledEmbedding
	for i := range t.module.Functions {
		fn := &t.module.Functions[i]
		if fn.IsDeclaration() {
			continue
		}
		out = append(out, t.instructionEmbeddings(fn)...)
	}
	return out, nil
}

func (t *Tool) blockEmbeddings(fn *ir.Function) []LabeledEmbedding {
	out := make([]LabeledEmbedding, 0, len(fn.Blocks))
	for i := range fn.Blocks {
		bb := &fn.Blocks[i]
		out = append(out, LabeledEmbedding{
			Label:  bb.Name,
			Vector: t.agg.Block(bb),
		})
	}
	return out
}

func (t *Tool) instructionEmbeddings(fn *ir.Function) []LabeledEmbedding {
	var out []LabeledEmbedding
	for i := range fn.Blocks {
		bb := &fn.Blocks[i]
		for j := range bb.Insts {
			inst := &bb.Insts[j]
			out = append(out, LabeledEmbedding{
				Label:  inst.Label(),
				Vector: t.agg.Instruction(inst),
			})
		}
	}
	return out
}
