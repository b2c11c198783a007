package mcptools

import (
	"context"
	"fmt"
	"sync"

	"github.com/ianlancetaylor/demangle"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dusk-indust/irvec/internal/ir"
	"github.com/dusk-indust/irvec/internal/tool"
)

// VecService holds the loaded module facades used by MCP tool handlers.
// Modules are registered by load_module and addressed by name afterwards.
type VecService struct {
	mu    sync.RWMutex
	tools map[string]*tool.Tool
}

// NewVecService creates an empty VecService.
func NewVecService() *VecService {
	return &VecService{tools: make(map[string]*tool.Tool)}
}

// lookup returns the facade registered under the module name.
func (s *VecService) lookup(module string) (*tool.Tool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tools[module]
	if !ok {
		return nil, fmt.Errorf("module %q is not loaded", module)
	}
	return t, nil
}

// LoadModule reads a module description, builds the level-appropriate
// facade, initializes its vocabulary, and registers it under the module
// name. Reloading the same name replaces the previous facade.
func (s *VecService) LoadModule(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input LoadModuleInput,
) (*mcp.CallToolResult, LoadModuleOutput, error) {
	if input.Path == "" {
		return nil, LoadModuleOutput{}, fmt.Errorf("path is required")
	}

	m, err := ir.LoadModule(input.Path)
	if err != nil {
		return nil, LoadModuleOutput{}, err
	}

	t, err := tool.New(m)
	if err != nil {
		return nil, LoadModuleOutput{}, err
	}
	if err := t.InitializeVocabulary(tool.Config{VocabPath: input.VocabPath}); err != nil {
		return nil, LoadModuleOutput{}, fmt.Errorf("initialize vocabulary: %w", err)
	}

	s.mu.Lock()
	s.tools[m.Name] = t
	s.mu.Unlock()

	return nil, LoadModuleOutput{
		Module:       m.Name,
		Level:        string(m.Level),
		Stats:        m.ComputeStats(),
		Capabilities: t.Capabilities(),
	}, nil
}

// ListFunctions returns every function of a loaded module in declaration
// order.
func (s *VecService) ListFunctions(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListFunctionsInput,
) (*mcp.CallToolResult, ListFunctionsOutput, error) {
	t, err := s.lookup(input.Module)
	if err != nil {
		return nil, ListFunctionsOutput{}, err
	}

	m := t.Module()
	out := ListFunctionsOutput{Functions: make([]FunctionInfo, 0, len(m.Functions))}
	for i := range m.Functions {
		f := &m.Functions[i]
		out.Functions = append(out.Functions, FunctionInfo{
			Name:          f.Name,
			Demangled:     demangle.Filter(f.Name),
			IsDeclaration: f.IsDeclaration(),
		})
	}
	return nil, out, nil
}

// GenerateTriplets extracts the relation graph for one function or the
// whole module.
func (s *VecService) GenerateTriplets(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GenerateTripletsInput,
) (*mcp.CallToolResult, GenerateTripletsOutput, error) {
	t, err := s.lookup(input.Module)
	if err != nil {
		return nil, GenerateTripletsOutput{}, err
	}

	res, err := extractTriplets(t, input.Function)
	if err != nil {
		return nil, GenerateTripletsOutput{}, err
	}
	return nil, GenerateTripletsOutput{
		MaxRelation: res.MaxRelation,
		Skipped:     res.Skipped,
		Triplets:    res.Triplets,
	}, nil
}

// GenerateEmbeddings computes embeddings at the requested granularity.
func (s *VecService) GenerateEmbeddings(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateEmbeddingsInput,
) (*mcp.CallToolResult, GenerateEmbeddingsOutput, error) {
	t, err := s.lookup(input.Module)
	if err != nil {
		return nil, GenerateEmbeddingsOutput{}, err
	}

	level := input.Level
	if level == "" {
		level = "func"
	}

	out := GenerateEmbeddingsOutput{Level: level}
	switch level {
	case "inst":
		list, err := labeledEmbeddings(t.InstructionEmbeddings, t.ModuleInstructionEmbeddings, input.Function)
		if err != nil {
			return nil, GenerateEmbeddingsOutput{}, err
		}
		for _, le := range list {
			out.Vectors = append(out.Vectors, NamedVector{Label: le.Label, Vector: le.Vector})
		}
	case "bb":
		list, err := labeledEmbeddings(t.BlockEmbeddings, t.ModuleBlockEmbeddings, input.Function)
		if err != nil {
			return nil, GenerateEmbeddingsOutput{}, err
		}
		for _, le := range list {
			out.Vectors = append(out.Vectors, NamedVector{Label: le.Label, Vector: le.Vector})
		}
	case "func":
		if input.Function != "" {
			fe, err := t.FunctionEmbedding(input.Function)
			if err != nil {
				return nil, GenerateEmbeddingsOutput{}, err
			}
			out.Vectors = append(out.Vectors, NamedVector{Label: fe.Demangled, Vector: fe.Vector})
			break
		}
		funcs, err := t.FunctionEmbeddings(ctx)
		if err != nil {
			return nil, GenerateEmbeddingsOutput{}, err
		}
		for _, name := range sortedKeys(funcs) {
			fe := funcs[name]
			out.Vectors = append(out.Vectors, NamedVector{Label: fe.Demangled, Vector: fe.Vector})
		}
	default:
		return nil, GenerateEmbeddingsOutput{}, fmt.Errorf("unknown level %q (want inst, bb or func)", level)
	}
	return nil, out, nil
}

// GetEntities returns the module's entity catalog in entity_id order.
func (s *VecService) GetEntities(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GetEntitiesInput,
) (*mcp.CallToolResult, GetEntitiesOutput, error) {
	t, err := s.lookup(input.Module)
	if err != nil {
		return nil, GetEntitiesOutput{}, err
	}
	names, err := t.EntityMappings()
	if err != nil {
		return nil, GetEntitiesOutput{}, err
	}
	return nil, GetEntitiesOutput{Entities: names}, nil
}
