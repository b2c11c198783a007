package mcptools

import (
	"github.com/dusk-indust/irvec/internal/ir"
	"github.com/dusk-indust/irvec/internal/tool"
	"github.com/dusk-indust/irvec/internal/triplet"
)

// --- MCP Tool Input Types ---
// These structs define the JSON schema for each MCP tool's input.
// The MCP Go SDK auto-generates JSON schemas from struct tags.

// LoadModuleInput is the input for the load_module MCP tool.
type LoadModuleInput struct {
	Path      string `json:"path" jsonschema:"path to the YAML module description to load"`
	VocabPath string `json:"vocabPath,omitempty" jsonschema:"path to a JSON vocabulary file; optional for machine modules"`
}

// LoadModuleOutput is the result of the load_module MCP tool.
type LoadModuleOutput struct {
	Module       string            `json:"module"`
	Level        string            `json:"level"`
	Stats        ir.Stats          `json:"stats"`
	Capabilities tool.Capabilities `json:"capabilities"`
}

// ListFunctionsInput is the input for the list_functions MCP tool.
type ListFunctionsInput struct {
	Module string `json:"module" jsonschema:"name of a previously loaded module"`
}

// FunctionInfo describes one function of a loaded module.
type FunctionInfo struct {
	Name          string `json:"name"`
	Demangled     string `json:"demangled"`
	IsDeclaration bool   `json:"isDeclaration"`
}

// ListFunctionsOutput is the result of the list_functions MCP tool.
type ListFunctionsOutput struct {
	Functions []FunctionInfo `json:"functions"`
}

// GenerateTripletsInput is the input for the generate_triplets MCP tool.
type GenerateTripletsInput struct {
	Module   string `json:"module" jsonschema:"name of a previously loaded module"`
	Function string `json:"function,omitempty" jsonschema:"restrict extraction to one function (raw name); whole module when omitted"`
}

// GenerateTripletsOutput is the result of the generate_triplets MCP tool.
type GenerateTripletsOutput struct {
	MaxRelation int               `json:"maxRelation"`
	Skipped     int               `json:"skipped"`
	Triplets    []triplet.Triplet `json:"triplets"`
}

// GenerateEmbeddingsInput is the input for the generate_embeddings MCP tool.
type GenerateEmbeddingsInput struct {
	Module   string `json:"module" jsonschema:"name of a previously loaded module"`
	Function string `json:"function,omitempty" jsonschema:"function to embed (raw name); whole module when omitted"`
	Level    string `json:"level,omitempty" jsonschema:"embedding granularity: inst, bb or func (default: func)"`
}

// NamedVector is one embedding in a generate_embeddings result.
type NamedVector struct {
	Label  string    `json:"label"`
	Vector []float64 `json:"vector"`
}

// GenerateEmbeddingsOutput is the result of the generate_embeddings MCP tool.
type GenerateEmbeddingsOutput struct {
	Level   string        `json:"level"`
	Vectors []NamedVector `json:"vectors"`
}

// GetEntitiesInput is the input for the get_entities MCP tool.
type GetEntitiesInput struct {
	Module string `json:"module" jsonschema:"name of a previously loaded module"`
}

// GetEntitiesOutput is the result of the get_entities MCP tool. Index in
// Entities is the entity_id.
type GetEntitiesOutput struct {
	Entities []string `json:"entities"`
}
