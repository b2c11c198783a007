package mcptools

import (
	"sort"

	"github.com/dusk-indust/irvec/internal/tool"
	"github.com/dusk-indust/irvec/internal/triplet"
)

// extractTriplets dispatches between single-function and whole-module
// extraction.
func extractTriplets(t *tool.Tool, function string) (triplet.Result, error) {
	if function != "" {
		return t.Triplets(function)
	}
	return t.ModuleTriplets()
}

// labeledEmbeddings dispatches between the single-function and whole-module
// variants of a labeled embedding query.
func labeledEmbeddings(
	perFunction func(string) ([]tool.LabeledEmbedding, error),
	wholeModule func() ([]tool.LabeledEmbedding, error),
	function string,
) ([]tool.LabeledEmbedding, error) {
	if function != "" {
		return perFunction(function)
	}
	return wholeModule()
}

// sortedKeys returns map keys in sorted order for stable tool output.
func sortedKeys(m map[string]tool.FunctionEmbedding) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
