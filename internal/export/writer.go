// Package export formats extraction results for downstream training
// pipelines: tab-separated triplet streams, entity mapping tables, and
// embedding listings at each granularity.
package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dusk-indust/irvec/internal/embed"
	"github.com/dusk-indust/irvec/internal/tool"
	"github.com/dusk-indust/irvec/internal/triplet"
)

// WriteTriplets streams a triplet result: a MAX_RELATION header, then one
// head/tail/relation line per triplet in extraction order.
func WriteTriplets(w io.Writer, res triplet.Result) error {
	if _, err := fmt.Fprintf(w, "MAX_RELATION=%d\n", res.MaxRelation); err != nil {
		return err
	}
	for _, t := range res.Triplets {
		if _, err := fmt.Fprintf(w, "%d\t%d\t%d\n", t.Head, t.Tail, t.Relation); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntities streams an entity mapping table: the entity count, then
// one name/id line per entity in catalog order.
func WriteEntities(w io.Writer, names []string) error {
	if _, err := fmt.Fprintf(w, "%d\n", len(names)); err != nil {
		return err
	}
	for id, name := range names {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", name, id); err != nil {
			return err
		}
	}
	return nil
}

// WriteLabeled streams labeled embeddings (block or instruction level) in
// the order given, which the tool guarantees is program layout order.
func WriteLabeled(w io.Writer, list []tool.LabeledEmbedding) error {
	for _, le := range list {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", le.Label, formatVector(le.Vector)); err != nil {
			return err
		}
	}
	return nil
}

// WriteFunctionEmbeddings streams a function embedding map sorted by
// demangled name, so output is stable regardless of map iteration order.
func WriteFunctionEmbeddings(w io.Writer, funcs map[string]tool.FunctionEmbedding) error {
	keys := make([]string, 0, len(funcs))
	for k := range funcs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fe := funcs[k]
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", fe.Demangled, fe.Name, formatVector(fe.Vector)); err != nil {
			return err
		}
	}
	return nil
}

// formatVector renders an embedding as "[ v0 v1 ... ]" with fixed
// precision.
func formatVector(v embed.Embedding) string {
	var sb strings.Builder
	sb.WriteString("[")
	for _, x := range v {
		fmt.Fprintf(&sb, " %.6f", x)
	}
	sb.WriteString(" ]")
	return sb.String()
}
