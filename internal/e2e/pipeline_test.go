//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/irvec/internal/embed"
	"github.com/dusk-indust/irvec/internal/export"
	"github.com/dusk-indust/irvec/internal/ir"
	"github.com/dusk-indust/irvec/internal/tool"
	"github.com/dusk-indust/irvec/internal/triplet"
)

func fixture(name string) string {
	return filepath.Join("..", "..", "testdata", "fixtures", name)
}

// newReadyIRTool loads the sample IR module and its vocabulary.
func newReadyIRTool(t *testing.T) *tool.Tool {
	t.Helper()

	m, err := ir.LoadModule(fixture("sample_ir.yaml"))
	require.NoError(t, err)

	tl, err := tool.New(m)
	require.NoError(t, err)
	require.NoError(t, tl.InitializeVocabulary(tool.Config{
		VocabPath: fixture("vocab_ir.json"),
	}))
	require.True(t, tl.IsVocabularyValid())
	return tl
}

// TestPipeline_E2E_IR runs the full high-level pipeline over the sample
// fixture: load, extract triplets, aggregate embeddings at all three
// granularities, persist the graph, and export every artifact.
func TestPipeline_E2E_IR(t *testing.T) {
	tl := newReadyIRTool(t)
	outputDir := t.TempDir()

	// --- Triplet extraction ---

	res, err := tl.ModuleTriplets()
	require.NoError(t, err)
	require.NotEmpty(t, res.Triplets)
	assert.Zero(t, res.Skipped)
	assert.GreaterOrEqual(t, res.MaxRelation, triplet.ArgRelation)

	names, err := tl.EntityMappings()
	require.NoError(t, err)
	for _, tr := range res.Triplets {
		assert.Less(t, tr.Head, len(names), "head ids stay within the catalog")
		assert.Less(t, tr.Tail, len(names), "tail ids stay within the catalog")
		assert.LessOrEqual(t, tr.Relation, res.MaxRelation)
	}

	// --- Embeddings: function = sum of blocks = sum of instructions ---

	fe, err := tl.FunctionEmbedding("_Z8checksumPKji")
	require.NoError(t, err)
	assert.Equal(t, "checksum(unsigned int const*, int)", fe.Demangled)
	assert.Equal(t, "checksum", fe.Name)

	blocks, err := tl.BlockEmbeddings("_Z8checksumPKji")
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	blockSum := embed.Zero(len(fe.Vector))
	for _, le := range blocks {
		blockSum.Add(le.Vector)
	}
	assert.True(t, fe.Vector.ApproxEqual(blockSum, 1e-9))

	insts, err := tl.InstructionEmbeddings("_Z8checksumPKji")
	require.NoError(t, err)
	instSum := embed.Zero(len(fe.Vector))
	for _, le := range insts {
		instSum.Add(le.Vector)
	}
	assert.True(t, fe.Vector.ApproxEqual(instSum, 1e-9))

	funcs, err := tl.FunctionEmbeddings(context.Background())
	require.NoError(t, err)
	require.Len(t, funcs, 2, "declarations contribute no vectors")

	// --- Graph persistence ---

	ctx := context.Background()
	store := triplet.NewMemStore()
	require.NoError(t, store.InitSchema(ctx))
	require.NoError(t, triplet.Persist(ctx, store, tl.Catalog(), res))

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(names), stats.EntityCount)
	assert.Equal(t, len(res.Triplets), stats.TripletCount)

	// --- Export artifacts ---

	var triplets, entities, vectors bytes.Buffer
	require.NoError(t, export.WriteTriplets(&triplets, res))
	require.NoError(t, export.WriteEntities(&entities, names))
	require.NoError(t, export.WriteFunctionEmbeddings(&vectors, funcs))

	assert.True(t, strings.HasPrefix(triplets.String(), "MAX_RELATION="))
	assert.Equal(t, len(res.Triplets)+1, strings.Count(triplets.String(), "\n"))
	assert.Equal(t, len(names)+1, strings.Count(entities.String(), "\n"))

	for name, buf := range map[string]*bytes.Buffer{
		"triplets.tsv": &triplets,
		"entities.tsv": &entities,
		"vectors.tsv":  &vectors,
	} {
		path := filepath.Join(outputDir, name)
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

// TestPipeline_E2E_Machine runs the lowered pipeline: layout-only
// initialization, triplet extraction from register-class entities, and the
// capability gate on embedding queries.
func TestPipeline_E2E_Machine(t *testing.T) {
	m, err := ir.LoadModule(fixture("sample_machine.yaml"))
	require.NoError(t, err)
	require.Equal(t, ir.LevelMachine, m.Level)

	tl, err := tool.New(m)
	require.NoError(t, err)
	assert.False(t, tl.Capabilities().Embeddings)

	require.NoError(t, tl.InitializeVocabulary(tool.Config{}))

	res, err := tl.ModuleTriplets()
	require.NoError(t, err)
	assert.NotEmpty(t, res.Triplets)

	names, err := tl.EntityMappings()
	require.NoError(t, err)
	assert.Contains(t, names, "NoClass")

	_, err = tl.FunctionEmbeddings(context.Background())
	assert.ErrorIs(t, err, tool.ErrUnsupported)
}

// TestPipeline_E2E_Deterministic repeats the whole extraction and checks
// bit-identical results.
func TestPipeline_E2E_Deterministic(t *testing.T) {
	first := newReadyIRTool(t)
	second := newReadyIRTool(t)

	resA, err := first.ModuleTriplets()
	require.NoError(t, err)
	resB, err := second.ModuleTriplets()
	require.NoError(t, err)
	assert.Equal(t, resA, resB)

	funcsA, err := first.FunctionEmbeddings(context.Background())
	require.NoError(t, err)
	funcsB, err := second.FunctionEmbeddings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, funcsA, funcsB)
}
