package tool

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dusk-indust/irvec/internal/embed"
	"github.com/dusk-indust/irvec/internal/entity"
	"github.com/dusk-indust/irvec/internal/ir"
	"github.com/dusk-indust/irvec/internal/triplet"
	"github.com/dusk-indust/irvec/internal/vocab"
)

// Query-scoped and lifecycle errors.
var (
	// ErrNotInitialized marks a query against a facade whose vocabulary
	// was never initialized.
	ErrNotInitialized = errors.New("tool: vocabulary not initialized")
	// ErrInitFailed marks a query against a facade whose initialization
	// failed; the original configuration error is wrapped alongside it.
	ErrInitFailed = errors.New("tool: vocabulary initialization failed")
	// ErrFunctionNotFound marks a lookup miss on a function name. It is
	// scoped to the query: the facade stays Ready.
	ErrFunctionNotFound = errors.New("tool: function not found in module")
	// ErrUnsupported marks an operation the pipeline's capability set does
	// not cover, so callers can branch instead of crash.
	ErrUnsupported = errors.New("tool: operation not supported at this representation level")
)

// Config carries everything InitializeVocabulary needs. Passing it
// explicitly (instead of a process-wide vocabulary path) keeps facade
// instances independently configurable.
type Config struct {
	// VocabPath is a JSON vocabulary file to load. Ignored when Vocabulary
	// is set directly.
	VocabPath string
	// Vocabulary overrides file loading, mainly for tests and embedding
	// callers that already hold one.
	Vocabulary vocab.Vocabulary
	// Weights for the aggregation rule. Zero value means DefaultWeights.
	Weights *embed.Weights
	// Mode selects the aggregation variant. Empty means ModeSymbolic.
	Mode embed.Mode
}

// Capabilities describes which query families a pipeline supports.
type Capabilities struct {
	// Embeddings is false for the machine pipeline: its embedding queries
	// return ErrUnsupported while triplet extraction and entity mappings
	// work from the layout-derived catalog alone.
	Embeddings bool
}

type state int

const (
	stateUninitialized state = iota
	stateReady
	stateFailed
)

// Tool composes extraction and aggregation over one module snapshot. The
// module and catalog are immutable for the facade's lifetime, so all query
// methods are safe for concurrent use once InitializeVocabulary has
// returned.
type Tool struct {
	module  *ir.Module
	namer   entity.Namer
	catalog *entity.Catalog
	builder *triplet.Builder
	caps    Capabilities

	mu     sync.RWMutex
	state  state
	cfgErr error
	vocab  vocab.Vocabulary
	agg    *embed.Aggregator
}

// NewIRTool builds the high-level pipeline facade over a module. The
// catalog is the fixed program-independent IR catalog.
func NewIRTool(m *ir.Module) (*Tool, error) {
	if m.Level != ir.LevelIR {
		return nil, fmt.Errorf("tool: module %q is not a high-level module", m.Name)
	}
	namer := entity.IRNamer{}
	catalog := entity.NewIRCatalog()
	return &Tool{
		module:  m,
		namer:   namer,
		catalog: catalog,
		builder: triplet.NewBuilder(namer, catalog),
		caps:    Capabilities{Embeddings: true},
	}, nil
}

// NewMachineTool builds the lowered pipeline facade over a machine module.
// The catalog derives from the module's target layout. Embedding queries
// are not supported at this level.
func NewMachineTool(m *ir.Module) (*Tool, error) {
	if m.Level != ir.LevelMachine {
		return nil, fmt.Errorf("tool: module %q is not a machine module", m.Name)
	}
	namer := entity.MachineNamer{}
	catalog, err := entity.NewMachineCatalog(m.Target)
	if err != nil {
		return nil, err
	}
	return &Tool{
		module:  m,
		namer:   namer,
		catalog: catalog,
		builder: triplet.NewBuilder(namer, catalog),
		caps:    Capabilities{Embeddings: false},
	}, nil
}

// New dispatches on the module's level.
func New(m *ir.Module) (*Tool, error) {
	if m.Level == ir.LevelMachine {
		return NewMachineTool(m)
	}
	return NewIRTool(m)
}

// Capabilities returns the pipeline's capability set.
func (t *Tool) Capabilities() Capabilities {
	return t.caps
}

// Module returns the module snapshot the facade walks.
func (t *Tool) Module() *ir.Module {
	return t.module
}

// Catalog returns the entity catalog backing the facade.
func (t *Tool) Catalog() *entity.Catalog {
	return t.catalog
}

// InitializeVocabulary moves the facade from Uninitialized to Ready, or to
// Failed when the vocabulary is missing, malformed, or incompatible with
// the entity catalog. A Failed facade stays failed: every later query
// reports the recorded configuration error.
//
// For pipelines without embedding support the vocabulary is optional; the
// layout-derived catalog alone is enough for triplet extraction and entity
// mappings.
func (t *Tool) InitializeVocabulary(cfg Config) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	fail := func(err error) error {
		t.state = stateFailed
		t.cfgErr = err
		return err
	}

	v := cfg.Vocabulary
	if v == nil && cfg.VocabPath != "" {
		loaded, err := vocab.LoadFile(cfg.VocabPath)
		if err != nil {
			return fail(err)
		}
		v = loaded
	}

	if v == nil {
		if t.caps.Embeddings {
			return fail(fmt.Errorf("tool: %w", vocab.ErrEmpty))
		}
		// Layout-only initialization: catalog is ready, no vectors.
		t.state = stateReady
		t.cfgErr = nil
		t.vocab = nil
		t.agg = nil
		return nil
	}

	if err := vocab.Validate(v, t.catalog.Len()); err != nil {
		return fail(err)
	}

	if t.caps.Embeddings {
		w := embed.DefaultWeights()
		if cfg.Weights != nil {
			w = *cfg.Weights
		}
		mode := cfg.Mode
		if mode == "" {
			mode = embed.ModeSymbolic
		}
		agg, err := embed.NewAggregator(v, t.namer, w, mode)
		if err != nil {
			return fail(err)
		}
		t.agg = agg
	}

	t.vocab = v
	t.state = stateReady
	t.cfgErr = nil
	return nil
}

// IsVocabularyValid is a pure read usable at any state: it reports whether
// the facade is Ready with a usable vocabulary (or, for layout-only
// pipelines, Ready at all).
func (t *Tool) IsVocabularyValid() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.state != stateReady {
		return false
	}
	if t.vocab != nil {
		return t.vocab.IsValid()
	}
	return !t.caps.Embeddings
}

// ready gates every query: Uninitialized and Failed facades fail fast
// instead of returning empty data.
func (t *Tool) ready() error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	switch t.state {
	case stateReady:
		return nil
	case stateFailed:
		return fmt.Errorf("%w: %w", ErrInitFailed, t.cfgErr)
	default:
		return ErrNotInitialized
	}
}

// function resolves a raw function name or reports a lookup miss.
func (t *Tool) function(name string) (*ir.Function, error) {
	fn := t.module.FindFunction(name)
	if fn == nil {
		return nil, fmt.Errorf("%w: %q", ErrFunctionNotFound, name)
	}
	return fn, nil
}

// ---------- Triplet queries ----------

// Triplets extracts the relation graph for a single function.
func (t *Tool) Triplets(fnName string) (triplet.Result, error) {
	if err := t.ready(); err != nil {
		return triplet.Result{}, err
	}
	fn, err := t.function(fnName)
	if err != nil {
		return triplet.Result{}, err
	}
	return t.builder.Function(fn), nil
}

// ModuleTriplets extracts the relation graph for the whole module, in
// function declaration order.
func (t *Tool) ModuleTriplets() (triplet.Result, error) {
	if err := t.ready(); err != nil {
		return triplet.Result{}, err
	}
	return t.builder.Module(t.module), nil
}

// ---------- Entity queries ----------

// EntityMappings returns the ordered entity-name list; index is entity_id.
func (t *Tool) EntityMappings() ([]string, error) {
	if err := t.ready(); err != nil {
		return nil, err
	}
	return t.catalog.Names(), nil
}
