package vocab

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/dusk-indust/irvec/internal/embed"
)

// Vocabulary maps canonical entity keys to fixed-dimension vectors. A
// loaded vocabulary is immutable; all vectors share one dimension for its
// lifetime.
type Vocabulary interface {
	// Lookup returns the vector for an entity key, or ok=false when the
	// key is unknown to the vocabulary.
	Lookup(key string) (embed.Embedding, bool)

	// Dimension returns the shared vector dimension.
	Dimension() int

	// IsValid reports whether the vocabulary is non-empty with a positive
	// dimension.
	IsValid() bool

	// CanonicalSize returns the entity count the vocabulary was trained
	// against.
	CanonicalSize() int
}

// Validation failure classes. Each is a configuration error: terminal for
// the facade instance that hit it.
var (
	ErrEmpty             = errors.New("vocab: vocabulary is empty")
	ErrDimensionMismatch = errors.New("vocab: vectors do not share one dimension")
	ErrSizeMismatch      = errors.New("vocab: canonical size does not match entity catalog")
)

// Compile-time interface check.
var _ Vocabulary = (*MapVocabulary)(nil)

// MapVocabulary is an in-memory Vocabulary backed by a map.
type MapVocabulary struct {
	entries map[string]embed.Embedding
	dim     int
}

// New builds a MapVocabulary, verifying that all vectors share one
// positive dimension.
func New(entries map[string]embed.Embedding) (*MapVocabulary, error) {
	if len(entries) == 0 {
		return nil, ErrEmpty
	}
	dim := -1
	for key, vec := range entries {
		if dim < 0 {
			dim = len(vec)
		}
		if len(vec) != dim || dim == 0 {
			return nil, fmt.Errorf("%w: entity %q has dimension %d, want %d",
				ErrDimensionMismatch, key, len(vec), dim)
		}
	}
	return &MapVocabulary{entries: entries, dim: dim}, nil
}

// LoadFile reads a vocabulary from a JSON file mapping entity keys to
// float arrays.
func LoadFile(path string) (*MapVocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: read vocabulary: %w", err)
	}
	var raw map[string][]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("vocab: decode vocabulary: %w", err)
	}
	entries := make(map[string]embed.Embedding, len(raw))
	for key, vec := range raw {
		entries[key] = embed.Embedding(vec)
	}
	return New(entries)
}

// Lookup returns the vector for key. The returned slice is shared with the
// vocabulary; callers must not mutate it.
func (v *MapVocabulary) Lookup(key string) (embed.Embedding, bool) {
	e, ok := v.entries[key]
	return e, ok
}

// Dimension returns the shared vector dimension.
func (v *MapVocabulary) Dimension() int { return v.dim }

// IsValid reports whether the vocabulary is usable.
func (v *MapVocabulary) IsValid() bool {
	return len(v.entries) > 0 && v.dim > 0
}

// CanonicalSize returns the number of entities in the vocabulary.
func (v *MapVocabulary) CanonicalSize() int { return len(v.entries) }

// Keys returns the vocabulary's entity keys in sorted order.
func (v *MapVocabulary) Keys() []string {
	keys := make([]string, 0, len(v.entries))
	for k := range v.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks a vocabulary against the entity catalog it must back:
// valid per IsValid, and trained against exactly canonicalLen entities.
func Validate(v Vocabulary, canonicalLen int) error {
	if v == nil || !v.IsValid() {
		return ErrEmpty
	}
	if v.CanonicalSize() != canonicalLen {
		return fmt.Errorf("%w: vocabulary has %d entities, catalog has %d",
			ErrSizeMismatch, v.CanonicalSize(), canonicalLen)
	}
	return nil
}
