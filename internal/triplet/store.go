package triplet

import (
	"context"
	"io"

	"github.com/dusk-indust/irvec/internal/entity"
)

// Store is the interface for relation-graph persistence, consumed by
// vocabulary-training pipelines that want the extracted graph queryable
// rather than streamed.
// Implementations: KuzuStore (production), MemStore (testing).
type Store interface {
	io.Closer

	// Schema setup — called once before any data is inserted.
	InitSchema(ctx context.Context) error

	// Write operations.
	AddEntity(ctx context.Context, id int, name string) error
	AddTriplet(ctx context.Context, t Triplet) error

	// Read operations.
	EntityName(ctx context.Context, id int) (string, bool, error)
	CountByRelation(ctx context.Context) (map[int]int, error)
	Neighbors(ctx context.Context, head, relation int) ([]int, error)

	// Stats.
	Stats(ctx context.Context) (*Stats, error)
}

// Stats summarizes a stored relation graph.
type Stats struct {
	EntityCount  int `json:"entityCount"`
	TripletCount int `json:"tripletCount"`
	MaxRelation  int `json:"maxRelation"`
}

// Persist loads one extraction result into a store: every catalog entity
// first, then every triplet. The store's MaxRelation is derived from the
// inserted triplets, so persisting an argument-free result yields the
// ArgRelation floor only on the Result, not in Stats.
func Persist(ctx context.Context, store Store, catalog *entity.Catalog, res Result) error {
	if err := store.InitSchema(ctx); err != nil {
		return err
	}
	for id, name := range catalog.Names() {
		if err := store.AddEntity(ctx, id, name); err != nil {
			return err
		}
	}
	for _, t := range res.Triplets {
		if err := store.AddTriplet(ctx, t); err != nil {
			return err
		}
	}
	return nil
}
