package triplet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/irvec/internal/entity"
)

func TestMemStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	require.NoError(t, store.InitSchema(ctx))

	require.NoError(t, store.AddEntity(ctx, 0, "Add"))
	require.NoError(t, store.AddEntity(ctx, 1, "IntegerTy"))

	name, ok, err := store.EntityName(ctx, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Add", name)

	_, ok, err = store.EntityName(ctx, 7)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemStore_TripletsAndStats(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	triplets := []Triplet{
		{Head: 0, Tail: 1, Relation: TypeRelation},
		{Head: 0, Tail: 2, Relation: NextRelation},
		{Head: 0, Tail: 3, Relation: ArgRelation},
		{Head: 0, Tail: 4, Relation: ArgRelation + 1},
	}
	for _, tr := range triplets {
		require.NoError(t, store.AddTriplet(ctx, tr))
	}

	counts, err := store.CountByRelation(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{
		TypeRelation:    1,
		NextRelation:    1,
		ArgRelation:     1,
		ArgRelation + 1: 1,
	}, counts)

	neighbors, err := store.Neighbors(ctx, 0, ArgRelation)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, neighbors)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Stats{EntityCount: 0, TripletCount: 4, MaxRelation: ArgRelation + 1}, stats)
}

func TestPersist(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	catalog := entity.NewIRCatalog()

	b := NewBuilder(entity.IRNamer{}, catalog)
	res := b.Function(straightLine("Add", "Mul", "Ret"))

	require.NoError(t, Persist(ctx, store, catalog, res))

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.Len(), stats.EntityCount)
	assert.Equal(t, len(res.Triplets), stats.TripletCount)
}
