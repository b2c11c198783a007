//go:build cgo

package main

import (
	"context"

	"github.com/dusk-indust/irvec/internal/tool"
	"github.com/dusk-indust/irvec/internal/triplet"
)

// persistGraph loads the extraction result into a file-backed KuzuDB so
// training pipelines can query the relation graph across sessions.
func persistGraph(dbPath string, t *tool.Tool, res triplet.Result) error {
	store, err := triplet.NewKuzuFileStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return triplet.Persist(context.Background(), store, t.Catalog(), res)
}
