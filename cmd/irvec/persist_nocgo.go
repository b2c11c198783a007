//go:build !cgo

package main

import (
	"fmt"

	"github.com/dusk-indust/irvec/internal/tool"
	"github.com/dusk-indust/irvec/internal/triplet"
)

// persistGraph requires the KuzuDB backend, which is CGO-only.
func persistGraph(string, *tool.Tool, triplet.Result) error {
	return fmt.Errorf("graph persistence requires a build with CGO enabled")
}
