package pattern

import (
	"errors"

	"github.com/katalvlaran/sogra/canon"
	"github.com/katalvlaran/sogra/graphdata"
)

var (
	ErrNoVertices     = errors.New("pattern: no vertex labels")
	ErrNodeOutOfRange = errors.New("pattern: edge endpoint out of range")
)

// Pattern is a small vertex- and edge-labeled graph plus its cached
// canonical key. Once constructed a Pattern is immutable; extending it
// produces a new Pattern (see New).
type Pattern struct {
	Directed bool
	VLabels  []string
	Edges    []graphdata.Edge
	Key      canon.Key
}
