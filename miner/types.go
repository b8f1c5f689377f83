package miner

import (
	"errors"

	"github.com/katalvlaran/sogra/embed"
	"github.com/katalvlaran/sogra/pattern"
)

var (
	ErrNegativeSupport = errors.New("miner: min support must be >= 0")
	ErrWorker          = errors.New("miner: worker failed")
)

// Config is the mining driver's configuration: a plain struct, not a CLI
// — every field is a structured argument per spec §6.
type Config struct {
	MinSupport           int
	MaxSize              *int
	Parallel             bool
	MaxWorkers           int
	UseEdgeTypePrefilter bool
	UseHeuristics        bool
	// EmbeddingCap bounds full-support recount work; <= 0 means uncapped.
	// A hit cap degrades FullSupport into a conservative undercount —
	// Result.EmbeddingCapHit reports when that happened.
	EmbeddingCap int
}

// Result is one pattern's mining record: created once it first passes the
// support gate, never mutated thereafter.
type Result struct {
	Pattern         pattern.Pattern
	MNISupport      int
	FullSupport     int
	Embeddings      []embed.Embedding
	EmbeddingCapHit bool
}
