package miner

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/sogra/candidate"
	"github.com/katalvlaran/sogra/canon"
	"github.com/katalvlaran/sogra/embed"
	"github.com/katalvlaran/sogra/graphdata"
	"github.com/katalvlaran/sogra/heuristics"
	"github.com/katalvlaran/sogra/pattern"
	"golang.org/x/sync/errgroup"
)

// MiningDriver owns the frontier, the result map and the canonical-key
// dedup set for one Mine call. It holds no state across calls.
type MiningDriver struct {
	g   *graphdata.DataGraph
	cfg Config
}

// New constructs a MiningDriver over g with the given configuration. g is
// shared read-only by every subsequent Mine call, including parallel
// workers; MiningDriver never mutates it.
func New(g *graphdata.DataGraph, cfg Config) *MiningDriver {
	return &MiningDriver{g: g, cfg: cfg}
}

type evalItem struct {
	pattern    pattern.Pattern
	embeddings []embed.Embedding
}

// Mine runs the frontier loop to completion and returns every pattern
// whose MNI support meets MinSupport, keyed by canonical key. ctx is
// checked once per frontier pass, and inside each parallel worker before
// it starts its embedding search; cancellation aborts the run and
// discards the in-flight pass the same way a worker error does.
func (d *MiningDriver) Mine(ctx context.Context) (map[canon.Key]Result, error) {
	if d.cfg.MinSupport < 0 {
		return nil, ErrNegativeSupport
	}

	var heur *heuristics.Heuristics
	if d.cfg.UseHeuristics {
		heur = heuristics.New(d.g)
	}

	var allowed map[graphdata.EdgeType]struct{}
	var frontier []pattern.Pattern
	if d.cfg.UseEdgeTypePrefilter {
		counts := d.g.EdgeTypeCounts()
		allowed = make(map[graphdata.EdgeType]struct{})
		for et, c := range counts {
			if c >= d.cfg.MinSupport {
				allowed[et] = struct{}{}
			}
		}
		frontier = prefilteredSeeds(d.g, allowed, counts)
	} else {
		frontier = candidate.SeedPatterns(d.g)
	}

	results := make(map[canon.Key]Result)

	for len(frontier) > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		evals, err := d.evaluateEmbeddings(ctx, frontier)
		if err != nil {
			return nil, err
		}

		nextSeen := make(map[canon.Key]struct{})
		var next []pattern.Pattern
		for _, ev := range evals {
			p := ev.pattern
			if _, already := results[p.Key]; already {
				continue
			}
			s := embed.MNISupport(ev.embeddings, p.NumVertices())
			if s < d.cfg.MinSupport {
				continue
			}
			full, capHit := embed.FullSupportCount(d.g, p, d.cfg.EmbeddingCap)
			results[p.Key] = Result{
				Pattern:         p,
				MNISupport:      s,
				FullSupport:     full,
				Embeddings:      ev.embeddings,
				EmbeddingCapHit: capHit,
			}

			// max_size bounds the vertex count an accepted extension may
			// reach, not whether extension is attempted at all: a back-edge
			// closure (e.g. the 2-edge path -> triangle step of S1) adds an
			// edge without adding a vertex, so it must still be reachable
			// once p is already at the cap. Only forward (new-vertex)
			// extensions that would exceed the cap are dropped.
			for _, q := range candidate.Extensions(d.g, p, ev.embeddings, heur, allowed) {
				if d.cfg.MaxSize != nil && q.NumVertices() > *d.cfg.MaxSize {
					continue
				}
				if _, already := results[q.Key]; already {
					continue
				}
				if _, dup := nextSeen[q.Key]; dup {
					continue
				}
				nextSeen[q.Key] = struct{}{}
				next = append(next, q)
			}
		}
		frontier = next
	}

	return results, nil
}

// evaluateEmbeddings computes every frontier pattern's full embedding set,
// sequentially or via a bounded errgroup pool. A worker (or ctx
// cancellation) error aborts the whole pass; partial results are never
// returned, keeping each surviving pattern's support computed from its
// complete embedding set (spec §7 "Worker failure").
func (d *MiningDriver) evaluateEmbeddings(ctx context.Context, frontier []pattern.Pattern) ([]evalItem, error) {
	results := make([]evalItem, len(frontier))

	if !d.cfg.Parallel {
		for i, p := range frontier {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			results[i] = evalItem{pattern: p, embeddings: embed.FullMNIEmbeddings(d.g, p)}
		}
		return results, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	if d.cfg.MaxWorkers > 0 {
		eg.SetLimit(d.cfg.MaxWorkers)
	}
	for i, p := range frontier {
		i, p := i, p
		eg.Go(func() error {
			select {
			case <-egCtx.Done():
				return egCtx.Err()
			default:
			}
			results[i] = evalItem{pattern: p, embeddings: embed.FullMNIEmbeddings(d.g, p)}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorker, err)
	}
	return results, nil
}

// prefilteredSeeds builds seed patterns only from allowed edge types,
// ordered by descending occurrence count (spec §4.M pre-filtered mode).
func prefilteredSeeds(g *graphdata.DataGraph, allowed map[graphdata.EdgeType]struct{}, counts map[graphdata.EdgeType]int) []pattern.Pattern {
	types := make([]graphdata.EdgeType, 0, len(allowed))
	for et := range allowed {
		types = append(types, et)
	}
	sort.Slice(types, func(i, j int) bool {
		if counts[types[i]] != counts[types[j]] {
			return counts[types[i]] > counts[types[j]]
		}
		return graphdata.EdgeTypeLess(types[i], types[j])
	})

	seeds := make([]pattern.Pattern, 0, len(types))
	for _, et := range types {
		var label *string
		if et.HasLabel {
			l := et.ELabel
			label = &l
		}
		p, err := pattern.New([]string{et.LU, et.LV}, []graphdata.Edge{{U: 0, V: 1, Label: label}}, g.Directed())
		if err != nil {
			continue
		}
		seeds = append(seeds, p)
	}
	return seeds
}
