// SPDX-License-Identifier: MIT

// Package analysis runs batch analyses over a concept graph: visualization
// listings and walk distributions for many focus concepts, and approximate
// longest-path values for the whole graph and each component.
//
// Batches follow a log-and-skip policy: a focus concept missing from the
// graph is reported at WARN and recorded in Report.Skipped, and the batch
// goes on. Any other error aborts the batch.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/katalvlaran/colexnet/bfs"
	"github.com/katalvlaran/colexnet/config"
	"github.com/katalvlaran/colexnet/core"
	"github.com/katalvlaran/colexnet/export"
	"github.com/katalvlaran/colexnet/internal/logger"
	"github.com/katalvlaran/colexnet/longestpath"
	"github.com/katalvlaran/colexnet/results"
	"github.com/katalvlaran/colexnet/walk"
)

// ErrNoGraph is returned by a Runner without a graph.
var ErrNoGraph = errors.New("analysis: runner has no graph")

// Report lists the focus concepts a batch handled and those it skipped.
type Report struct {
	Processed []string `json:"processed" yaml:"processed"`
	Skipped   []string `json:"skipped" yaml:"skipped"`
}

// LongestPathReport holds the graph-wide proxy and its per-component values.
// MaxDepth is nil when no hop cutoff was applied.
type LongestPathReport struct {
	MaxDepth   *int                          `json:"max_depth,omitempty" yaml:"max_depth,omitempty"`
	Overall    int                           `json:"overall" yaml:"overall"`
	Components []longestpath.ComponentResult `json:"components" yaml:"components"`
}

// Runner binds a graph to its settings and collaborators. RunID tags the
// log lines of every batch the Runner executes.
type Runner struct {
	RunID    string
	Graph    *core.Graph
	Config   config.Config
	Exporter export.Exporter
	Sampler  *walk.Sampler
}

// NewRunner wires a Runner with a FileExporter into cfg.OutputDir and a
// Sampler seeded from cfg.Seed (0 seeds from the clock).
func NewRunner(g *core.Graph, cfg config.Config) *Runner {
	var opts []walk.Option
	if cfg.Seed != 0 {
		opts = append(opts, walk.WithSeed(cfg.Seed))
	}

	return &Runner{
		RunID:  uuid.NewString(),
		Graph:  g,
		Config: cfg,
		Exporter: export.FileExporter{
			Dir:    cfg.OutputDir,
			Format: results.Format(cfg.Format),
		},
		Sampler: walk.NewSampler(opts...),
	}
}

// partition splits focuses into present and missing concepts, logging each
// missing one.
func (r *Runner) partition(focuses []string) (known []string, rep Report) {
	logger.Debug("batch started", "run", r.RunID, "focuses", len(focuses))
	for _, f := range focuses {
		if !r.Graph.HasVertex(f) {
			logger.Warn("unknown focus concept, skipping", "run", r.RunID, "concept", f)
			rep.Skipped = append(rep.Skipped, f)
			continue
		}
		known = append(known, f)
	}
	return known, rep
}

// Visualize builds and exports the view of every focus concept in order.
func (r *Runner) Visualize(ctx context.Context, focuses []string) (Report, error) {
	if r.Graph == nil {
		return Report{}, ErrNoGraph
	}
	known, rep := r.partition(focuses)
	for _, f := range known {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		v, err := export.BuildView(r.Graph, f, r.Config.Separator)
		if errors.Is(err, core.ErrUnknownConcept) {
			logger.Warn("unknown focus concept, skipping", "run", r.RunID, "concept", f)
			rep.Skipped = append(rep.Skipped, f)
			continue
		}
		if err != nil {
			return rep, err
		}
		if err := r.Exporter.Export(ctx, v); err != nil {
			return rep, fmt.Errorf("analysis: export %q: %w", f, err)
		}
		logger.Debug("exported view", "concept", f, "nodes", len(v.Nodes), "edges", len(v.Edges))
		rep.Processed = append(rep.Processed, f)
	}

	return rep, nil
}

// Visitation walks RandomWalkCount times from every focus concept and
// smooths the end-concept counts over the concepts reachable within
// RandomWalkLength-1 hops. Batches run on Config.Workers goroutines.
func (r *Runner) Visitation(ctx context.Context, focuses []string) (map[string]walk.Distribution, Report, error) {
	if r.Graph == nil {
		return nil, Report{}, ErrNoGraph
	}
	known, rep := r.partition(focuses)
	counts, err := r.Sampler.VisitAll(ctx, r.Graph, known,
		r.Config.RandomWalkCount, r.Config.RandomWalkLength, r.Config.Workers)
	if err != nil {
		return nil, rep, err
	}

	out := make(map[string]walk.Distribution, len(known))
	for _, f := range known {
		reach, err := bfs.BFS(r.Graph, f, bfs.WithContext(ctx), bfs.WithMaxDepth(r.Config.RandomWalkLength-1))
		if err != nil {
			return nil, rep, err
		}
		d, err := walk.Smooth(counts[f], reach.Order, r.Config.SmoothingFactor)
		if err != nil {
			return nil, rep, err
		}
		out[f] = d
		rep.Processed = append(rep.Processed, f)
	}

	return out, rep, nil
}

// LongestPaths computes the reachable-node-count proxy for the graph and for
// each connected component. maxDepth < 0 means no cutoff.
func (r *Runner) LongestPaths(ctx context.Context, maxDepth int) (*LongestPathReport, error) {
	if r.Graph == nil {
		return nil, ErrNoGraph
	}
	opts := []longestpath.Option{longestpath.WithWorkers(r.Config.Workers)}
	rep := &LongestPathReport{}
	if maxDepth >= 0 {
		opts = append(opts, longestpath.WithMaxDepth(maxDepth))
		d := maxDepth
		rep.MaxDepth = &d
	}

	comps, err := longestpath.PerComponent(ctx, r.Graph, opts...)
	if err != nil {
		return nil, err
	}
	rep.Components = comps
	for _, c := range comps {
		if c.LongestPath > rep.Overall {
			rep.Overall = c.LongestPath
		}
	}
	logger.Info("longest path proxy", "run", r.RunID, "overall", rep.Overall, "components", len(comps))

	return rep, nil
}

// Persist writes value to Config.ResultsDir/name with the configured
// format's extension and returns the path.
func (r *Runner) Persist(name string, value any) (string, error) {
	f := results.Format(r.Config.Format)
	if f == "" {
		f = results.JSON
	}
	path := filepath.Join(r.Config.ResultsDir, name+f.Ext())
	if err := results.Persist(value, path); err != nil {
		return "", err
	}
	logger.Info("results written", "run", r.RunID, "path", path)

	return path, nil
}
