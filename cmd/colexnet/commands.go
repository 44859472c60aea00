// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/colexnet/config"
	"github.com/katalvlaran/colexnet/core"
	"github.com/katalvlaran/colexnet/ingest"
	"github.com/katalvlaran/colexnet/results"
)

// bind maps viper keys to the named flags. Unset flags fall through to the
// environment, the config file and the defaults.
func bind(v *viper.Viper, lookup func(string) *pflag.Flag, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

func newVisualizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "visualize FOCUS...",
		Short: "Export the neighborhood listing of each focus concept",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.runner()
			if err != nil {
				return err
			}
			rep, err := r.Visualize(cmd.Context(), args)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d, skipped %d\n", len(rep.Processed), len(rep.Skipped))
			return nil
		},
	}
}

func newWalkCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk [FOCUS...]",
		Short: "Sample random walks and persist smoothed visitation distributions",
		Long:  "Without focus concepts every concept of the graph is a start.",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.runner()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = r.Graph.Vertices()
			}
			dists, rep, err := r.Visitation(cmd.Context(), args)
			if err != nil {
				return err
			}
			path, err := r.Persist("visitation", dists)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d distributions, skipped %d -> %s\n", len(dists), len(rep.Skipped), path)
			return nil
		},
	}
	f := cmd.Flags()
	f.Int("count", 0, "walks per start concept")
	f.Int("length", 0, "concepts per walk, start included")
	f.Float64("smoothing", 0, "uniform smoothing factor in [0,1]")
	bind(a.v, f.Lookup, map[string]string{
		config.KeyRandomWalkCount:  "count",
		config.KeyRandomWalkLength: "length",
		config.KeySmoothingFactor:  "smoothing",
	})

	return cmd
}

func newDiameterCmd(a *app) *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "diameter",
		Short: "Approximate the longest path by the largest reachable-concept count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.runner()
			if err != nil {
				return err
			}
			rep, err := r.LongestPaths(cmd.Context(), maxDepth)
			if err != nil {
				return err
			}
			path, err := r.Persist("longest_paths", rep)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "longest path proxy %d over %d components -> %s\n", rep.Overall, len(rep.Components), path)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", -1, "hop cutoff (-1 = none, 0 = the concept alone)")

	return cmd
}

type statsOutput struct {
	Ingest ingest.Stats    `json:"ingest" yaml:"ingest"`
	Graph  core.GraphStats `json:"graph" yaml:"graph"`
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print ingestion and graph statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, st, err := a.loadGraph()
			if err != nil {
				return err
			}
			data, err := results.Encode(statsOutput{Ingest: st, Graph: g.Stats()}, results.Format(a.cfg.Format))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
