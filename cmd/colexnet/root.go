// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/colexnet/analysis"
	"github.com/katalvlaran/colexnet/config"
	"github.com/katalvlaran/colexnet/core"
	"github.com/katalvlaran/colexnet/ingest"
	"github.com/katalvlaran/colexnet/internal/logger"
	"github.com/katalvlaran/colexnet/internal/logger/console"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	envFile string
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)

	root := &cobra.Command{
		Use:           "colexnet",
		Short:         "Analyse weighted colexification networks",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (yaml, json or toml)")
	pf.StringVar(&a.envFile, "env-file", config.DefaultEnvFile, "dotenv file with COLEXNET_ variables")
	pf.StringP("input", "i", "", "CSV file with concept_a,concept_b,weight,languages")
	pf.Bool("debug", false, "log at DEBUG level")
	pf.Int("min-language-count", 0, "drop concepts attested in fewer languages")
	pf.Int64("weight-threshold", 0, "drop edges with fewer translations")
	pf.String("separator", "", "concept ID separator")
	pf.Int("workers", 0, "parallel tasks (0 = GOMAXPROCS)")
	pf.Int64("seed", 0, "random seed (0 = clock)")
	pf.String("output-dir", "", "directory for visualization listings")
	pf.String("results-dir", "", "directory for analysis results")
	pf.String("format", "", "output format: json or yaml")
	bind(a.v, pf.Lookup, map[string]string{
		config.KeyInput:            "input",
		config.KeyDebug:            "debug",
		config.KeyMinLanguageCount: "min-language-count",
		config.KeyWeightThreshold:  "weight-threshold",
		config.KeySeparator:        "separator",
		config.KeyWorkers:          "workers",
		config.KeySeed:             "seed",
		config.KeyOutputDir:        "output-dir",
		config.KeyResultsDir:       "results-dir",
		config.KeyFormat:           "format",
	})

	root.AddCommand(
		newVisualizeCmd(a),
		newWalkCmd(a),
		newDiameterCmd(a),
		newStatsCmd(a),
		newGenerateCmd(a),
	)

	return root
}

// setup resolves the configuration and installs the console logger.
func (a *app) setup(cmd *cobra.Command) error {
	dotenv, err := config.LoadEnv(a.envFile)
	if err != nil {
		return fmt.Errorf("read env file %s: %w", a.envFile, err)
	}
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
	}
	cfg, err := config.FromViper(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	logger.Init(console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug:  cfg.Debug,
		Writer: cmd.ErrOrStderr(),
		Prefix: cmd.Name(),
	}))
	logger.Debug("configuration resolved", "input", cfg.Input, "seed", cfg.Seed, "workers", cfg.Workers, "dotenv", dotenv)

	return nil
}

// loadGraph reads and thresholds the input records.
func (a *app) loadGraph() (*core.Graph, ingest.Stats, error) {
	if a.cfg.Input == "" {
		return nil, ingest.Stats{}, fmt.Errorf("no input: set --input or %s_INPUT", config.EnvPrefix)
	}
	f, err := os.Open(a.cfg.Input)
	if err != nil {
		return nil, ingest.Stats{}, err
	}
	defer f.Close()

	recs, err := ingest.ReadCSV(f)
	if err != nil {
		return nil, ingest.Stats{}, fmt.Errorf("%s: %w", a.cfg.Input, err)
	}

	return ingest.Build(recs, ingest.Options{
		WeightThreshold:  a.cfg.WeightThreshold,
		MinLanguageCount: a.cfg.MinLanguageCount,
	})
}

func (a *app) runner() (*analysis.Runner, error) {
	g, _, err := a.loadGraph()
	if err != nil {
		return nil, err
	}
	return analysis.NewRunner(g, *a.cfg), nil
}
