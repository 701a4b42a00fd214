// SPDX-License-Identifier: MIT
// Package: planegraph/cmd/planegraph
//
// generate.go - planar and tree subcommands.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/planegraph/builder"
	"github.com/katalvlaran/planegraph/config"
	"github.com/katalvlaran/planegraph/core"
	"github.com/katalvlaran/planegraph/metrics"
	"github.com/katalvlaran/planegraph/storage"
)

// generate holds the flags of planar and tree.
type generate struct {
	common
	save        string
	metricsPath string
	seed        int64
	radius      float64
	side        float64
	jitter      float64
}

func (g *generate) register(fs *flag.FlagSet) {
	g.common.register(fs)
	fs.StringVar(&g.save, "save", "", "artifact `name` (default graph-<uuid>)")
	fs.StringVar(&g.metricsPath, "metrics", "", "write generation metrics to `file`")
	fs.Int64Var(&g.seed, "seed", 0, "random seed (default: config seed, else time)")
	fs.Float64Var(&g.radius, "radius", 0, "vertex disk radius (overrides config)")
	fs.Float64Var(&g.side, "side", 0, "drawing square side (overrides config)")
	fs.Float64Var(&g.jitter, "jitter", 0, "grid center jitter in [0,1) (overrides config)")
}

// resolve merges config and explicitly set flags, then validates.
func (g *generate) resolve(fs *flag.FlagSet) (config.Config, int64, error) {
	cfg, err := g.load()
	if err != nil {
		return config.Config{}, 0, err
	}
	if isSet(fs, "radius") {
		cfg.Radius = g.radius
	}
	if isSet(fs, "side") {
		cfg.Side = g.side
	}
	if isSet(fs, "jitter") {
		cfg.Jitter = g.jitter
	}
	if err = cfg.Validate(); err != nil {
		return config.Config{}, 0, fmt.Errorf("%s: %w: %w", fs.Name(), errUsage, err)
	}

	seed := cfg.Seed
	if isSet(fs, "seed") {
		seed = g.seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return cfg, seed, nil
}

func runPlanar(args []string, out io.Writer) error {
	fs := newFlagSet("planar", out)
	var g generate
	g.register(fs)
	n := fs.Int("n", 20, "vertex count")
	if err := parse(fs, args); err != nil {
		return err
	}

	return g.build(fs, out, builder.Planar(*n))
}

func runTree(args []string, out io.Writer) error {
	fs := newFlagSet("tree", out)
	var g generate
	g.register(fs)
	n := fs.Int("n", 4, "alphabet size: sequences draw from 1..n")
	k := fs.Int("k", 2, "sequence length")
	if err := parse(fs, args); err != nil {
		return err
	}

	return g.build(fs, out, builder.CombinationTree(*n, *k))
}

// build runs con, saves the graph and optionally dumps metrics.
func (g *generate) build(fs *flag.FlagSet, out io.Writer, con builder.Constructor) error {
	cfg, seed, err := g.resolve(fs)
	if err != nil {
		return err
	}

	opts := cfg.BuilderOptions(seed)
	var reg *metrics.Registry
	if g.metricsPath != "" {
		reg = metrics.NewRegistry()
		opts = append(opts, builder.WithObserver(reg))
	}

	graph, err := builder.BuildGraph(nil, opts, con)
	if err != nil {
		return fmt.Errorf("%s: %w", fs.Name(), err)
	}

	name := g.save
	if name == "" {
		name = "graph-" + graph.ID().String()
	}
	if err = storage.NewFileStore(cfg.StorageDir).Save(graph, name); err != nil {
		return fmt.Errorf("%s: %w", fs.Name(), err)
	}
	if reg != nil {
		if err = writeMetrics(reg, g.metricsPath); err != nil {
			return fmt.Errorf("%s: %w", fs.Name(), err)
		}
	}

	klog.V(1).Infof("%s: seed %d, saved %q under %s", fs.Name(), seed, name, cfg.StorageDir)
	report(out, name, seed, graph)

	return nil
}

func report(out io.Writer, name string, seed int64, g *core.Graph) {
	fmt.Fprintf(out, "saved %s: %d vertices, %d edges, seed %d\n", name, g.VertexCount(), g.EdgeCount(), seed)
}

func writeMetrics(reg *metrics.Registry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = reg.WriteText(f); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
