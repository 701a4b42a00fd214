// SPDX-License-Identifier: MIT
// Package: planegraph/cmd/planegraph
//
// inspect.go - show and check subcommands.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/planegraph/core"
	"github.com/katalvlaran/planegraph/storage"
)

func runShow(args []string, out io.Writer) error {
	fs := newFlagSet("show", out)
	var c common
	c.register(fs)
	name := fs.String("name", "", "artifact `name` to load")
	sub := fs.String("subgraph", "", `visible vertex ids, e.g. "0, 2 5"`)
	if err := parse(fs, args); err != nil {
		return err
	}

	g, err := c.loadGraph(*name)
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}
	if isSet(fs, "subgraph") {
		ids, err := storage.ParseSubgraph(*sub)
		if err != nil {
			return fmt.Errorf("show: %w: %w", errUsage, err)
		}
		g.ShowSubgraph(ids)
	}

	vs, es := g.VisibleVertices(), g.VisibleEdges()
	fmt.Fprintf(out, "vertices %d\n", len(vs))
	for _, v := range vs {
		fmt.Fprintf(out, "%d %s %s %s\n", v.ID, coord(v.Pos.X), coord(v.Pos.Y), v.Label)
	}
	fmt.Fprintf(out, "edges %d\n", len(es))
	for _, e := range es {
		fmt.Fprintf(out, "%d %d\n", e.U, e.V)
	}

	return nil
}

func runCheck(args []string, out io.Writer) error {
	fs := newFlagSet("check", out)
	var c common
	c.register(fs)
	name := fs.String("name", "", "artifact `name` to load")
	radius := fs.Float64("radius", 0, "vertex disk radius for the embedding audit (default: config radius)")
	if err := parse(fs, args); err != nil {
		return err
	}

	cfg, err := c.load()
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}
	r := cfg.Radius
	if isSet(fs, "radius") {
		r = *radius
	}

	g, err := c.loadGraph(*name)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	failed := 0
	line := func(what string, err error) {
		if err != nil {
			failed++
			fmt.Fprintf(out, "%-10s FAIL %v\n", what, err)

			return
		}
		fmt.Fprintf(out, "%-10s ok\n", what)
	}
	line("views", g.Validate())
	line("embedding", g.CheckEmbedding(r))
	var connErr error
	if comps := g.Components(); len(comps) > 1 {
		connErr = fmt.Errorf("%d components", len(comps))
	}
	line("connected", connErr)

	if failed > 0 {
		return fmt.Errorf("check: %q failed %d of 3 checks", *name, failed)
	}

	return nil
}

// loadGraph resolves the store from the config and loads name.
func (c *common) loadGraph(name string) (*core.Graph, error) {
	if name == "" {
		return nil, fmt.Errorf("-name is required: %w", errUsage)
	}
	cfg, err := c.load()
	if err != nil {
		return nil, err
	}

	return storage.NewFileStore(cfg.StorageDir).Load(name)
}

func coord(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
