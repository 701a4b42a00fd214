// SPDX-License-Identifier: MIT
// Package: planegraph/cmd/planegraph
//
// flags.go - flag sets shared by the subcommands.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/planegraph/config"
)

// common holds the flags shared by every subcommand.
type common struct {
	configPath string
	dir        string
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "YAML configuration `file`")
	fs.StringVar(&c.dir, "dir", "", "storage `directory` (default: storage_dir from the config)")
}

// load returns the configuration with -dir applied.
func (c *common) load() (config.Config, error) {
	cfg := config.Default()
	if c.configPath != "" {
		var err error
		if cfg, err = config.Load(c.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if c.dir != "" {
		cfg.StorageDir = c.dir
	}

	return cfg, nil
}

// newFlagSet returns a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)

	return fs
}

// parse wraps flag errors so main can tell them apart.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}

		return fmt.Errorf("%s: %w: %w", fs.Name(), errUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%s: unexpected arguments %q: %w", fs.Name(), fs.Args(), errUsage)
	}

	return nil
}

// isSet reports whether the flag name appeared on the command line.
func isSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})

	return found
}
