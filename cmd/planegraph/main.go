// SPDX-License-Identifier: MIT
// Package: planegraph/cmd/planegraph

// Command planegraph generates planar random graphs and combination trees,
// stores them as matrix/node artifacts and inspects stored graphs.
//
// Usage:
//
//	planegraph [-v N] planar -n 20 [-seed S] [-config f.yaml] [-save name] [-dir d] [-metrics f]
//	planegraph [-v N] tree -n 4 -k 2 [-config f.yaml] [-save name] [-dir d] [-metrics f]
//	planegraph show -name g [-subgraph "0, 1, 2"] [-dir d]
//	planegraph check -name g [-radius r] [-dir d]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/plan-systems/klog"
)

// errUsage marks command-line mistakes; main exits with status 2 for them.
var errUsage = errors.New("usage")

const usage = `usage: planegraph [log flags] <command> [flags]

commands:
  planar   generate a connected planar random graph
  tree     generate a laid-out combination tree
  show     list the visible vertices and edges of a stored graph
  check    validate a stored graph and its embedding

run "planegraph <command> -h" for command flags`

func main() {
	fset := flag.NewFlagSet("planegraph", flag.ExitOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	fset.Usage = func() { fmt.Fprintln(fset.Output(), usage) }
	fset.Parse(os.Args[1:])

	err := run(fset.Args(), os.Stdout)
	klog.Flush()

	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUsage):
		fmt.Fprintln(os.Stderr, "planegraph:", err)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "planegraph:", err)
		os.Exit(1)
	}
}

// run dispatches one subcommand; out receives its report.
func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("no command: %w", errUsage)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "planar":
		return runPlanar(rest, out)
	case "tree":
		return runTree(rest, out)
	case "show":
		return runShow(rest, out)
	case "check":
		return runCheck(rest, out)
	case "help", "-h", "-help", "--help":
		fmt.Fprintln(out, usage)

		return nil
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}
