// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lsys/catalog"
	"github.com/katalvlaran/lsys/grammar"
	"github.com/katalvlaran/lsys/internal/logging"
	"github.com/katalvlaran/lsys/internal/style"
	"github.com/katalvlaran/lsys/loader"
)

var errNoGrammar = errors.New("select a grammar with --grammar or --file")

// app carries the persistent flag values shared by every subcommand.
type app struct {
	grammarName string
	file        string
	logLevel    string
	logger      *slog.Logger
}

// newRootCmd builds the command tree. Each call returns independent flag state.
func newRootCmd() *cobra.Command {
	a := &app{logger: logging.NewNop()}

	root := &cobra.Command{
		Use:   "lsys",
		Short: "Exact L-system lengths without rewriting strings",
		Long: `lsys computes how long the string of a deterministic L-system is after n
rewrites, using either a memoized histogram recursion or growth-matrix powers,
and cross-checks the two.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logging.NewWriter(cmd.ErrOrStderr(), level)
			return nil
		},
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().StringVarP(&a.grammarName, "grammar", "g", "", "catalog grammar name (list them with lsys catalog)")
	root.PersistentFlags().StringVarP(&a.file, "file", "f", "", "grammar document (.yaml, .yml, .toml, .json)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(
		newLengthCmd(a),
		newMatrixLengthCmd(a),
		newAlphabetCmd(a),
		newVerifyCmd(a),
		newBenchCmd(a),
		newDotCmd(a),
		newMermaidCmd(a),
		newInfoCmd(a),
		newCatalogCmd(a),
	)

	return root
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", style.ErrorPrefix, err)
		os.Exit(1)
	}
}

// selected reports whether a grammar was chosen on the command line.
func (a *app) selected() bool { return a.file != "" || a.grammarName != "" }

// grammar resolves --file first, then --grammar.
func (a *app) grammar() (grammar.Grammar, error) {
	switch {
	case a.file != "":
		g, err := loader.Load(a.file)
		if err != nil {
			return grammar.Grammar{}, err
		}
		a.logger.Debug("grammar loaded", "file", a.file, "name", g.Name)
		return g, nil
	case a.grammarName != "":
		return catalog.Get(a.grammarName)
	default:
		return grammar.Grammar{}, errNoGrammar
	}
}

// parseDepth parses the generation argument shared by the length commands.
func parseDepth(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("generation %q: not an integer", s)
	}
	return n, nil
}
