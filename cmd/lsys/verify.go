// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lsys/catalog"
	"github.com/katalvlaran/lsys/grammar"
	"github.com/katalvlaran/lsys/internal/style"
	"github.com/katalvlaran/lsys/verify"
)

func newVerifyCmd(a *app) *cobra.Command {
	var (
		depth  int
		random int
		seed   int64
		size   int
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check both length methods on curated and random grammars",
		Long: `Compares the memoized length with the growth-matrix length for n = 0..depth.
Without --grammar or --file every catalog grammar is checked, followed by
--random seeded random grammars.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if depth < 0 || random < 0 || size < 0 {
				return fmt.Errorf("--depth, --random and --size must be non-negative")
			}
			curated, err := a.curated()
			if err != nil {
				return err
			}
			h := verify.NewHarness(
				verify.WithDepth(depth),
				verify.WithRandomGrammars(random),
				verify.WithSeed(seed),
				verify.WithRandomSize(size),
				verify.WithLogger(a.logger),
			)
			rep, err := h.Run(curated)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d curated and %d random grammars agree on %d checks (n = 0..%d)\n",
				style.SuccessPrefix, rep.Curated, rep.Random, rep.Checks, rep.Depth)
			return nil
		},
	}
	cmd.Flags().IntVar(&depth, "depth", verify.DefaultDepth, "largest generation checked")
	cmd.Flags().IntVar(&random, "random", 10, "number of random grammars")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random grammar seed (0 uses the default seed)")
	cmd.Flags().IntVar(&size, "size", verify.DefaultRandomOptions().Size, "axiom and rule length of random grammars")

	return cmd
}

// curated is the selected grammar, or the whole catalog when none is selected.
func (a *app) curated() ([]grammar.Grammar, error) {
	if !a.selected() {
		return catalog.All()
	}
	g, err := a.grammar()
	if err != nil {
		return nil, err
	}
	return []grammar.Grammar{g}, nil
}
