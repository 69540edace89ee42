// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lsys/grammar"
	"github.com/katalvlaran/lsys/growth"
	"github.com/katalvlaran/lsys/internal/metrics"
	"github.com/katalvlaran/lsys/internal/style"
	"github.com/katalvlaran/lsys/length"
	"github.com/katalvlaran/lsys/verify"
)

func newBenchCmd(a *app) *cobra.Command {
	var (
		depth       int
		rounds      int
		seed        int64
		size        int
		showMetrics bool
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time both length methods over n = 0..depth-1",
		Long: `Times every length(n) and matrix_length(n) for n = 0..depth-1, repeated
--rounds times, on the selected grammar or on one random grammar of --size
symbols per string. Each memoized query starts from an empty cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if depth < 0 || rounds < 1 || size < 0 {
				return fmt.Errorf("--depth and --size must be non-negative and --rounds positive")
			}
			g, err := a.benchGrammar(seed, size)
			if err != nil {
				return err
			}
			reg := prometheus.NewRegistry()
			col, err := metrics.New(reg)
			if err != nil {
				return err
			}
			if err := runBench(g, depth, rounds, col); err != nil {
				return err
			}

			sums, err := col.Summaries()
			if err != nil {
				return err
			}
			t := style.NewTable(
				style.Column{Name: "method", Style: &style.Info},
				style.Column{Name: "queries", Align: lipgloss.Right},
				style.Column{Name: "total", Align: lipgloss.Right},
				style.Column{Name: "per query", Align: lipgloss.Right},
			)
			for _, s := range sums {
				total := time.Duration(s.TotalSeconds * float64(time.Second))
				per := time.Duration(0)
				if s.Computations > 0 {
					per = total / time.Duration(s.Computations)
				}
				t.AddRow(s.Method, strconv.FormatUint(s.Computations, 10), total.String(), per.String())
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, t.Render())
			if showMetrics {
				fmt.Fprintln(out)
				return col.WriteText(out)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 20, "generations per round (n = 0..depth-1)")
	cmd.Flags().IntVar(&rounds, "rounds", 10, "number of rounds")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random grammar seed")
	cmd.Flags().IntVar(&size, "size", 100, "axiom and rule length of the random grammar")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "also print the raw Prometheus samples")

	return cmd
}

// benchGrammar is the selected grammar, or a seeded random one.
func (a *app) benchGrammar(seed int64, size int) (grammar.Grammar, error) {
	if a.selected() {
		return a.grammar()
	}
	opts := verify.DefaultRandomOptions()
	opts.Size = size
	g, err := verify.RandomGrammar(rand.New(rand.NewSource(seed)), opts)
	if err != nil {
		return grammar.Grammar{}, err
	}
	g.Name = "random"
	return g, nil
}

func runBench(g grammar.Grammar, depth, rounds int, rec verify.Recorder) error {
	memo, err := length.New(g)
	if err != nil {
		return err
	}
	oracle, err := growth.New(g)
	if err != nil {
		return err
	}
	for r := 0; r < rounds; r++ {
		for n := 0; n < depth; n++ {
			start := time.Now()
			if _, err := memo.Length(n); err != nil {
				return err
			}
			rec.ObserveComputation(verify.MethodMemo, time.Since(start))
		}
		for n := 0; n < depth; n++ {
			start := time.Now()
			if _, err := oracle.MatrixLength(n); err != nil {
				return err
			}
			rec.ObserveComputation(verify.MethodMatrix, time.Since(start))
		}
	}
	return nil
}
