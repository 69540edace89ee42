// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lsys/growth"
	"github.com/katalvlaran/lsys/internal/style"
	"github.com/katalvlaran/lsys/length"
)

func newLengthCmd(a *app) *cobra.Command {
	var upto, plain bool
	cmd := &cobra.Command{
		Use:   "length <n>",
		Short: "Length after n rewrites (memoized histogram recursion)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseDepth(args[0])
			if err != nil {
				return err
			}
			g, err := a.grammar()
			if err != nil {
				return err
			}
			e, err := length.New(g, length.WithCacheReuse())
			if err != nil {
				return err
			}
			if !upto {
				l, err := e.Length(n)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), l)
				return nil
			}
			ls, err := e.Lengths(n)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), lengthTable(ls, plain))
			st := e.Stats()
			a.logger.Info("lengths computed", "grammar", g.Name, "n", n,
				"entries", st.Entries, "cache", st.CacheSize, "evaluations", st.Evaluations)
			return nil
		},
	}
	cmd.Flags().BoolVar(&upto, "upto", false, "print a table for every generation 0..n")
	cmd.Flags().BoolVar(&plain, "plain", false, "with --upto: no indent and no header separator")

	return cmd
}

func newMatrixLengthCmd(a *app) *cobra.Command {
	var upto, plain bool
	cmd := &cobra.Command{
		Use:   "matrix-length <n>",
		Short: "Length after n rewrites (growth-matrix power)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseDepth(args[0])
			if err != nil {
				return err
			}
			g, err := a.grammar()
			if err != nil {
				return err
			}
			e, err := growth.New(g)
			if err != nil {
				return err
			}
			if !upto {
				l, err := e.MatrixLength(n)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), l)
				return nil
			}
			if n < 0 {
				_, err := e.MatrixLength(n)
				return err
			}
			ls := make([]*big.Int, 0, n+1)
			for k := 0; k <= n; k++ {
				l, err := e.MatrixLength(k)
				if err != nil {
					return err
				}
				ls = append(ls, l)
			}
			fmt.Fprint(cmd.OutOrStdout(), lengthTable(ls, plain))
			return nil
		},
	}
	cmd.Flags().BoolVar(&upto, "upto", false, "print a table for every generation 0..n")
	cmd.Flags().BoolVar(&plain, "plain", false, "with --upto: no indent and no header separator")

	return cmd
}

// lengthTable renders n/length rows; plain drops the indent and separator
// so the output can be piped into column-oriented tools.
func lengthTable(ls []*big.Int, plain bool) string {
	t := style.NewTable(
		style.Column{Name: "n", Align: lipgloss.Right, Style: &style.Dim},
		style.Column{Name: "length", Align: lipgloss.Right},
	)
	if plain {
		t.SetIndent("").SetHeaderSeparator(false)
	}
	for n, l := range ls {
		t.AddRow(strconv.Itoa(n), l.String())
	}

	return t.Render()
}
