// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lsys/export"
	"github.com/katalvlaran/lsys/grammar"
)

// renderCmd builds a command that prints one export rendering of the grammar.
func renderCmd(a *app, use, short string, render func(grammar.Grammar) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.grammar()
			if err != nil {
				return err
			}
			out, err := render(g)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newDotCmd(a *app) *cobra.Command {
	return renderCmd(a, "dot", "Export the symbol dependency graph as Graphviz DOT", export.DOT)
}

func newMermaidCmd(a *app) *cobra.Command {
	return renderCmd(a, "mermaid", "Export the symbol dependency graph as a Mermaid flowchart", export.Mermaid)
}

func newInfoCmd(a *app) *cobra.Command {
	return renderCmd(a, "info", "Print alphabet, rules, start vector and growth matrix", export.Info)
}
