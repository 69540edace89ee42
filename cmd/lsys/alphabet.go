// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lsys/grammar"
	"github.com/katalvlaran/lsys/internal/style"
)

func newAlphabetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "alphabet",
		Short: "Print variables, constants and the combined alphabet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.grammar()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", style.Bold.Render("variables:"), string(grammar.Variables(g)))
			fmt.Fprintf(out, "%s %s\n", style.Bold.Render("constants:"), string(grammar.Constants(g)))
			fmt.Fprintf(out, "%s %s\n", style.Bold.Render("alphabet: "), string(grammar.Alphabet(g)))
			return nil
		},
	}
}
