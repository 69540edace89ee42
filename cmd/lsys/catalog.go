// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lsys/catalog"
	"github.com/katalvlaran/lsys/grammar"
	"github.com/katalvlaran/lsys/internal/style"
)

func newCatalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the built-in grammars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gs, err := catalog.All()
			if err != nil {
				return err
			}
			t := style.NewTable(
				style.Column{Name: "name", Style: &style.Info},
				style.Column{Name: "axiom", Width: 24},
				style.Column{Name: "vars", Align: lipgloss.Right},
				style.Column{Name: "consts", Align: lipgloss.Right},
				style.Column{Name: "angle", Align: lipgloss.Right, Style: &style.Dim},
			)
			for _, g := range gs {
				t.AddRow(
					g.Name,
					g.Axiom,
					strconv.Itoa(len(grammar.Variables(g))),
					strconv.Itoa(len(grammar.Constants(g))),
					strconv.FormatFloat(g.Angle, 'f', -1, 64),
				)
			}
			fmt.Fprint(cmd.OutOrStdout(), t.Render())
			a.logger.Debug("catalog listed", "count", len(gs))
			return nil
		},
	}
}
