// SPDX-License-Identifier: MIT

// Package catalog ships a set of named grammars embedded in the binary.
//
// The catalog is decoded from grammars.yaml on every call; there is no
// package-level cache, and callers own the returned grammars.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lsys/grammar"
	"github.com/katalvlaran/lsys/loader"
)

// ErrUnknownGrammar indicates a name that is not in the catalog.
var ErrUnknownGrammar = errors.New("catalog: unknown grammar")

//go:embed grammars.yaml
var grammarsYAML []byte

// All returns every catalog grammar, sorted by name.
func All() ([]grammar.Grammar, error) {
	gs, err := loader.DecodeCatalog(grammarsYAML, loader.YAML)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	sort.Slice(gs, func(i, j int) bool { return gs[i].Name < gs[j].Name })

	return gs, nil
}

// Get returns the grammar called name.
func Get(name string) (grammar.Grammar, error) {
	gs, err := All()
	if err != nil {
		return grammar.Grammar{}, err
	}
	for _, g := range gs {
		if g.Name == name {
			return g, nil
		}
	}

	return grammar.Grammar{}, fmt.Errorf("catalog: %q: %w", name, ErrUnknownGrammar)
}

// Names lists the catalog grammar names in sorted order.
func Names() ([]string, error) {
	gs, err := All()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(gs))
	for i, g := range gs {
		names[i] = g.Name
	}

	return names, nil
}
