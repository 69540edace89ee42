// SPDX-License-Identifier: MIT

package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lsys/grammar"
)

var (
	// ErrUnknownFormat indicates a format or file extension the loader does not read.
	ErrUnknownFormat = errors.New("loader: unknown document format")

	// ErrBadRuleKey indicates a rule key that is not exactly one symbol.
	ErrBadRuleKey = errors.New("loader: rule key must be exactly one symbol")

	// ErrBadDocument indicates a document whose fields do not map onto a grammar.
	ErrBadDocument = errors.New("loader: malformed grammar document")
)

// Format names a document encoding.
type Format string

// Supported formats.
const (
	YAML Format = "yaml"
	TOML Format = "toml"
	JSON Format = "json"
)

// FormatFromPath picks a Format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".json":
		return JSON, nil
	default:
		return "", fmt.Errorf("loader: %q: %w", path, ErrUnknownFormat)
	}
}

// document is the decoded shape of one grammar.
type document struct {
	Name     string            `mapstructure:"name"`
	Axiom    string            `mapstructure:"axiom"`
	Angle    float64           `mapstructure:"angle"`
	Rules    map[string]string `mapstructure:"rules"`
	Metadata map[string]any    `mapstructure:"metadata"`
}

// catalogDocument is the decoded shape of a multi-grammar document.
type catalogDocument struct {
	Grammars []document `mapstructure:"grammars"`
}

// Decode parses one grammar document.
func Decode(data []byte, format Format) (grammar.Grammar, error) {
	raw, err := decodeRaw(data, format)
	if err != nil {
		return grammar.Grammar{}, err
	}
	var doc document
	if err := mapTo(raw, &doc); err != nil {
		return grammar.Grammar{}, err
	}

	return doc.grammar()
}

// DecodeCatalog parses a document listing several grammars under "grammars".
// Order is preserved.
func DecodeCatalog(data []byte, format Format) ([]grammar.Grammar, error) {
	raw, err := decodeRaw(data, format)
	if err != nil {
		return nil, err
	}
	var doc catalogDocument
	if err := mapTo(raw, &doc); err != nil {
		return nil, err
	}

	out := make([]grammar.Grammar, 0, len(doc.Grammars))
	for i, d := range doc.Grammars {
		g, err := d.grammar()
		if err != nil {
			return nil, fmt.Errorf("grammars[%d]: %w", i, err)
		}
		out = append(out, g)
	}

	return out, nil
}

// Load reads one grammar from path, choosing the format by extension.
// A grammar without a name is named after the file.
func Load(path string) (grammar.Grammar, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return grammar.Grammar{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return grammar.Grammar{}, fmt.Errorf("loader: reading %s: %w", path, err)
	}
	g, err := Decode(data, format)
	if err != nil {
		return grammar.Grammar{}, fmt.Errorf("loader: %s: %w", path, err)
	}
	if g.Name == "" {
		g.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return g, nil
}

// decodeRaw turns data into a generic map using the decoder for format.
func decodeRaw(data []byte, format Format) (map[string]any, error) {
	raw := map[string]any{}
	switch format {
	case YAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("loader: parsing yaml: %w", err)
		}
	case TOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("loader: parsing toml: %w", err)
		}
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("loader: parsing json: %w", err)
		}
	default:
		return nil, fmt.Errorf("loader: format %q: %w", format, ErrUnknownFormat)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	return raw, nil
}

// mapTo maps a generic document onto out. Unknown keys are rejected and
// scalars are converted weakly, so `angle: 90` and `rules: {A: 1}` both decode.
func mapTo(raw map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		DecodeHook:       jsonNumberHook,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return nil
}

// grammar converts a decoded document, enforcing single-symbol rule keys.
func (d document) grammar() (grammar.Grammar, error) {
	g := grammar.Grammar{
		Name:     d.Name,
		Axiom:    d.Axiom,
		Angle:    d.Angle,
		Rules:    make(map[rune]string, len(d.Rules)),
		Metadata: d.Metadata,
	}
	for key, rhs := range d.Rules {
		if utf8.RuneCountInString(key) != 1 {
			return grammar.Grammar{}, fmt.Errorf("loader: %q: %w", key, ErrBadRuleKey)
		}
		x, _ := utf8.DecodeRuneInString(key)
		g.Rules[x] = rhs
	}
	if err := g.Validate(); err != nil {
		return grammar.Grammar{}, fmt.Errorf("loader: %w", err)
	}

	return g, nil
}
