// Package rulefile loads a lexer's rule set from a TOML resource file, so a
// cmd/lexgen-demo user can describe patterns and their token names in a
// config file instead of hardcoding a Builder chain.
package rulefile

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/lexgen/lex"
)

// Rule is one token-producing pattern: a regex and the token name
// lex.Builder.Rule should associate with it.
type Rule struct {
	Pattern string `toml:"pattern"`
	Token   string `toml:"token"`
}

// File is the top-level shape of a .lexrules.toml file: an optional discard
// pattern (whitespace, comments) plus an ordered list of token rules. Rules
// are matched in the order they appear in the file, so earlier rules win
// priority ties over later ones, same as repeated calls to lex.Builder.Rule.
type File struct {
	Discard string `toml:"discard"`
	Rules   []Rule `toml:"rule"`
}

// Load reads and parses a .lexrules.toml file from path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("%q: reading from disk: %w", path, err)
	}

	var f File
	if tomlErr := toml.Unmarshal(data, &f); tomlErr != nil {
		return File{}, fmt.Errorf("%q: parsing TOML: %w", path, tomlErr)
	}

	if len(f.Rules) == 0 {
		return File{}, fmt.Errorf("%q: does not define any [[rule]] entries", path)
	}

	return f, nil
}

// Builder compiles f into a lex.Builder whose rule values are the token
// names from the file, in declaration order: the discard pattern (if any)
// first, then each [[rule]] entry in file order.
func (f File) Builder() (*lex.Builder[string], error) {
	b := lex.NewBuilder[string]()

	if f.Discard != "" {
		if err := b.Discard(f.Discard); err != nil {
			return nil, fmt.Errorf("discard pattern: %w", err)
		}
	}

	for _, r := range f.Rules {
		if err := b.Rule(r.Pattern, r.Token); err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.Token, err)
		}
	}

	return b, nil
}
