/*
Lexgen-demo tokenizes a small arithmetic expression to demonstrate the
lexer generator: regex rules in, a stream of tokens out.

Usage:

	lexgen-demo [flags]

The flags are:

	-v, --version
		Give the current version of lexgen and then exit.

	-r, --rules FILE
		Load discard/token rules from the given .lexrules.toml file instead of
		the built-in arithmetic-expression rules.

With no --rules given, it tokenizes the expression

	(412 + 321.654) / 768.432 * 34e-1 - sin(30)

using a hardcoded rule set for integers, floats, identifiers, and the
punctuation +, -, *, /, (, ).
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dekarrin/lexgen/internal/rulefile"
	"github.com/dekarrin/lexgen/internal/version"
	"github.com/dekarrin/lexgen/lex"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitConfigError indicates an unsuccessful program execution due to a
	// problem loading a rule file.
	ExitConfigError

	// ExitScanError indicates an unsuccessful program execution due to a
	// problem while scanning the input.
	ExitScanError
)

var (
	returnCode  int     = ExitSuccess
	flagVersion *bool   = pflag.BoolP("version", "v", false, "Gives the version info")
	rulesFile   *string = pflag.StringP("rules", "r", "", "Load discard/token rules from the given .lexrules.toml file")
)

const demoInput = `(412 + 321.654) / 768.432 * 34e-1 - sin(30)`

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occured: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	lx, err := buildLexer(*rulesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitConfigError
		return
	}

	st := lx.NewState([]byte(demoInput))
	for {
		value, lexeme, sp, err := lx.NextToken(st)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR at %s: %s\n", sp.String(), err.Error())
			returnCode = ExitScanError
			return
		}
		fmt.Printf("%-12s %-10q %s\n", value, lexeme, sp.String())
	}
}

// buildLexer returns the demo's hardcoded arithmetic-expression lexer, or a
// lexer built from a .lexrules.toml file if rulesPath is non-empty.
func buildLexer(rulesPath string) (*lex.Lexer[string], error) {
	if rulesPath != "" {
		f, err := rulefile.Load(rulesPath)
		if err != nil {
			return nil, err
		}
		b, err := f.Builder()
		if err != nil {
			return nil, err
		}
		return b.Build()
	}

	b := lex.NewBuilder[string]()
	must := func(err error) {
		if err != nil {
			panic(fmt.Sprintf("built-in demo rule failed to compile: %v", err))
		}
	}
	must(b.Discard(`[ \n\r\t]+`))
	must(b.Rule(`[1-9][0-9]*`, "INTEGER"))
	must(b.Rule(`[1-9][0-9]*(\.[0-9]+)?([eE][+\-]?[0-9]+)?`, "FLOAT"))
	must(b.Rule(`\+|\-|\*|/|\(|\)`, "PUNCTUATION"))
	must(b.Rule(`[a-zA-Z][a-zA-Z0-9_]*`, "IDENTIFIER"))

	return b.Build()
}
