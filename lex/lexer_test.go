package lex

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenClass int

const (
	tokNumber tokenClass = iota
	tokIdent
	tokPlus
	tokStar
	tokLParen
	tokRParen
)

func arithmeticLexer(t *testing.T) *Lexer[tokenClass] {
	t.Helper()
	b := NewBuilder[tokenClass]()
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("building test lexer: %v", err)
		}
	}
	must(b.Discard(`[ \t]+`))
	must(b.Rule(`[0-9]+`, tokNumber))
	must(b.Rule(`[a-zA-Z_][a-zA-Z0-9_]*`, tokIdent))
	must(b.Rule(`\+`, tokPlus))
	must(b.Rule(`\*`, tokStar))
	must(b.Rule(`\(`, tokLParen))
	must(b.Rule(`\)`, tokRParen))

	lx, err := b.Build()
	if err != nil {
		t.Fatalf("building test lexer: %v", err)
	}
	return lx
}

func Test_Lexer_NextToken_arithmeticExpression(t *testing.T) {
	// setup
	assert := assert.New(t)
	lx := arithmeticLexer(t)
	st := lx.NewState([]byte("x1 + 42 * (y)"))

	type seen struct {
		class  tokenClass
		lexeme string
	}
	var got []seen

	// execute
	for {
		class, lexeme, _, err := lx.NextToken(st)
		if errors.Is(err, io.EOF) {
			break
		}
		if !assert.NoError(err) {
			return
		}
		got = append(got, seen{class, lexeme})
	}

	// assert
	expect := []seen{
		{tokIdent, "x1"},
		{tokPlus, "+"},
		{tokNumber, "42"},
		{tokStar, "*"},
		{tokLParen, "("},
		{tokIdent, "y"},
		{tokRParen, ")"},
	}
	assert.Equal(expect, got)
}

func Test_Lexer_NextToken_discardsWhitespaceOnly(t *testing.T) {
	// setup
	assert := assert.New(t)
	lx := arithmeticLexer(t)
	st := lx.NewState([]byte("   "))

	// execute
	_, _, _, err := lx.NextToken(st)

	// assert
	assert.ErrorIs(err, io.EOF)
}

func Test_Lexer_NextToken_noMatch(t *testing.T) {
	// setup
	assert := assert.New(t)
	lx := arithmeticLexer(t)
	st := lx.NewState([]byte("1 @ 2"))

	// execute
	_, _, _, err := lx.NextToken(st) // matches "1"
	assert.NoError(err)
	_, _, _, err = lx.NextToken(st) // discards the space, then dies on '@'

	// assert
	var scanErr *ScanError
	if assert.ErrorAs(err, &scanErr) {
		assert.Equal(NoMatch, scanErr.Kind)
		assert.Equal(byte('@'), scanErr.Offender)
	}
}

func Test_Lexer_NextToken_locationTracking(t *testing.T) {
	// setup
	assert := assert.New(t)
	lx := arithmeticLexer(t)
	st := lx.NewState([]byte("a\nb"))

	// execute
	_, _, sp1, err := lx.NextToken(st)
	if !assert.NoError(err) {
		return
	}
	_, _, _, err = lx.NextToken(st) // the newline itself has no rule; expect NoMatch
	var scanErr *ScanError
	isScanErr := errors.As(err, &scanErr)

	// assert
	assert.Equal(1, sp1.From.Line)
	assert.Equal(0, sp1.From.Col)
	assert.True(isScanErr)
}

func Test_Lexer_NextToken_longestMatchWins(t *testing.T) {
	// setup: "foobar" should lex as one identifier, not "foo" then "bar".
	assert := assert.New(t)
	lx := arithmeticLexer(t)
	st := lx.NewState([]byte("foobar"))

	// execute
	_, lexeme, _, err := lx.NextToken(st)
	if !assert.NoError(err) {
		return
	}

	// assert
	assert.Equal("foobar", lexeme)
	assert.True(st.EOF())
}

func Test_Lexer_NextToken_branchPriorityTieBreak(t *testing.T) {
	// setup: two rules that both match "if" exactly; the keyword rule is
	// declared first, so it must win over the generic identifier rule.
	assert := assert.New(t)
	b := NewBuilder[string]()
	_ = b.Rule(`if`, "KEYWORD_IF")
	_ = b.Rule(`[a-z]+`, "IDENT")
	lx, err := b.Build()
	if !assert.NoError(err) {
		return
	}
	st := lx.NewState([]byte("if"))

	// execute
	value, lexeme, _, err := lx.NextToken(st)

	// assert
	assert.NoError(err)
	assert.Equal("KEYWORD_IF", value)
	assert.Equal("if", lexeme)
}
