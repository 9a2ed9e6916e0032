package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxscript/glox/internal/token"
)

func typesOf(t *testing.T, toks []*token.Token) []token.Type {
	t.Helper()
	out := make([]token.Type, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestScanEmptySourceYieldsJustEOF(t *testing.T) {
	toks, err := Scan("")
	assert.NoError(t, err)
	assert.Equal(t, []token.Type{token.EOF}, typesOf(t, toks))
}

func TestScanArithmeticExpression(t *testing.T) {
	toks, err := Scan("2 + 4;")
	assert.NoError(t, err)
	assert.Equal(t, []token.Type{token.NumberTok, token.Plus, token.NumberTok, token.Semicolon, token.EOF}, typesOf(t, toks))
	assert.Equal(t, token.NewInteger(2), toks[0].Literal)
	assert.Equal(t, token.NewInteger(4), toks[2].Literal)
}

func TestScanTwoCharOperators(t *testing.T) {
	toks, err := Scan("!= == <= >=")
	assert.NoError(t, err)
	assert.Equal(t, []token.Type{token.BangEqual, token.EqualEqual, token.LessEqual, token.GreaterEqual, token.EOF}, typesOf(t, toks))
}

func TestScanKeywordsFoldIntoReservedTypes(t *testing.T) {
	toks, err := Scan("var x = nil;")
	assert.NoError(t, err)
	assert.Equal(t, []token.Type{token.Var, token.Identifier, token.Equal, token.Nil, token.Semicolon, token.EOF}, typesOf(t, toks))
}

func TestScanStringLiteral(t *testing.T) {
	toks, err := Scan(`"hello world"`)
	assert.NoError(t, err)
	assert.Equal(t, token.StringTok, toks[0].Type)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestScanUnterminatedStringIsLexError(t *testing.T) {
	_, err := Scan(`"unterminated`)
	assert.Error(t, err)
}

func TestScanIllegalCharacterIsLexError(t *testing.T) {
	_, err := Scan("@")
	assert.Error(t, err)
}

func TestScanNumberTrailingDotIsLexError(t *testing.T) {
	_, err := Scan("1.")
	assert.Error(t, err)
}

func TestScanIdentifiersShareInternedLexeme(t *testing.T) {
	toks, err := Scan("foo foo")
	assert.NoError(t, err)
	assert.Equal(t, toks[0].Lexeme, toks[1].Lexeme)
}

func TestScanTracksLineNumbersAcrossNewlines(t *testing.T) {
	toks, err := Scan("1;\n2;\n3;")
	assert.NoError(t, err)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[2].Line)
	assert.Equal(t, 3, toks[4].Line)
}
