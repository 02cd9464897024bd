/*
File    : lox-go/scanner/scanner_test.go
*/
package scanner

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/lox-go/report"
	"github.com/akashmaji946/lox-go/token"
	"github.com/stretchr/testify/require"
)

func scan(t *testing.T, src string) ([]token.Token, *report.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	rep := report.New(&buf)
	toks := New(src, rep).ScanTokens()
	return toks, rep
}

func TestScanTokens_EndsWithEOF(t *testing.T) {
	toks, rep := scan(t, "var x = 1;")
	require.False(t, rep.HadParseError)
	require.Equal(t, token.EOF, toks[len(toks)-1].Type)
	require.Equal(t, 1, countType(toks, token.EOF))
}

func TestScanTokens_EmptySourceStillHasEOF(t *testing.T) {
	toks, _ := scan(t, "")
	require.Len(t, toks, 1)
	require.Equal(t, token.EOF, toks[0].Type)
}

func TestScanTokens_TwoCharOperators(t *testing.T) {
	toks, rep := scan(t, "!= == <= >= < > =")
	require.False(t, rep.HadParseError)
	types := []token.Type{}
	for _, tk := range toks {
		if tk.Type != token.EOF {
			types = append(types, tk.Type)
		}
	}
	require.Equal(t, []token.Type{
		token.BANG_EQUAL, token.EQUAL_EQUAL, token.LESS_EQUAL,
		token.GREATER_EQUAL, token.LESS, token.GREATER, token.EQUAL,
	}, types)
}

func TestScanTokens_StringLiteral(t *testing.T) {
	toks, rep := scan(t, `"hello world"`)
	require.False(t, rep.HadParseError)
	require.Equal(t, token.STRING, toks[0].Type)
	require.Equal(t, "hello world", toks[0].Literal.AsString())
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, rep := scan(t, `"hello`)
	require.True(t, rep.HadParseError)
}

func TestScanTokens_NumberLiteral(t *testing.T) {
	toks, _ := scan(t, "123.45")
	require.Equal(t, token.NUMBER, toks[0].Type)
	require.Equal(t, 123.45, toks[0].Literal.AsNumber())
}

func TestScanTokens_LineCountsAreMonotonic(t *testing.T) {
	toks, _ := scan(t, "var a = 1;\nvar b = 2;\nprint a + b;")
	last := 0
	for _, tk := range toks {
		require.GreaterOrEqual(t, tk.Line, last)
		last = tk.Line
	}
	require.Equal(t, 3, toks[len(toks)-1].Line)
}

func TestScanTokens_LineComment(t *testing.T) {
	toks, rep := scan(t, "1 // comment\n2")
	require.False(t, rep.HadParseError)
	require.Equal(t, 3, len(toks)) // NUMBER, NUMBER, EOF
}

func TestScanTokens_NestedBlockComment(t *testing.T) {
	toks, rep := scan(t, "1 /* outer /* inner */ still-outer */ 2")
	require.False(t, rep.HadParseError)
	require.Equal(t, token.NUMBER, toks[0].Type)
	require.Equal(t, token.NUMBER, toks[1].Type)
	require.Equal(t, token.EOF, toks[2].Type)
}

func TestScanTokens_UnterminatedBlockComment(t *testing.T) {
	_, rep := scan(t, "/* never closes")
	require.True(t, rep.HadParseError)
}

func TestScanTokens_Keywords(t *testing.T) {
	toks, _ := scan(t, "var print nil true false")
	require.Equal(t, []token.Type{token.VAR, token.PRINT, token.NIL, token.TRUE, token.FALSE, token.EOF},
		typesOf(toks))
}

func TestScanTokens_IdentifierNotKeyword(t *testing.T) {
	toks, _ := scan(t, "variable")
	require.Equal(t, token.IDENTIFIER, toks[0].Type)
}

func TestScanTokens_TernaryAndCommaTokens(t *testing.T) {
	toks, _ := scan(t, "a ? b : c, d")
	require.Equal(t, []token.Type{
		token.IDENTIFIER, token.QUESTION, token.IDENTIFIER, token.COLON,
		token.IDENTIFIER, token.COMMA, token.IDENTIFIER, token.EOF,
	}, typesOf(toks))
}

func countType(toks []token.Token, typ token.Type) int {
	n := 0
	for _, tk := range toks {
		if tk.Type == typ {
			n++
		}
	}
	return n
}

func typesOf(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, tk := range toks {
		out[i] = tk.Type
	}
	return out
}
