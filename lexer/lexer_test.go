/*
File    : golox/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenCase struct {
	Input    string
	Expected []TokenType
}

func TestScanTokens_Operators(t *testing.T) {
	tests := []tokenCase{
		{
			Input:    `1 + 2 * 3`,
			Expected: []TokenType{NUMBER, PLUS, NUMBER, STAR, NUMBER, EOF},
		},
		{
			Input:    `x += 1; y -= 2; z == 3; z != 3;`,
			Expected: []TokenType{IDENTIFIER, PLUS_EQUAL, NUMBER, SEMICOLON, IDENTIFIER, MINUS_EQUAL, NUMBER, SEMICOLON, IDENTIFIER, EQUAL_EQUAL, NUMBER, SEMICOLON, IDENTIFIER, BANG_EQUAL, NUMBER, SEMICOLON, EOF},
		},
		{
			Input:    `[1, 2][0] % 2`,
			Expected: []TokenType{LEFT_BRACKET, NUMBER, COMMA, NUMBER, RIGHT_BRACKET, LEFT_BRACKET, NUMBER, RIGHT_BRACKET, PERCENT, NUMBER, EOF},
		},
	}

	for _, tc := range tests {
		l := New(tc.Input)
		tokens, err := l.ScanTokens()
		require.NoError(t, err)
		require.Len(t, tokens, len(tc.Expected))
		for i, kind := range tc.Expected {
			assert.Equal(t, kind, tokens[i].Type, "token %d of %q", i, tc.Input)
		}
	}
}

func TestScanTokens_Keywords(t *testing.T) {
	l := New(`class fun var for if else while break continue return super this nil true false and or print import`)
	tokens, err := l.ScanTokens()
	require.NoError(t, err)
	want := []TokenType{CLASS, FUN, VAR, FOR, IF, ELSE, WHILE, BREAK, CONTINUE, RETURN, SUPER, THIS, NIL, TRUE, FALSE, AND, OR, PRINT, IMPORT, EOF}
	require.Len(t, tokens, len(want))
	for i, kind := range want {
		assert.Equal(t, kind, tokens[i].Type)
	}
}

func TestScanTokens_StringEscapes(t *testing.T) {
	l := New(`"line\nbreak\ttab\"quote\\slash"`)
	tokens, err := l.ScanTokens()
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "line\nbreak\ttab\"quote\\slash", tokens[0].Literal)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	l := New(`"never closes`)
	_, err := l.ScanTokens()
	require.Error(t, err)
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
}

func TestScanTokens_NestedBlockComment(t *testing.T) {
	l := New("/* outer /* inner */ still comment */ print 1;")
	tokens, err := l.ScanTokens()
	require.NoError(t, err)
	assert.Equal(t, PRINT, tokens[0].Type)
}

func TestScanTokens_NumberFraction(t *testing.T) {
	l := New(`3.14 42 .5`)
	tokens, err := l.ScanTokens()
	require.NoError(t, err)
	assert.Equal(t, 3.14, tokens[0].Literal)
	assert.Equal(t, float64(42), tokens[1].Literal)
	// a bare leading dot is not part of a number; it scans as DOT then NUMBER
	assert.Equal(t, DOT, tokens[2].Type)
	assert.Equal(t, NUMBER, tokens[3].Type)
}

func TestScanTokens_LineCounting(t *testing.T) {
	l := New("var a = 1;\nvar b = 2;\n")
	tokens, err := l.ScanTokens()
	require.NoError(t, err)
	last := tokens[len(tokens)-1]
	assert.Equal(t, 3, last.Line)
}

func TestScanTokens_UnexpectedCharacter(t *testing.T) {
	l := New("var a = 1 @ 2;")
	_, err := l.ScanTokens()
	require.Error(t, err)
}
