package ssc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.ssc.dev/internal/test"
)

func TestLexer(t *testing.T) {
	cases := []struct {
		data   string
		fail   bool
		expect []Token
	}{
		{
			"int a = 5;",
			false,
			[]Token{
				{TokenInt, "int"},
				{TokenIdentifier, "a"},
				{TokenAssign, "="},
				{TokenNumber, "5"},
				{TokenSemicolon, ";"},
			},
		},
		{
			"if (a > b) {} else {}",
			false,
			[]Token{
				{TokenIf, "if"},
				{TokenOpenParentheses, "("},
				{TokenIdentifier, "a"},
				{TokenGreater, ">"},
				{TokenIdentifier, "b"},
				{TokenCloseParentheses, ")"},
				{TokenOpenCurly, "{"},
				{TokenCloseCurly, "}"},
				{TokenElse, "else"},
				{TokenOpenCurly, "{"},
				{TokenCloseCurly, "}"},
			},
		},
		{
			"print(x<10);",
			false,
			[]Token{
				{TokenPrint, "print"},
				{TokenOpenParentheses, "("},
				{TokenIdentifier, "x"},
				{TokenLess, "<"},
				{TokenNumber, "10"},
				{TokenCloseParentheses, ")"},
				{TokenSemicolon, ";"},
			},
		},
		{
			"\tinteger\r\niffy printer elses x2y",
			false,
			[]Token{
				{TokenIdentifier, "integer"},
				{TokenIdentifier, "iffy"},
				{TokenIdentifier, "printer"},
				{TokenIdentifier, "elses"},
				{TokenIdentifier, "x2y"},
			},
		},
		{
			"únicódeShouldBeVàlid",
			false,
			[]Token{
				{TokenIdentifier, "únicódeShouldBeVàlid"},
			},
		},
		{
			"print(\"string with ; and { }\");",
			false,
			[]Token{
				{TokenPrint, "print"},
				{TokenOpenParentheses, "("},
				{TokenString, "string with ; and { }"},
				{TokenCloseParentheses, ")"},
				{TokenSemicolon, ";"},
			},
		},
		{
			"\"\"",
			false,
			[]Token{
				{TokenString, ""},
			},
		},
		{
			"007 2147483647",
			false,
			[]Token{
				{TokenNumber, "7"},
				{TokenNumber, "2147483647"},
			},
		},
		{
			"12ab",
			false,
			[]Token{
				{TokenNumber, "12"},
				{TokenIdentifier, "ab"},
			},
		},
		{
			"   \n\t ",
			false,
			nil,
		},
		{
			"2147483648",
			true,
			nil,
		},
		{
			"print(\"oops;",
			true,
			nil,
		},
		{
			"int a = 5 + 3;",
			true,
			nil,
		},
		{
			"@",
			true,
			nil,
		},
	}

	for _, c := range cases {
		r := strings.NewReader(c.data)
		l := NewLexer(r)

		toks, err := l.Run()
		if c.fail {
			assert.Error(t, err, c.data)
		} else {
			assert.NoError(t, err, c.data)
		}

		assert.Equal(t, c.expect, toks, c.data)
	}
}

func TestLexerErrors(t *testing.T) {
	cases := []struct {
		data   string
		char   rune
		reason string
	}{
		{"int a = 5 + 3;", '+', "invalid character '+'"},
		{"a ! b", '!', "invalid character '!'"},
		{"99999999999", 0, "malformed integer literal 99999999999"},
		{"print(\"oops;", 0, "unterminated string literal \"oops;"},
	}

	for _, c := range cases {
		_, err := Lex(c.data)
		require.Error(t, err, c.data)

		var lexErr *LexError
		require.ErrorAs(t, err, &lexErr, c.data)
		assert.Equal(t, c.char, lexErr.Char, c.data)
		assert.Equal(t, c.reason, lexErr.Reason, c.data)
		assert.Equal(t, "lex", lexErr.Stage())
	}
}

func TestLexerExampleProgram(t *testing.T) {
	toks, err := Lex(`int a = 5; if (a > 3) { print("big"); } else { print("small"); }`)
	require.NoError(t, err)

	assert.Len(t, toks, 26)
	assert.Equal(t, Token{TokenString, "big"}, toks[14])
	assert.Equal(t, Token{TokenElse, "else"}, toks[18])
	assert.Equal(t, Token{TokenCloseCurly, "}"}, toks[25])
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "')'", Token{TokenCloseParentheses, ")"}.String())
	assert.Equal(t, "identifier foo", Token{TokenIdentifier, "foo"}.String())
	assert.Equal(t, "number 42", Token{TokenNumber, "42"}.String())
	assert.Equal(t, `string "hi"`, Token{TokenString, "hi"}.String())
	assert.Equal(t, "end of input", Token{Typ: TokenEOF}.String())
}

// Use a package-level variable to avoid compiler optimisation
var benchResult []Token

func benchmarkLexer(size int, b *testing.B) {
	for n := 0; n < b.N; n++ {
		// Setup
		b.StopTimer()
		data := test.GetRandomTokens(size)
		r := strings.NewReader(data)
		l := NewLexer(r)

		var err error
		b.StartTimer()

		benchResult, err = l.Run()
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLexer100(b *testing.B) {
	benchmarkLexer(100, b)
}

func BenchmarkLexer1000(b *testing.B) {
	benchmarkLexer(1000, b)
}

func BenchmarkLexer10000(b *testing.B) {
	benchmarkLexer(10000, b)
}

func BenchmarkLexer100000(b *testing.B) {
	benchmarkLexer(100000, b)
}
