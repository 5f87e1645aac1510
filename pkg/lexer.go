package ssc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType uint64
type stateFunc func(l *Lexer) stateFunc

const (
	EOF rune = -1

	TokenEOF TokenType = iota
	TokenNumber
	TokenString
	TokenIdentifier

	TokenInt
	TokenIf
	TokenElse
	TokenPrint

	TokenAssign
	TokenGreater
	TokenLess
	TokenSemicolon
	TokenOpenParentheses
	TokenCloseParentheses
	TokenOpenCurly
	TokenCloseCurly
)

var keywordTable = map[string]TokenType{
	"int":   TokenInt,
	"if":    TokenIf,
	"else":  TokenElse,
	"print": TokenPrint,
}

var operatorTable = map[rune]TokenType{
	'=': TokenAssign,
	'>': TokenGreater,
	'<': TokenLess,
	';': TokenSemicolon,
	'(': TokenOpenParentheses,
	')': TokenCloseParentheses,
	'{': TokenOpenCurly,
	'}': TokenCloseCurly,
}

var tokenNames = map[TokenType]string{
	TokenEOF:              "end of input",
	TokenNumber:           "number",
	TokenString:           "string",
	TokenIdentifier:       "identifier",
	TokenInt:              "'int'",
	TokenIf:               "'if'",
	TokenElse:             "'else'",
	TokenPrint:            "'print'",
	TokenAssign:           "'='",
	TokenGreater:          "'>'",
	TokenLess:             "'<'",
	TokenSemicolon:        "';'",
	TokenOpenParentheses:  "'('",
	TokenCloseParentheses: "')'",
	TokenOpenCurly:        "'{'",
	TokenCloseCurly:       "'}'",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}

	return "TokenType(" + strconv.FormatUint(uint64(t), 10) + ")"
}

type Token struct {
	Typ   TokenType
	Value string
}

func (t Token) String() string {
	switch t.Typ {
	case TokenNumber, TokenIdentifier:
		return fmt.Sprintf("%s %s", t.Typ, t.Value)
	case TokenString:
		return fmt.Sprintf("%s %q", t.Typ, t.Value)
	default:
		return t.Typ.String()
	}
}

// Lexer turns source text into tokens. It is single use: call Run once.
type Lexer struct {
	reader *bufio.Reader
	tokens []Token
	err    error
}

func NewLexer(reader io.Reader) *Lexer {
	return &Lexer{
		reader: bufio.NewReader(reader),
	}
}

// Lex tokenizes src in one go.
func Lex(src string) ([]Token, error) {
	return NewLexer(strings.NewReader(src)).Run()
}

// Run scans the whole input. On the first lexical error no tokens are
// returned.
func (l *Lexer) Run() ([]Token, error) {
	for state := defaultState; state != nil; {
		state = state(l)
	}

	if l.err != nil {
		return nil, l.err
	}

	return l.tokens, nil
}

func defaultState(l *Lexer) stateFunc {
	for {
		switch r := l.peek(); {
		case r == EOF:
			return nil
		case isSpace(r):
			l.next()
			continue
		case isDigit(r):
			return numberState
		case r == '"':
			return stringState
		case unicode.IsLetter(r):
			return identifierState
		default:
			return operatorState
		}
	}
}

func numberState(l *Lexer) stateFunc {
	var num strings.Builder
	for r := l.peek(); isDigit(r); r = l.peek() {
		num.WriteRune(l.next())
	}

	v, err := strconv.ParseInt(num.String(), 10, 32)
	if err != nil {
		return l.errorf(0, "malformed integer literal %s", num.String())
	}

	// Canonical form, so that a leading zero never reaches C as octal
	return l.emmitValue(TokenNumber, strconv.FormatInt(v, 10))
}

func stringState(l *Lexer) stateFunc {
	l.next() // Skip the leading double-quote

	var str strings.Builder
	for r := l.next(); r != '"'; r = l.next() {
		if r == EOF {
			return l.errorf(0, "unterminated string literal \"%s", str.String())
		}

		str.WriteRune(r)
	}

	return l.emmitValue(TokenString, str.String())
}

func identifierState(l *Lexer) stateFunc {
	var id strings.Builder
	for r := l.peek(); unicode.IsLetter(r) || unicode.IsDigit(r); r = l.peek() {
		id.WriteRune(l.next())
	}

	if t, ok := keywordTable[id.String()]; ok {
		return l.emmitValue(t, id.String())
	}

	return l.emmitValue(TokenIdentifier, id.String())
}

func operatorState(l *Lexer) stateFunc {
	r := l.next()
	if tok, ok := operatorTable[r]; ok {
		return l.emmitValue(tok, string(r))
	}

	return l.errorf(r, "invalid character '%c'", r)
}

func (l *Lexer) errorf(r rune, format string, args ...interface{}) stateFunc {
	l.err = &LexError{
		Char:   r,
		Reason: fmt.Sprintf(format, args...),
	}

	return nil
}

func (l *Lexer) emmitValue(t TokenType, val string) stateFunc {
	l.tokens = append(l.tokens, Token{
		Typ:   t,
		Value: val,
	})

	return defaultState
}

func (l *Lexer) peek() rune {
	r := l.next()
	if r != EOF {
		_ = l.reader.UnreadRune()
	}

	return r
}

func (l *Lexer) next() rune {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return EOF
		}

		return utf8.RuneError
	}

	return r
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t' || r == '\r'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
