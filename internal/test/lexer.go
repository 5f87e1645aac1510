package test

import (
	"fmt"
	"math/rand"
	"strings"
)

var validTokens = []string{
	"int", "if", "else", "print", "(", ")", "{", "}", ";", "=", ">", "<",
	"a", "counter", "x1", "value", "0", "123", "2147483647",
	`"this is a string"`, `""`, `"a string with symbols: ; { } ( ) = > <"`,
	`"this is a longer string containing a bunch of text: Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."`,
}

var identifiers = []string{"a", "b", "counter", "x1", "value"}

func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

func GetRandomTokensWithSep(size int, sep string) string {
	var toks []string
	for len(toks) < size {
		toks = append(toks, validTokens[rand.Intn(len(validTokens))])
	}

	return strings.Join(toks, sep)
}

// GetRandomProgram returns a syntactically valid program of size top level
// statements, with if statements nested at most depth levels.
func GetRandomProgram(r *rand.Rand, size, depth int) string {
	var b strings.Builder
	for i := 0; i < size; i++ {
		writeStatement(r, &b, depth)
		b.WriteByte('\n')
	}

	return b.String()
}

func writeStatement(r *rand.Rand, b *strings.Builder, depth int) {
	choice := r.Intn(3)
	if choice == 2 && depth <= 0 {
		choice = r.Intn(2)
	}

	switch choice {
	case 0:
		fmt.Fprintf(b, "int %s = %s;", randomIdentifier(r), randomExpr(r))
	case 1:
		if r.Intn(2) == 0 {
			fmt.Fprintf(b, "print(\"message %d\");", r.Intn(1000))
		} else {
			fmt.Fprintf(b, "print(%s);", randomOperand(r))
		}
	default:
		fmt.Fprintf(b, "if (%s) {", randomExpr(r))
		writeBlock(r, b, depth-1)
		b.WriteString("}")

		if r.Intn(2) == 0 {
			b.WriteString(" else {")
			writeBlock(r, b, depth-1)
			b.WriteString("}")
		}
	}
}

func writeBlock(r *rand.Rand, b *strings.Builder, depth int) {
	for i := r.Intn(3); i > 0; i-- {
		b.WriteByte(' ')
		writeStatement(r, b, depth)
	}
	b.WriteByte(' ')
}

func randomExpr(r *rand.Rand) string {
	switch r.Intn(3) {
	case 0:
		return randomOperand(r)
	case 1:
		return randomOperand(r) + " > " + randomOperand(r)
	default:
		return randomOperand(r) + " < " + randomOperand(r)
	}
}

func randomOperand(r *rand.Rand) string {
	if r.Intn(2) == 0 {
		return identifiers[r.Intn(len(identifiers))]
	}

	return fmt.Sprint(r.Intn(100000))
}

func randomIdentifier(r *rand.Rand) string {
	return identifiers[r.Intn(len(identifiers))]
}
