package ssc

import "fmt"

// CompileError is implemented by every error the pipeline can produce.
// All of them are fatal.
type CompileError interface {
	error
	Stage() string
}

type LexError struct {
	Char   rune // offending character, zero when the error is not about a single character
	Reason string
}

func (e *LexError) Stage() string {
	return "lex"
}

func (e *LexError) Error() string {
	return e.Reason
}

type ParseError struct {
	Expected string
	Got      Token
	Reason   string
}

func (e *ParseError) Stage() string {
	return "parse"
}

func (e *ParseError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("%s: %s", e.Reason, e.Got)
	}

	return fmt.Sprintf("%s: expected %s, got %s", e.Reason, e.Expected, e.Got)
}

type CodeGenError struct {
	Expr   Expr
	Reason string
}

func (e *CodeGenError) Stage() string {
	return "generate"
}

func (e *CodeGenError) Error() string {
	if e.Expr == nil {
		return e.Reason
	}

	return fmt.Sprintf("%s: %s", e.Reason, e.Expr)
}
