package ssc

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

type Target int

const (
	TargetC Target = iota
	TargetLLVM
)

func (t Target) String() string {
	switch t {
	case TargetC:
		return "c"
	case TargetLLVM:
		return "llvm"
	default:
		return "unknown"
	}
}

// ParseTarget resolves a target name as given on the command line.
func ParseTarget(name string) (Target, error) {
	switch name {
	case "c", "C":
		return TargetC, nil
	case "llvm", "ll":
		return TargetLLVM, nil
	default:
		return 0, errors.Errorf("unknown target %q", name)
	}
}

// Generate translates source into C. It is the whole pipeline:
// lex, parse and generate, stopping at the first error.
func Generate(source string) (string, error) {
	return NewCompiler().translate(NewLexer(strings.NewReader(source)))
}

type Compiler struct {
	Target Target
}

func NewCompiler() *Compiler {
	return &Compiler{Target: TargetC}
}

func (c *Compiler) Compile(filename string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", errors.Wrapf(err, "open %s", filename)
	}
	defer f.Close()

	return c.CompileFromReader(f)
}

func (c *Compiler) CompileFromReader(reader io.Reader) (string, error) {
	return c.translate(NewLexer(reader))
}

func (c *Compiler) translate(lexer *Lexer) (string, error) {
	tokens, err := lexer.Run()
	if err != nil {
		return "", errors.Wrap(err, "lex")
	}

	ast, err := NewParser(tokens).Run()
	if err != nil {
		return "", errors.Wrap(err, "parse")
	}

	out, err := c.generator().Generate(ast)
	if err != nil {
		return "", errors.Wrap(err, "generate")
	}

	return out, nil
}

func (c *Compiler) generator() Generator {
	if c.Target == TargetLLVM {
		return NewLLVMGenerator()
	}

	return NewCGenerator()
}
