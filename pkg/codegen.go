package ssc

import (
	"fmt"
	"strings"
)

// Generator renders a parsed program as target source text.
type Generator interface {
	Generate(ast *AST) (string, error)
}

const indentWidth = 4

// CGenerator translates the AST into a C program with a single main.
type CGenerator struct {
	out   strings.Builder
	depth int
}

func NewCGenerator() *CGenerator {
	return &CGenerator{}
}

func (g *CGenerator) Generate(ast *AST) (string, error) {
	g.out.Reset()
	g.depth = 0

	g.out.WriteString("#include <stdio.h>\n\n")
	g.out.WriteString("int main() {\n")

	g.depth++
	if err := g.statements(ast.Statements); err != nil {
		return "", err
	}

	g.line("return 0;")
	g.depth--

	g.out.WriteString("}\n")

	return g.out.String(), nil
}

func (g *CGenerator) statements(stmts []Stmt) error {
	for _, stmt := range stmts {
		if err := g.statement(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (g *CGenerator) statement(stmt Stmt) error {
	switch s := stmt.(type) {
	case *VariableDecl:
		g.line(fmt.Sprintf("%s %s = %s;", s.Type, s.Name, g.expression(s.Value)))
	case *PrintStmt:
		return g.print(s)
	case *IfStmt:
		return g.ifStmt(s)
	default:
		return &CodeGenError{Reason: fmt.Sprintf("unsupported statement %T", stmt)}
	}

	return nil
}

func (g *CGenerator) print(s *PrintStmt) error {
	switch e := s.Value.(type) {
	case *LiteralExpr:
		if e.Typ == LiteralString {
			format := strings.ReplaceAll(escapeC(e.Value), "%", "%%")
			g.line(fmt.Sprintf(`printf("%s\n");`, format))

			return nil
		}

		g.line(fmt.Sprintf(`printf("%%d\n", %s);`, e.Value))
	case *Identifier:
		g.line(fmt.Sprintf(`printf("%%d\n", %s);`, e.Name))
	default:
		return &CodeGenError{
			Expr:   s.Value,
			Reason: "print of unsupported expression",
		}
	}

	return nil
}

func (g *CGenerator) ifStmt(s *IfStmt) error {
	g.line(fmt.Sprintf("if (%s) {", g.expression(s.Cond)))

	g.depth++
	if err := g.statements(s.Then); err != nil {
		return err
	}
	g.depth--

	// The else block is emitted even when it is empty
	g.line("} else {")

	g.depth++
	if err := g.statements(s.Else); err != nil {
		return err
	}
	g.depth--

	g.line("}")

	return nil
}

func (g *CGenerator) expression(expr Expr) string {
	switch e := expr.(type) {
	case *LiteralExpr:
		if e.Typ == LiteralString {
			return `"` + escapeC(e.Value) + `"`
		}

		return e.Value
	case *Identifier:
		return e.Name
	case *BinaryExpr:
		return fmt.Sprintf("%s %s %s", g.expression(e.Op1), e.Operation, g.expression(e.Op2))
	default:
		return ""
	}
}

func (g *CGenerator) line(s string) {
	g.out.WriteString(strings.Repeat(" ", g.depth*indentWidth))
	g.out.WriteString(s)
	g.out.WriteByte('\n')
}

// escapeC keeps raw control characters from breaking a C string literal.
// Backslash sequences written in the source pass through untouched.
func escapeC(s string) string {
	r := strings.NewReplacer("\n", `\n`, "\t", `\t`, "\r", `\r`)
	return r.Replace(s)
}
