package ssc

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCGenerator(t *testing.T) {
	cases := []struct {
		name   string
		stmts  []Stmt
		expect string
	}{
		{
			"empty program",
			nil,
			"#include <stdio.h>\n\nint main() {\n    return 0;\n}\n",
		},
		{
			"declaration",
			[]Stmt{
				&VariableDecl{TypeInt, "a", &LiteralExpr{LiteralNumber, "32321"}},
			},
			"#include <stdio.h>\n\nint main() {\n    int a = 32321;\n    return 0;\n}\n",
		},
		{
			"if without else",
			[]Stmt{
				&IfStmt{
					Cond: &BinaryExpr{BinaryLess, &Identifier{"a"}, &LiteralExpr{LiteralNumber, "10"}},
					Then: []Stmt{
						&PrintStmt{&Identifier{"a"}},
					},
				},
			},
			"#include <stdio.h>\n\nint main() {\n" +
				"    if (a < 10) {\n" +
				"        printf(\"%d\\n\", a);\n" +
				"    } else {\n" +
				"    }\n" +
				"    return 0;\n}\n",
		},
	}

	for _, c := range cases {
		got, err := NewCGenerator().Generate(&AST{Statements: c.stmts})
		require.NoError(t, err, c.name)
		assert.Equal(t, c.expect, got, c.name)
	}
}

func TestCGeneratorStatements(t *testing.T) {
	cases := []struct {
		name     string
		stmt     Stmt
		contains string
	}{
		{
			"declaration from identifier",
			&VariableDecl{TypeInt, "b", &Identifier{"a"}},
			"int b = a;",
		},
		{
			"declaration from relation",
			&VariableDecl{TypeInt, "c", &BinaryExpr{BinaryGreater, &Identifier{"a"}, &Identifier{"b"}}},
			"int c = a > b;",
		},
		{
			"declaration from string",
			&VariableDecl{TypeInt, "s", &LiteralExpr{LiteralString, "text"}},
			`int s = "text";`,
		},
		{
			"print string",
			&PrintStmt{&LiteralExpr{LiteralString, "A é maior q B"}},
			`printf("A é maior q B\n");`,
		},
		{
			"print number",
			&PrintStmt{&LiteralExpr{LiteralNumber, "42"}},
			`printf("%d\n", 42);`,
		},
		{
			"print variable",
			&PrintStmt{&Identifier{"counter"}},
			`printf("%d\n", counter);`,
		},
		{
			"print percent sign",
			&PrintStmt{&LiteralExpr{LiteralString, "100%"}},
			`printf("100%%\n");`,
		},
		{
			"print multiline string",
			&PrintStmt{&LiteralExpr{LiteralString, "one\ntwo"}},
			`printf("one\ntwo\n");`,
		},
	}

	for _, c := range cases {
		got, err := NewCGenerator().Generate(&AST{Statements: []Stmt{c.stmt}})
		require.NoError(t, err, c.name)
		assert.Contains(t, got, "    "+c.contains+"\n", c.name)
	}
}

func TestCGeneratorUnsupportedPrint(t *testing.T) {
	expr := &BinaryExpr{BinaryGreater, &Identifier{"a"}, &Identifier{"b"}}
	ast := &AST{
		Statements: []Stmt{
			&VariableDecl{TypeInt, "a", &LiteralExpr{LiteralNumber, "1"}},
			&IfStmt{
				Cond: &Identifier{"a"},
				Then: []Stmt{&PrintStmt{expr}},
			},
		},
	}

	got, err := NewCGenerator().Generate(ast)
	assert.Empty(t, got)

	var genErr *CodeGenError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, expr, genErr.Expr)
	assert.Equal(t, "print of unsupported expression: a > b", genErr.Error())
}

func TestCGeneratorNestingDepth(t *testing.T) {
	for depth := 1; depth <= 6; depth++ {
		stmt := Stmt(&PrintStmt{&LiteralExpr{LiteralString, "deep"}})
		for i := 0; i < depth; i++ {
			stmt = &IfStmt{
				Cond: &Identifier{"a"},
				Then: []Stmt{stmt},
			}
		}

		got, err := NewCGenerator().Generate(&AST{Statements: []Stmt{stmt}})
		require.NoError(t, err)

		assert.Equal(t, depth, strings.Count(got, "if (a) {"))
		assert.Equal(t, depth, strings.Count(got, "} else {"))

		for level := 1; level <= depth; level++ {
			indent := strings.Repeat(" ", level*indentWidth)
			assert.Contains(t, got, "\n"+indent+"if (a) {\n", "level %d", level)
		}

		indent := strings.Repeat(" ", (depth+1)*indentWidth)
		assert.Contains(t, got, fmt.Sprintf("\n%sprintf(\"deep\\n\");\n", indent))
	}
}

func TestCGeneratorReuse(t *testing.T) {
	g := NewCGenerator()
	ast := &AST{Statements: []Stmt{&PrintStmt{&LiteralExpr{LiteralNumber, "1"}}}}

	first, err := g.Generate(ast)
	require.NoError(t, err)

	second, err := g.Generate(ast)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
