package ssc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// ValueLookup maps variable names to their stack slots. Branch scopes are
// created with Inherit so their declarations do not leak outwards.
type ValueLookup struct {
	vals map[string]value.Value
}

func NewValueLookup() *ValueLookup {
	return &ValueLookup{
		vals: make(map[string]value.Value),
	}
}

func (l *ValueLookup) Inherit(t2 *ValueLookup) {
	for k, v := range t2.vals {
		l.Set(k, v)
	}
}

func (l *ValueLookup) Get(id string) (value.Value, bool) {
	val, ok := l.vals[id]
	return val, ok
}

func (l *ValueLookup) Set(id string, val value.Value) {
	l.vals[id] = val
}

type LLVMIRBuilder struct {
	mod     *ir.Module
	fn      *ir.Func
	block   *ir.Block
	values  *ValueLookup
	printf  *ir.Func
	strings map[string]constant.Constant
	labels  int
}

func NewLLVMIRBuilder() *LLVMIRBuilder {
	builder := &LLVMIRBuilder{
		mod:     ir.NewModule(),
		values:  NewValueLookup(),
		strings: make(map[string]constant.Constant),
	}

	defineBuiltins(builder)
	return builder
}

func (b *LLVMIRBuilder) main(stmts []Stmt) error {
	b.fn = b.mod.NewFunc("main", types.I32)
	b.block = b.fn.NewBlock("entry")

	if err := b.statements(stmts); err != nil {
		return err
	}

	b.block.NewRet(constant.NewInt(types.I32, 0))
	return nil
}

func (b *LLVMIRBuilder) statements(stmts []Stmt) error {
	for _, stmt := range stmts {
		if err := b.statement(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (b *LLVMIRBuilder) statement(stmt Stmt) error {
	switch s := stmt.(type) {
	case *VariableDecl:
		return b.variableDecl(s)
	case *PrintStmt:
		return b.print(s)
	case *IfStmt:
		return b.ifStmt(s)
	default:
		return &CodeGenError{Reason: fmt.Sprintf("unsupported statement %T", stmt)}
	}
}

func (b *LLVMIRBuilder) variableDecl(s *VariableDecl) error {
	v, err := b.load(s.Value)
	if err != nil {
		return err
	}

	slot := b.block.NewAlloca(types.I32)
	b.block.NewStore(v, slot)
	b.values.Set(s.Name, slot)

	return nil
}

func (b *LLVMIRBuilder) print(s *PrintStmt) error {
	switch e := s.Value.(type) {
	case *LiteralExpr:
		if e.Typ == LiteralString {
			b.block.NewCall(b.printf, b.cString(strings.ReplaceAll(e.Value, "%", "%%")+"\n"))
			return nil
		}
	case *Identifier:
	default:
		return &CodeGenError{
			Expr:   s.Value,
			Reason: "print of unsupported expression",
		}
	}

	v, err := b.load(s.Value)
	if err != nil {
		return err
	}

	b.block.NewCall(b.printf, b.cString("%d\n"), v)
	return nil
}

func (b *LLVMIRBuilder) ifStmt(s *IfStmt) error {
	cond, err := b.condition(s.Cond)
	if err != nil {
		return err
	}

	n := b.labels
	b.labels++

	thenBlock := b.fn.NewBlock(fmt.Sprintf("if.then.%d", n))
	elseBlock := b.fn.NewBlock(fmt.Sprintf("if.else.%d", n))
	endBlock := b.fn.NewBlock(fmt.Sprintf("if.end.%d", n))

	b.block.NewCondBr(cond, thenBlock, elseBlock)

	if err := b.branch(thenBlock, endBlock, s.Then); err != nil {
		return err
	}

	if err := b.branch(elseBlock, endBlock, s.Else); err != nil {
		return err
	}

	b.block = endBlock
	return nil
}

// branch emits stmts into block within a child scope and falls through to end.
func (b *LLVMIRBuilder) branch(block, end *ir.Block, stmts []Stmt) error {
	prevVals := b.values
	b.values = NewValueLookup()
	b.values.Inherit(prevVals)

	defer func() {
		b.values = prevVals
	}()

	b.block = block
	if err := b.statements(stmts); err != nil {
		return err
	}

	b.block.NewBr(end)
	return nil
}

func (b *LLVMIRBuilder) condition(expr Expr) (value.Value, error) {
	if e, ok := expr.(*BinaryExpr); ok {
		return b.compare(e)
	}

	v, err := b.load(expr)
	if err != nil {
		return nil, err
	}

	return b.block.NewICmp(enum.IPredNE, v, constant.NewInt(types.I32, 0)), nil
}

// load produces an i32 value for expr.
func (b *LLVMIRBuilder) load(expr Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *LiteralExpr:
		return b.loadLiteral(e)
	case *Identifier:
		slot, ok := b.values.Get(e.Name)
		if !ok {
			return nil, &CodeGenError{
				Expr:   e,
				Reason: "undefined variable",
			}
		}

		return b.block.NewLoad(types.I32, slot), nil
	case *BinaryExpr:
		cmp, err := b.compare(e)
		if err != nil {
			return nil, err
		}

		return b.block.NewZExt(cmp, types.I32), nil
	default:
		return nil, &CodeGenError{
			Expr:   expr,
			Reason: "unsupported expression",
		}
	}
}

func (b *LLVMIRBuilder) compare(expr *BinaryExpr) (value.Value, error) {
	v1, err := b.load(expr.Op1)
	if err != nil {
		return nil, err
	}

	v2, err := b.load(expr.Op2)
	if err != nil {
		return nil, err
	}

	switch expr.Operation {
	case BinaryGreater:
		return b.block.NewICmp(enum.IPredSGT, v1, v2), nil
	case BinaryLess:
		return b.block.NewICmp(enum.IPredSLT, v1, v2), nil
	default:
		return nil, &CodeGenError{
			Expr:   expr,
			Reason: "unexpected binary operation " + string(expr.Operation),
		}
	}
}

func (b *LLVMIRBuilder) loadLiteral(expr *LiteralExpr) (value.Value, error) {
	switch expr.Typ {
	case LiteralNumber:
		return b.loadLiteralInt(expr)
	default:
		return nil, &CodeGenError{
			Expr:   expr,
			Reason: "string literal used as a value",
		}
	}
}

func (b *LLVMIRBuilder) loadLiteralInt(expr *LiteralExpr) (value.Value, error) {
	v, err := strconv.ParseInt(expr.Value, 10, 32)
	if err != nil {
		return nil, &CodeGenError{
			Expr:   expr,
			Reason: "malformed integer literal",
		}
	}

	return constant.NewInt(types.I32, v), nil
}

// LLVMGenerator translates the AST into a textual LLVM IR module whose
// @main behaves like the C output.
type LLVMGenerator struct{}

func NewLLVMGenerator() *LLVMGenerator {
	return &LLVMGenerator{}
}

func (g *LLVMGenerator) Generate(ast *AST) (string, error) {
	builder := NewLLVMIRBuilder()
	if err := builder.main(ast.Statements); err != nil {
		return "", err
	}

	return builder.mod.String(), nil
}
