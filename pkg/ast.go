package ssc

import "fmt"

type AST struct {
	Statements []Stmt
}

// Stmt is one of *VariableDecl, *PrintStmt or *IfStmt.
type Stmt interface {
	stmtNode()
}

// Expr is one of *LiteralExpr, *Identifier or *BinaryExpr.
type Expr interface {
	fmt.Stringer
	exprNode()
}

const TypeInt = "int"

type VariableDecl struct {
	Type  string
	Name  string
	Value Expr
}

type PrintStmt struct {
	Value Expr
}

// IfStmt always owns an else branch; it is empty when the source had none.
type IfStmt struct {
	Cond Expr
	Then []Stmt
	Else []Stmt
}

func (*VariableDecl) stmtNode() {}
func (*PrintStmt) stmtNode()    {}
func (*IfStmt) stmtNode()       {}

type Identifier struct {
	Name string
}

type BinaryOp string

const (
	BinaryGreater BinaryOp = ">"
	BinaryLess    BinaryOp = "<"
)

type BinaryExpr struct {
	Operation BinaryOp
	Op1       Expr
	Op2       Expr
}

type LiteralType int

const (
	LiteralNumber LiteralType = iota
	LiteralString
)

type LiteralExpr struct {
	Typ   LiteralType
	Value string
}

func (*Identifier) exprNode()  {}
func (*BinaryExpr) exprNode()  {}
func (*LiteralExpr) exprNode() {}

func (e *Identifier) String() string {
	return e.Name
}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", e.Op1, e.Operation, e.Op2)
}

func (e *LiteralExpr) String() string {
	if e.Typ == LiteralString {
		return `"` + e.Value + `"`
	}

	return e.Value
}
