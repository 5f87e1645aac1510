package ssc

type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens: tokens,
	}
}

// Parse builds the AST for a token sequence produced by the Lexer.
func Parse(tokens []Token) (*AST, error) {
	return NewParser(tokens).Run()
}

// Run parses top level statements until the tokens run out. The first error
// aborts parsing and no AST is returned.
func (p *Parser) Run() (*AST, error) {
	ast := &AST{}

	for p.peek().Typ != TokenEOF {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}

		ast.Statements = append(ast.Statements, stmt)
	}

	return ast, nil
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Typ: TokenEOF}
	}

	return p.tokens[p.pos]
}

func (p *Parser) next() Token {
	tok := p.peek()
	if tok.Typ != TokenEOF {
		p.pos++
	}

	return tok
}

func (p *Parser) expect(typ TokenType) (Token, error) {
	tok := p.next()
	if tok.Typ != typ {
		return tok, p.errorf(typ.String(), tok, "unexpected token")
	}

	return tok, nil
}

func (p *Parser) check(typ TokenType) bool {
	return p.peek().Typ == typ
}

func (p *Parser) errorf(expected string, got Token, reason string) error {
	return &ParseError{
		Expected: expected,
		Got:      got,
		Reason:   reason,
	}
}

func (p *Parser) statement() (Stmt, error) {
	switch tok := p.peek(); tok.Typ {
	case TokenInt:
		return p.varDecl()
	case TokenIf:
		return p.ifStmt()
	case TokenPrint:
		return p.printStmt()
	default:
		return nil, p.errorf("", tok, "invalid statement")
	}
}

func (p *Parser) varDecl() (Stmt, error) {
	p.next() // int keyword

	name, err := p.expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenAssign); err != nil {
		return nil, err
	}

	value, err := p.expr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}

	return &VariableDecl{
		Type:  TypeInt,
		Name:  name.Value,
		Value: value,
	}, nil
}

func (p *Parser) printStmt() (Stmt, error) {
	p.next() // print keyword

	if _, err := p.expect(TokenOpenParentheses); err != nil {
		return nil, err
	}

	value, err := p.expr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenCloseParentheses); err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}

	return &PrintStmt{Value: value}, nil
}

func (p *Parser) ifStmt() (Stmt, error) {
	p.next() // if keyword

	if _, err := p.expect(TokenOpenParentheses); err != nil {
		return nil, err
	}

	cond, err := p.expr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenCloseParentheses); err != nil {
		return nil, err
	}

	then, err := p.blockStmt()
	if err != nil {
		return nil, err
	}

	var els []Stmt
	if p.check(TokenElse) {
		p.next()

		els, err = p.blockStmt()
		if err != nil {
			return nil, err
		}
	}

	return &IfStmt{
		Cond: cond,
		Then: then,
		Else: els,
	}, nil
}

func (p *Parser) blockStmt() ([]Stmt, error) {
	if _, err := p.expect(TokenOpenCurly); err != nil {
		return nil, err
	}

	// An exhausted token stream makes statement() fail, so this always ends
	var stmts []Stmt
	for !p.check(TokenCloseCurly) {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)
	}

	p.next() // Skip the closing curly
	return stmts, nil
}

func (p *Parser) expr() (Expr, error) {
	lhs, err := p.primary()
	if err != nil {
		return nil, err
	}

	// Only one relation per expression, a > b > c is rejected by the caller's
	// next expect
	tok := p.peek()
	if tok.Typ != TokenGreater && tok.Typ != TokenLess {
		return lhs, nil
	}

	p.next()

	op := BinaryGreater
	if tok.Typ == TokenLess {
		op = BinaryLess
	}

	rhs, err := p.primary()
	if err != nil {
		return nil, err
	}

	return &BinaryExpr{
		Operation: op,
		Op1:       lhs,
		Op2:       rhs,
	}, nil
}

func (p *Parser) primary() (Expr, error) {
	switch tok := p.next(); tok.Typ {
	case TokenNumber:
		return &LiteralExpr{
			Typ:   LiteralNumber,
			Value: tok.Value,
		}, nil
	case TokenString:
		return &LiteralExpr{
			Typ:   LiteralString,
			Value: tok.Value,
		}, nil
	case TokenIdentifier:
		return &Identifier{
			Name: tok.Value,
		}, nil
	default:
		return nil, p.errorf("", tok, "unexpected token")
	}
}
