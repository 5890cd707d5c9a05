package eval

import "fmt"

// ParseString scans and parses src. When the scan fails, parsing still runs
// so that syntax errors are reported too, but the lexical error is returned.
func ParseString(src string, rep Reporter) ([]Stmt, error) {
	tokens, serr := Scan(src, rep)
	list, perr := Parse(tokens, rep)
	if serr != nil {
		return list, serr
	}
	return list, perr
}

// Parse builds the statements of tokens. Every syntax error is sent to rep;
// declarations that failed to parse are left out of the result.
func Parse(tokens []Token, rep Reporter) ([]Stmt, error) {
	return NewParser(tokens, rep).Parse()
}

type Parser struct {
	tokens []Token
	pos    int
	curr   Token

	rep    Reporter
	errors int
}

func NewParser(tokens []Token, rep Reporter) *Parser {
	if rep == nil {
		rep = NewReporter(nil)
	}
	if n := len(tokens); n == 0 || tokens[n-1].Type != EOF {
		var line int
		if n > 0 {
			line = tokens[n-1].Line
		}
		tokens = append(tokens[:n:n], Token{Type: EOF, Line: line})
	}
	p := Parser{
		tokens: tokens,
		curr:   tokens[0],
		rep:    rep,
	}
	return &p
}

func (p *Parser) Parse() ([]Stmt, error) {
	var list []Stmt
	for !p.done() {
		if s, ok := p.declaration(); ok {
			list = append(list, s)
		}
	}
	if p.errors > 0 {
		return list, fmt.Errorf("%d %w(s)", p.errors, ErrSyntax)
	}
	return list, nil
}

// declaration parses one declaration slot. On failure, the error was already
// reported and the parser is synchronized on the next statement.
func (p *Parser) declaration() (Stmt, bool) {
	s, err := p.parseDeclaration()
	if err != nil {
		p.sync()
		return nil, false
	}
	return s, true
}

func (p *Parser) parseDeclaration() (Stmt, error) {
	if p.is(Var) {
		return p.parseVar()
	}
	return p.parseStatement()
}

func (p *Parser) parseVar() (Stmt, error) {
	p.next()
	name, err := p.expect(Ident, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	stmt := VarStmt{
		Name: name,
	}
	if p.is(Assign) {
		p.next()
		if stmt.Init, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(Semicolon, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseStatement() (Stmt, error) {
	switch p.curr.Type {
	case Print:
		return p.parsePrint()
	case If:
		return p.parseIf()
	case Lbrace:
		return p.parseBlock()
	default:
		return p.parseExpressionStmt()
	}
}

func (p *Parser) parsePrint() (Stmt, error) {
	p.next()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Semicolon, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return PrintStmt{Expr: expr}, nil
}

func (p *Parser) parseExpressionStmt() (Stmt, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Semicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return Expression{Expr: expr}, nil
}

func (p *Parser) parseBlock() (Stmt, error) {
	p.next()
	var b Block
	for !p.is(Rbrace) && !p.done() {
		if s, ok := p.declaration(); ok {
			b.List = append(b.List, s)
		}
	}
	if _, err := p.expect(Rbrace, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return b, nil
}

func (p *Parser) parseIf() (Stmt, error) {
	p.next()
	if _, err := p.expect(Lparen, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	var (
		stmt IfStmt
		err  error
	)
	if stmt.Cdt, err = p.parseExpression(); err != nil {
		return nil, err
	}
	if _, err := p.expect(Rparen, "Expect ')' after if condition."); err != nil {
		return nil, err
	}
	if stmt.Csq, err = p.parseStatement(); err != nil {
		return nil, err
	}
	if p.is(Else) {
		p.next()
		if stmt.Alt, err = p.parseStatement(); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *Parser) parseExpression() (Expr, error) {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() (Expr, error) {
	left, err := p.parseOr()
	if err != nil || !p.is(Assign) {
		return left, err
	}
	equals := p.curr
	p.next()
	value, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if v, ok := left.(Variable); ok {
		return Assignment{Name: v.Name, Value: value}, nil
	}
	p.error(equals, "Invalid assignment target.")
	return value, nil
}

func (p *Parser) parseOr() (Expr, error) {
	return p.parseLogical(p.parseAnd, Or)
}

func (p *Parser) parseAnd() (Expr, error) {
	return p.parseLogical(p.parseEquality, And)
}

func (p *Parser) parseEquality() (Expr, error) {
	return p.parseBinary(p.parseComparison, Ne, Eq)
}

func (p *Parser) parseComparison() (Expr, error) {
	return p.parseBinary(p.parseTerm, Gt, Ge, Lt, Le)
}

func (p *Parser) parseTerm() (Expr, error) {
	return p.parseBinary(p.parseFactor, Sub, Add)
}

func (p *Parser) parseFactor() (Expr, error) {
	return p.parseBinary(p.parseUnary, Div, Mul)
}

// parseBinary folds a left associative sequence of operands separated by
// one of ops.
func (p *Parser) parseBinary(operand func() (Expr, error), ops ...Kind) (Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for p.is(ops...) {
		op := p.curr
		p.next()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = Binary{
			Left:  left,
			Op:    op,
			Right: right,
		}
	}
	return left, nil
}

func (p *Parser) parseLogical(operand func() (Expr, error), kind Kind) (Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for p.is(kind) {
		op := p.curr
		p.next()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = Logical{
			Left:  left,
			Op:    op,
			Right: right,
		}
	}
	return left, nil
}

func (p *Parser) parseUnary() (Expr, error) {
	if !p.is(Not, Sub) {
		return p.parsePrimary()
	}
	op := p.curr
	p.next()
	right, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return Unary{Op: op, Right: right}, nil
}

func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.curr
	switch tok.Type {
	case False:
		p.next()
		return Literal{Value: false}, nil
	case True:
		p.next()
		return Literal{Value: true}, nil
	case Nil:
		p.next()
		return Literal{}, nil
	case Number, String:
		p.next()
		return Literal{Value: tok.Literal}, nil
	case Ident:
		p.next()
		return Variable{Name: tok}, nil
	case Lparen:
		return p.parseGroup()
	default:
		return nil, p.error(tok, "Expect expression.")
	}
}

func (p *Parser) parseGroup() (Expr, error) {
	p.next()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Rparen, "Expect ')' after expression."); err != nil {
		return nil, err
	}
	return Grouping{Expr: expr}, nil
}

// sync discards tokens until the start of what looks like the next
// statement.
func (p *Parser) sync() {
	p.next()
	for !p.done() {
		if p.prev().Type == Semicolon {
			return
		}
		switch p.curr.Type {
		case Class, Fun, Var, For, If, While, Print, Return:
			return
		}
		p.next()
	}
}

func (p *Parser) expect(kind Kind, msg string) (Token, error) {
	if !p.is(kind) {
		return p.curr, p.error(p.curr, msg)
	}
	tok := p.curr
	p.next()
	return tok, nil
}

func (p *Parser) error(tok Token, msg string) error {
	p.errors++
	err := &ParseError{
		Token:   tok,
		Message: msg,
	}
	p.rep.Report(tok.Line, locate(tok), msg)
	return err
}

func (p *Parser) is(kinds ...Kind) bool {
	for _, k := range kinds {
		if p.curr.Type == k {
			return true
		}
	}
	return false
}

func (p *Parser) done() bool {
	return p.is(EOF)
}

func (p *Parser) prev() Token {
	if p.pos == 0 {
		return p.curr
	}
	return p.tokens[p.pos-1]
}

func (p *Parser) next() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.curr = p.tokens[p.pos]
}
