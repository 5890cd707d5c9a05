package eval

// Expr is implemented by the expression nodes of this file only.
type Expr interface {
	expr()
}

type Literal struct {
	Value Value
}

type Grouping struct {
	Expr Expr
}

type Unary struct {
	Op    Token
	Right Expr
}

type Binary struct {
	Left  Expr
	Op    Token
	Right Expr
}

// Logical is kept apart from Binary since its right operand is evaluated
// only when the left one does not decide the result.
type Logical struct {
	Left  Expr
	Op    Token
	Right Expr
}

type Variable struct {
	Name Token
}

type Assignment struct {
	Name  Token
	Value Expr
}

func (Literal) expr()    {}
func (Grouping) expr()   {}
func (Unary) expr()      {}
func (Binary) expr()     {}
func (Logical) expr()    {}
func (Variable) expr()   {}
func (Assignment) expr() {}

// Stmt is implemented by the statement nodes of this file only.
type Stmt interface {
	stmt()
}

type Expression struct {
	Expr Expr
}

type PrintStmt struct {
	Expr Expr
}

// VarStmt declares Name in the current scope. Init is nil when the
// declaration has no initializer.
type VarStmt struct {
	Name Token
	Init Expr
}

type Block struct {
	List []Stmt
}

type IfStmt struct {
	Cdt Expr
	Csq Stmt
	Alt Stmt
}

func (Expression) stmt() {}
func (PrintStmt) stmt()  {}
func (VarStmt) stmt()    {}
func (Block) stmt()      {}
func (IfStmt) stmt()     {}
