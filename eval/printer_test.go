package eval

import "testing"

func TestFormatExpr(t *testing.T) {
	expr := Binary{
		Left: Unary{
			Op:    Token{Type: Sub, Lexeme: "-", Line: 1},
			Right: Literal{Value: 123.0},
		},
		Op: Token{Type: Mul, Lexeme: "*", Line: 1},
		Right: Grouping{
			Expr: Literal{Value: 45.67},
		},
	}
	const want = "(* (- 123) (group 45.67))"
	if got := FormatExpr(expr); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatStatements(t *testing.T) {
	list := []Stmt{
		VarStmt{Name: Token{Type: Ident, Lexeme: "a"}},
		IfStmt{
			Cdt: Logical{
				Left:  Variable{Name: Token{Type: Ident, Lexeme: "a"}},
				Op:    Token{Type: Or, Lexeme: "or"},
				Right: Literal{Value: false},
			},
			Csq: Block{
				List: []Stmt{
					Expression{
						Expr: Assignment{
							Name:  Token{Type: Ident, Lexeme: "a"},
							Value: Literal{Value: "x"},
						},
					},
				},
			},
		},
		PrintStmt{Expr: Literal{}},
	}
	const want = "(var a)\n(if (or a false) (block (expr (= a \"x\"))))\n(print nil)\n"
	if got := Format(list); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
