package eval

import (
	"fmt"
	"strings"
)

// Format renders list in a parenthesized prefix form, one statement per line.
func Format(list []Stmt) string {
	var str strings.Builder
	for _, s := range list {
		str.WriteString(printStmt(s))
		str.WriteString("\n")
	}
	return str.String()
}

// FormatExpr renders e in a parenthesized prefix form, eg: (* (- 1) (group 2)).
func FormatExpr(e Expr) string {
	switch e := e.(type) {
	case Literal:
		if s, ok := e.Value.(string); ok {
			return fmt.Sprintf("%q", s)
		}
		return Stringify(e.Value)
	case Grouping:
		return parenthesize("group", e.Expr)
	case Unary:
		return parenthesize(e.Op.Lexeme, e.Right)
	case Binary:
		return parenthesize(e.Op.Lexeme, e.Left, e.Right)
	case Logical:
		return parenthesize(e.Op.Lexeme, e.Left, e.Right)
	case Variable:
		return e.Name.Lexeme
	case Assignment:
		return fmt.Sprintf("(= %s %s)", e.Name.Lexeme, FormatExpr(e.Value))
	default:
		return fmt.Sprintf("(? %T)", e)
	}
}

func printStmt(s Stmt) string {
	switch s := s.(type) {
	case Expression:
		return parenthesize("expr", s.Expr)
	case PrintStmt:
		return parenthesize("print", s.Expr)
	case VarStmt:
		if s.Init == nil {
			return fmt.Sprintf("(var %s)", s.Name.Lexeme)
		}
		return fmt.Sprintf("(var %s %s)", s.Name.Lexeme, FormatExpr(s.Init))
	case Block:
		var str strings.Builder
		str.WriteString("(block")
		for _, s := range s.List {
			str.WriteString(" ")
			str.WriteString(printStmt(s))
		}
		str.WriteString(")")
		return str.String()
	case IfStmt:
		var str strings.Builder
		str.WriteString("(if ")
		str.WriteString(FormatExpr(s.Cdt))
		str.WriteString(" ")
		str.WriteString(printStmt(s.Csq))
		if s.Alt != nil {
			str.WriteString(" ")
			str.WriteString(printStmt(s.Alt))
		}
		str.WriteString(")")
		return str.String()
	default:
		return fmt.Sprintf("(? %T)", s)
	}
}

func parenthesize(name string, list ...Expr) string {
	var str strings.Builder
	str.WriteString("(")
	str.WriteString(name)
	for _, e := range list {
		str.WriteString(" ")
		str.WriteString(FormatExpr(e))
	}
	str.WriteString(")")
	return str.String()
}
