package eval

import "fmt"

type Kind rune

const (
	EOF Kind = -(iota + 1)

	Lparen
	Rparen
	Lbrace
	Rbrace
	Comma
	Dot
	Sub
	Add
	Semicolon
	Div
	Mul

	Not
	Ne
	Assign
	Eq
	Gt
	Ge
	Lt
	Le

	Ident
	String
	Number

	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While
)

var keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"fun":    Fun,
	"for":    For,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

var kindNames = map[Kind]string{
	EOF:       "EOF",
	Lparen:    "LEFT_PAREN",
	Rparen:    "RIGHT_PAREN",
	Lbrace:    "LEFT_BRACE",
	Rbrace:    "RIGHT_BRACE",
	Comma:     "COMMA",
	Dot:       "DOT",
	Sub:       "MINUS",
	Add:       "PLUS",
	Semicolon: "SEMICOLON",
	Div:       "SLASH",
	Mul:       "STAR",
	Not:       "BANG",
	Ne:        "BANG_EQUAL",
	Assign:    "EQUAL",
	Eq:        "EQUAL_EQUAL",
	Gt:        "GREATER",
	Ge:        "GREATER_EQUAL",
	Lt:        "LESS",
	Le:        "LESS_EQUAL",
	Ident:     "IDENTIFIER",
	String:    "STRING",
	Number:    "NUMBER",
	And:       "AND",
	Class:     "CLASS",
	Else:      "ELSE",
	False:     "FALSE",
	Fun:       "FUN",
	For:       "FOR",
	If:        "IF",
	Nil:       "NIL",
	Or:        "OR",
	Print:     "PRINT",
	Return:    "RETURN",
	Super:     "SUPER",
	This:      "THIS",
	True:      "TRUE",
	Var:       "VAR",
	While:     "WHILE",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("KIND(%d)", int(k))
}

// Token is one lexical unit. Literal holds a float64 for numbers, the unquoted
// text for strings and nil for everything else.
type Token struct {
	Type    Kind
	Lexeme  string
	Literal any
	Line    int
}

func (t Token) String() string {
	lit := "nil"
	if t.Literal != nil {
		lit = fmt.Sprint(t.Literal)
	}
	return fmt.Sprintf("%s %s %s", t.Type, t.Lexeme, lit)
}
