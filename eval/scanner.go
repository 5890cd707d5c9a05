package eval

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Scan turns src into tokens. Lexical errors are sent to rep and do not stop
// the scan; the returned error only tells whether one happened.
func Scan(src string, rep Reporter) ([]Token, error) {
	return NewScanner(src, rep).Tokens()
}

type Scanner struct {
	input string
	start int
	curr  int
	line  int

	rep    Reporter
	errors int
	done   bool
}

func NewScanner(src string, rep Reporter) *Scanner {
	if rep == nil {
		rep = NewReporter(nil)
	}
	return &Scanner{
		input: src,
		line:  1,
		rep:   rep,
	}
}

func (s *Scanner) Tokens() ([]Token, error) {
	var list []Token
	for {
		tok := s.Scan()
		list = append(list, tok)
		if tok.Type == EOF {
			break
		}
	}
	return list, s.Err()
}

// Err tells whether lexical errors were reported so far.
func (s *Scanner) Err() error {
	if s.errors > 0 {
		return fmt.Errorf("%d %w(s)", s.errors, ErrLexical)
	}
	return nil
}

// Scan returns the next token of the input. Once the input is exhausted, it
// keeps returning EOF.
func (s *Scanner) Scan() Token {
	for !s.atEnd() {
		s.start = s.curr
		if tok, ok := s.scanToken(); ok {
			return tok
		}
	}
	s.start = s.curr
	s.done = true
	return s.token(EOF, nil)
}

// Done reports whether the EOF token was returned.
func (s *Scanner) Done() bool {
	return s.done
}

func (s *Scanner) scanToken() (Token, bool) {
	c := s.advance()
	switch c {
	case lparen:
		return s.token(Lparen, nil), true
	case rparen:
		return s.token(Rparen, nil), true
	case lbrace:
		return s.token(Lbrace, nil), true
	case rbrace:
		return s.token(Rbrace, nil), true
	case comma:
		return s.token(Comma, nil), true
	case dot:
		return s.token(Dot, nil), true
	case minus:
		return s.token(Sub, nil), true
	case plus:
		return s.token(Add, nil), true
	case semicolon:
		return s.token(Semicolon, nil), true
	case star:
		return s.token(Mul, nil), true
	case bang:
		return s.either(equal, Ne, Not), true
	case equal:
		return s.either(equal, Eq, Assign), true
	case langle:
		return s.either(equal, Le, Lt), true
	case rangle:
		return s.either(equal, Ge, Gt), true
	case slash:
		if s.match(slash) {
			s.skipComment()
			return Token{}, false
		}
		return s.token(Div, nil), true
	case space, cr, tab:
		return Token{}, false
	case nl:
		s.line++
		return Token{}, false
	case dquote:
		return s.scanString()
	default:
		switch {
		case isDigit(c):
			return s.scanNumber(), true
		case isLetter(c):
			return s.scanIdent(), true
		}
		s.invalidChar()
		return Token{}, false
	}
}

func (s *Scanner) either(next byte, yes, no Kind) Token {
	if s.match(next) {
		return s.token(yes, nil)
	}
	return s.token(no, nil)
}

func (s *Scanner) skipComment() {
	for s.peek() != nl && !s.atEnd() {
		s.advance()
	}
}

func (s *Scanner) scanString() (Token, bool) {
	for s.peek() != dquote && !s.atEnd() {
		if s.peek() == nl {
			s.line++
		}
		s.advance()
	}
	if s.atEnd() {
		s.error("Unterminated string.")
		return Token{}, false
	}
	s.advance()
	value := s.input[s.start+1 : s.curr-1]
	return s.token(String, value), true
}

func (s *Scanner) scanNumber() Token {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == dot && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	value, _ := strconv.ParseFloat(s.input[s.start:s.curr], 64)
	return s.token(Number, value)
}

func (s *Scanner) scanIdent() Token {
	for isAlpha(s.peek()) {
		s.advance()
	}
	kind, ok := keywords[s.input[s.start:s.curr]]
	if !ok {
		kind = Ident
	}
	return s.token(kind, nil)
}

// invalidChar reports the character at start, consuming the rest of a
// multi-byte sequence so that one rune yields one diagnostic.
func (s *Scanner) invalidChar() {
	_, n := utf8.DecodeRuneInString(s.input[s.start:])
	if n > 1 {
		s.curr = s.start + n
	}
	s.error("Unexpected character.")
}

func (s *Scanner) error(msg string) {
	s.errors++
	s.rep.Report(s.line, "", msg)
}

func (s *Scanner) token(kind Kind, literal any) Token {
	return Token{
		Type:    kind,
		Lexeme:  s.input[s.start:s.curr],
		Literal: literal,
		Line:    s.line,
	}
}

func (s *Scanner) atEnd() bool {
	return s.curr >= len(s.input)
}

func (s *Scanner) advance() byte {
	c := s.input[s.curr]
	s.curr++
	return c
}

func (s *Scanner) match(want byte) bool {
	if s.atEnd() || s.input[s.curr] != want {
		return false
	}
	s.curr++
	return true
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.input[s.curr]
}

func (s *Scanner) peekNext() byte {
	if s.curr+1 >= len(s.input) {
		return 0
	}
	return s.input[s.curr+1]
}

const (
	lbrace     = '{'
	rbrace     = '}'
	lparen     = '('
	rparen     = ')'
	langle     = '<'
	rangle     = '>'
	space      = ' '
	tab        = '\t'
	nl         = '\n'
	cr         = '\r'
	dquote     = '"'
	underscore = '_'
	dot        = '.'
	plus       = '+'
	minus      = '-'
	star       = '*'
	slash      = '/'
	bang       = '!'
	equal      = '='
	comma      = ','
	semicolon  = ';'
)

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == underscore
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return isLetter(c) || isDigit(c)
}
