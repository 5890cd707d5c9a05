package eval

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/midbel/lox/env"
)

type Interpreter struct {
	out     io.Writer
	rep     Reporter
	globals *env.Env[Value]
}

// NewInterpreter creates an interpreter writing print output to out and
// runtime errors to rep. Nil values default to stdout and a reporter on
// stderr.
func NewInterpreter(out io.Writer, rep Reporter) *Interpreter {
	if out == nil {
		out = os.Stdout
	}
	if rep == nil {
		rep = NewReporter(nil)
	}
	return &Interpreter{
		out:     out,
		rep:     rep,
		globals: env.Empty[Value](),
	}
}

func (i *Interpreter) Globals() *env.Env[Value] {
	return i.globals
}

// Interpret executes list in order against the global scope. The first
// runtime error stops the execution; it is reported once and returned.
func (i *Interpreter) Interpret(list []Stmt) error {
	for _, s := range list {
		if err := i.execute(s, i.globals); err != nil {
			var rerr *RuntimeError
			if errors.As(err, &rerr) {
				i.rep.Report(rerr.Line, "", rerr.Message)
			} else {
				i.rep.Report(0, "", err.Error())
			}
			return err
		}
	}
	return nil
}

func (i *Interpreter) execute(s Stmt, ev *env.Env[Value]) error {
	switch s := s.(type) {
	case Expression:
		_, err := i.evaluate(s.Expr, ev)
		return err
	case PrintStmt:
		return i.executePrint(s, ev)
	case VarStmt:
		return i.executeVar(s, ev)
	case Block:
		return i.executeBlock(s, env.Enclosed(ev))
	case IfStmt:
		return i.executeIf(s, ev)
	case nil:
		return fmt.Errorf("missing statement: %w", ErrInternal)
	default:
		return fmt.Errorf("%T: unsupported statement: %w", s, ErrInternal)
	}
}

func (i *Interpreter) executePrint(s PrintStmt, ev *env.Env[Value]) error {
	v, err := i.evaluate(s.Expr, ev)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(i.out, Stringify(v))
	return err
}

func (i *Interpreter) executeVar(s VarStmt, ev *env.Env[Value]) error {
	var (
		val Value
		err error
	)
	if s.Init != nil {
		if val, err = i.evaluate(s.Init, ev); err != nil {
			return err
		}
	}
	ev.Define(s.Name.Lexeme, val)
	return nil
}

// executeBlock runs every statement of b in sub. The enclosing scope is
// never modified: it is given back to the caller by returning.
func (i *Interpreter) executeBlock(b Block, sub *env.Env[Value]) error {
	for _, s := range b.List {
		if err := i.execute(s, sub); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) executeIf(s IfStmt, ev *env.Env[Value]) error {
	v, err := i.evaluate(s.Cdt, ev)
	if err != nil {
		return err
	}
	if isTrue(v) {
		return i.execute(s.Csq, ev)
	}
	if s.Alt != nil {
		return i.execute(s.Alt, ev)
	}
	return nil
}

func (i *Interpreter) evaluate(e Expr, ev *env.Env[Value]) (Value, error) {
	switch e := e.(type) {
	case Literal:
		return e.Value, nil
	case Grouping:
		return i.evaluate(e.Expr, ev)
	case Unary:
		return i.evalUnary(e, ev)
	case Binary:
		return i.evalBinary(e, ev)
	case Logical:
		return i.evalLogical(e, ev)
	case Variable:
		v, err := ev.Resolve(e.Name.Lexeme)
		if err != nil {
			return nil, undefinedVariable(e.Name, err)
		}
		return v, nil
	case Assignment:
		return i.evalAssign(e, ev)
	default:
		return nil, fmt.Errorf("%T: unsupported expression: %w", e, ErrInternal)
	}
}

func (i *Interpreter) evalUnary(u Unary, ev *env.Env[Value]) (Value, error) {
	right, err := i.evaluate(u.Right, ev)
	if err != nil {
		return nil, err
	}
	switch u.Op.Type {
	case Sub:
		f, ok := right.(float64)
		if !ok {
			return nil, runtimeError(u.Op, ErrType, "Operand must be a number.")
		}
		return -f, nil
	case Not:
		return !isTrue(right), nil
	default:
		return nil, fmt.Errorf("%s: unsupported unary operator: %w", u.Op.Lexeme, ErrInternal)
	}
}

func (i *Interpreter) evalBinary(b Binary, ev *env.Env[Value]) (Value, error) {
	left, err := i.evaluate(b.Left, ev)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(b.Right, ev)
	if err != nil {
		return nil, err
	}
	switch b.Op.Type {
	case Eq:
		return isEqual(left, right), nil
	case Ne:
		return !isEqual(left, right), nil
	case Add:
		return add(b.Op, left, right)
	}

	x, y, err := numbers(b.Op, left, right)
	if err != nil {
		return nil, err
	}
	switch b.Op.Type {
	case Sub:
		return x - y, nil
	case Mul:
		return x * y, nil
	case Div:
		return x / y, nil
	case Gt:
		return x > y, nil
	case Ge:
		return x >= y, nil
	case Lt:
		return x < y, nil
	case Le:
		return x <= y, nil
	default:
		return nil, fmt.Errorf("%s: unsupported binary operator: %w", b.Op.Lexeme, ErrInternal)
	}
}

func (i *Interpreter) evalLogical(g Logical, ev *env.Env[Value]) (Value, error) {
	left, err := i.evaluate(g.Left, ev)
	if err != nil {
		return nil, err
	}
	switch g.Op.Type {
	case Or:
		if isTrue(left) {
			return left, nil
		}
	case And:
		if !isTrue(left) {
			return left, nil
		}
	default:
		return nil, fmt.Errorf("%s: unsupported logical operator: %w", g.Op.Lexeme, ErrInternal)
	}
	return i.evaluate(g.Right, ev)
}

func (i *Interpreter) evalAssign(a Assignment, ev *env.Env[Value]) (Value, error) {
	v, err := i.evaluate(a.Value, ev)
	if err != nil {
		return nil, err
	}
	if err := ev.Assign(a.Name.Lexeme, v); err != nil {
		return nil, undefinedVariable(a.Name, err)
	}
	return v, nil
}

func add(op Token, left, right Value) (Value, error) {
	switch x := left.(type) {
	case float64:
		if y, ok := right.(float64); ok {
			return x + y, nil
		}
	case string:
		if y, ok := right.(string); ok {
			return x + y, nil
		}
	}
	return nil, runtimeError(op, ErrType, "Operands must be two numbers or two strings.")
}

func numbers(op Token, left, right Value) (float64, float64, error) {
	x, ok1 := left.(float64)
	y, ok2 := right.(float64)
	if !ok1 || !ok2 {
		return 0, 0, runtimeError(op, ErrType, "Operands must be numbers.")
	}
	return x, y, nil
}

func undefinedVariable(name Token, err error) error {
	if !errors.Is(err, env.ErrUndefined) {
		return err
	}
	return runtimeError(name, err, fmt.Sprintf("Undefined variable '%s'.", name.Lexeme))
}
