package env

import (
	"errors"
	"fmt"
)

var ErrUndefined = errors.New("undefined variable")

// Env is a scope of named values chained to its enclosing scope.
type Env[T any] struct {
	parent *Env[T]
	values map[string]T
}

func Empty[T any]() *Env[T] {
	return Enclosed[T](nil)
}

func Enclosed[T any](parent *Env[T]) *Env[T] {
	return &Env[T]{
		parent: parent,
		values: make(map[string]T),
	}
}

// Define binds key in the current scope, replacing any previous value
// defined in that same scope.
func (e *Env[T]) Define(key string, value T) {
	e.values[key] = value
}

// Assign replaces the value of key in the nearest scope that defines it. It
// never creates a new binding.
func (e *Env[T]) Assign(key string, value T) error {
	for curr := e; curr != nil; curr = curr.parent {
		if _, ok := curr.values[key]; ok {
			curr.values[key] = value
			return nil
		}
	}
	return fmt.Errorf("%s: %w", key, ErrUndefined)
}

func (e *Env[T]) Resolve(key string) (T, error) {
	for curr := e; curr != nil; curr = curr.parent {
		if v, ok := curr.values[key]; ok {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%s: %w", key, ErrUndefined)
}

func (e *Env[T]) Has(key string) bool {
	_, err := e.Resolve(key)
	return err == nil
}
