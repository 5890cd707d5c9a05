package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/midbel/lox/config"
	"github.com/midbel/lox/eval"
	"github.com/midbel/lox/history"
)

// session keeps the global scope alive between the lines of the REPL.
type session struct {
	rep    eval.Reporter
	interp *eval.Interpreter
}

func newSession(out, errw io.Writer) *session {
	rep := eval.NewReporter(errw)
	return &session{
		rep:    rep,
		interp: eval.NewInterpreter(out, rep),
	}
}

// Run executes one line of input. Errors were already reported when it
// returns.
func (s *session) Run(line string) error {
	list, err := eval.ParseString(line, s.rep)
	if err != nil {
		return err
	}
	return s.interp.Interpret(list)
}

func repl(cfg config.Config) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	store, err := openHistory(cfg.History, ln.AppendHistory)
	if err != nil {
		fmt.Fprintln(os.Stderr, "history disabled:", err)
	} else {
		defer store.Close()
	}

	sess := newSession(os.Stdout, os.Stderr)
	for {
		line, err := ln.Prompt(cfg.Prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			if !errors.Is(err, io.EOF) {
				fmt.Fprintln(os.Stderr, err)
			}
			fmt.Println()
			return exitOk
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case ":quit":
			return exitOk
		}
		ln.AppendHistory(line)
		if store != nil {
			if err := store.Append(line); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		sess.Run(line)
	}
}

// openHistory opens the history store and hands each saved line to add, the
// oldest first.
func openHistory(cfg config.History, add func(string)) (*history.Store, error) {
	store, err := history.Open(cfg.File, cfg.Size)
	if err != nil {
		return nil, err
	}
	lines, err := store.Lines()
	if err != nil {
		store.Close()
		return nil, err
	}
	for _, line := range lines {
		add(line)
	}
	return store, nil
}
