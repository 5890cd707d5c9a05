package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/midbel/lox/config"
	"github.com/midbel/lox/eval"
)

const (
	exitOk      = 0
	exitUsage   = 64
	exitData    = 65
	exitNoInput = 66
	exitRuntime = 70
)

func main() {
	var (
		tokens = flag.Bool("tokens", false, "print tokens of script")
		ast    = flag.Bool("ast", false, "print syntax tree of script")
		file   = flag.String("config", config.DefaultFile, "configuration file")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: lox [-tokens] [-ast] [-config file] [script]")
	}
	flag.Parse()

	switch flag.NArg() {
	case 0:
		cfg, err := config.Load(*file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitUsage)
		}
		os.Exit(repl(cfg))
	case 1:
	default:
		flag.Usage()
		os.Exit(exitUsage)
	}

	src, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitNoInput)
	}
	switch {
	case *tokens:
		os.Exit(scanFile(string(src), os.Stdout))
	case *ast:
		os.Exit(parseFile(string(src), os.Stdout))
	default:
		os.Exit(runFile(string(src), os.Stdout, os.Stderr))
	}
}

func scanFile(src string, w io.Writer) int {
	s := eval.NewScanner(src, eval.NewReporter(os.Stderr))
	for !s.Done() {
		fmt.Fprintln(w, s.Scan())
	}
	return exitCode(s.Err())
}

func parseFile(src string, w io.Writer) int {
	list, err := eval.ParseString(src, eval.NewReporter(os.Stderr))
	if err != nil {
		return exitCode(err)
	}
	fmt.Fprint(w, eval.Format(list))
	return exitOk
}

func runFile(src string, out, errw io.Writer) int {
	rep := eval.NewReporter(errw)
	list, err := eval.ParseString(src, rep)
	if err != nil {
		return exitCode(err)
	}
	return exitCode(eval.NewInterpreter(out, rep).Interpret(list))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOk
	case errors.Is(err, eval.ErrLexical), errors.Is(err, eval.ErrSyntax):
		return exitData
	default:
		return exitRuntime
	}
}
