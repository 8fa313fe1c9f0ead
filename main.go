package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"go.creack.net/gocalc/calc"
)

const prompt = "> "

func main() {
	os.Exit(run())
}

func run() int {
	log.SetFlags(0)
	log.SetPrefix("gocalc: ")

	var (
		flExpr   = flag.String("c", "", "evaluate the given expression and exit")
		flStrict = flag.Bool("strict", false, "reject input left after a complete expression")
		flDebug  = flag.Bool("debug", false, "log tokens and expression trees to stderr")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-strict] [-debug] [-c expr | file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	// An explicit -c "" is still an expression to evaluate.
	exprSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "c" {
			exprSet = true
		}
	})

	if flag.NArg() > 1 || (exprSet && flag.NArg() > 0) {
		flag.Usage()
		return 2
	}

	s := calc.NewSession()
	s.Strict = *flStrict
	if *flDebug {
		s.Debug = log.New(os.Stderr, "debug: ", 0)
	}

	if exprSet {
		result, err := s.Eval(*flExpr)
		if err != nil {
			log.Printf("%s.", err)
			return 1
		}
		fmt.Println(calc.FormatResult(result))
		return 0
	}

	var input io.Reader = os.Stdin
	p := ""
	switch {
	case flag.NArg() == 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Printf("Open input: %s.", err)
			return 1
		}
		defer func() { _ = f.Close() }()
		input = f
	case isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()):
		p = prompt
	}

	exitCode, err := calc.Run(s, input, os.Stdout, os.Stderr, p)
	if err != nil {
		log.Printf("Run: %s.", err)
		return 1
	}
	return exitCode
}
