// Command bashparse parses Bash scripts and prints them back, either as
// re-emitted source or as an AST dump. With no arguments it reads from
// stdin, or runs a small REPL on a terminal.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/elves/bashparse/pkg/expand"
	"github.com/elves/bashparse/pkg/parse"
	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"src.elv.sh/pkg/diag"
)

var (
	printAST  = pflag.Bool("print-ast", false, "print the AST instead of re-emitted source")
	braceOnly = pflag.Bool("expand", false, "brace-expand each argument word instead of parsing scripts")
)

var errColor = color.New(color.FgRed)

func main() {
	pflag.Parse()
	args := pflag.Args()
	switch {
	case *braceOnly:
		for _, arg := range args {
			w, err := parse.ParseWord("arg", arg)
			if err != nil {
				showError(arg, err)
				os.Exit(2)
			}
			for _, out := range expand.Brace(w) {
				fmt.Println(out)
			}
		}
	case len(args) > 0:
		ok := true
		for _, name := range args {
			src, err := os.ReadFile(name)
			if err != nil {
				errColor.Fprintln(os.Stderr, err)
				ok = false
				continue
			}
			ok = process(name, string(src)) && ok
		}
		if !ok {
			os.Exit(2)
		}
	case term.IsTerminal(int(os.Stdin.Fd())):
		repl()
	default:
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			errColor.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		if !process("stdin", string(src)) {
			os.Exit(2)
		}
	}
}

func repl() {
	stdin := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("bashparse> ")
		input, err := stdin.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				errColor.Fprintln(os.Stderr, err)
			}
			break
		}
		process("input", input)
	}
}

func process(name, src string) bool {
	list, err := parse.Parse(name, src)
	if err != nil {
		showError(src, err)
		return false
	}
	if *printAST {
		fmt.Println(parse.PprintAST(list))
	} else {
		fmt.Println(list)
	}
	return true
}

func showError(src string, err error) {
	errColor.Fprintln(os.Stderr, err)
	if pe, ok := err.(parse.Error); ok {
		sr := diag.NewContext(pe.Name, src, diag.PointRanging(pe.Offset))
		fmt.Fprintf(os.Stderr, "  %s\n", sr.ShowCompact(""))
	}
}
