// Released under an MIT license. See LICENSE.

/*
Bind is an interactive workbench for lexical environments. It evaluates
one command per line against a stack of scopes:

    define x 1
    enter y=2
    set x 3
    describe
    leave
    get x

Type help for the list of commands.
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/michaelmacinnis/bind/internal/engine"
	"github.com/michaelmacinnis/bind/internal/system/options"
	"github.com/michaelmacinnis/bind/internal/ui"
)

func main() {
	options.Parse()

	os.Exit(run(engine.New(os.Stdout)))
}

func run(e *engine.T) int {
	status := 0

	if c := options.Command(); c != "" {
		status = report(e.Evaluate(c))
	} else if s := options.Script(); s != "" {
		f, err := os.Open(s)
		if err != nil {
			return report(err)
		}

		status = source(e, f)

		f.Close()
	}

	if options.Interactive() {
		ui.Run(e, engine.Commands())
		return 0
	}

	if options.Command() == "" && options.Script() == "" {
		status = source(e, os.Stdin)
	}

	return status
}

func report(err error) int {
	if err == nil {
		return 0
	}

	fmt.Fprintln(os.Stderr, err.Error())

	return 1
}

func source(e *engine.T, r io.Reader) int {
	status := 0

	s := bufio.NewScanner(r)
	for s.Scan() {
		if report(e.Evaluate(s.Text())) != 0 {
			status = 1
		}
	}

	if report(s.Err()) != 0 {
		status = 1
	}

	return status
}
