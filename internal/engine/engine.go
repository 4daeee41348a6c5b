// Released under an MIT license. See LICENSE.

// Package engine evaluates bind commands against a stack of scopes.
package engine

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/michaelmacinnis/bind/internal/interface/reference"
	"github.com/michaelmacinnis/bind/internal/interface/scope"
	"github.com/michaelmacinnis/bind/internal/reader"
	"github.com/michaelmacinnis/bind/internal/type/env"
	"github.com/michaelmacinnis/bind/internal/type/errunbound"
	"github.com/michaelmacinnis/bind/internal/type/frame"
)

// ErrUnknown is returned for a command that does not exist.
var ErrUnknown = errors.New("unknown command")

// T (engine) is a facade in front of the machinery for evaluating commands.
type T struct {
	frame  *frame.T
	global scope.T
	labels map[string]scope.T
	out    io.Writer
}

// New creates a new T that writes results to out.
func New(out io.Writer) *T {
	global := env.New(nil, nil)

	return &T{
		frame:  frame.New(global),
		global: global,
		labels: map[string]scope.T{"global": global},
		out:    out,
	}
}

// Commands returns the sorted names of the available commands.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for k := range commands {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Evaluate runs the command on line. Blank lines and comments do nothing.
func (e *T) Evaluate(line string) error {
	words, err := reader.Scan(line)
	if err != nil {
		return err
	}

	if len(words) == 0 {
		return nil
	}

	name := words[0].Text

	c, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknown, name)
	}

	err = c.run(e, words[1:])
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return nil
}

// Global returns the top-level scope.
func (e *T) Global() scope.T {
	return e.global
}

// Scope returns the current scope.
func (e *T) Scope() scope.T {
	return e.frame.Scope()
}

// resolve looks for k in the current scope and the scopes enclosing it
// and then in the scopes the current scope uses.
func (e *T) resolve(ns, k string) (scope.T, reference.T, error) {
	s, r := e.frame.Resolve(ns, k)
	if r == nil {
		return nil, nil, errunbound.New(ns, k)
	}

	return s, r, nil
}

func (e *T) println(a ...interface{}) {
	fmt.Fprintln(e.out, a...)
}
