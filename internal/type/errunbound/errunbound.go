// Released under an MIT license. See LICENSE.

// Package errunbound provides bind's unbound variable error type.
package errunbound

import (
	"errors"

	"github.com/michaelmacinnis/bind/internal/interface/cell"
	"github.com/michaelmacinnis/bind/internal/interface/literal"
	"github.com/michaelmacinnis/bind/internal/type/key"
)

const name = "errunbound"

// T (errunbound) is raised when no scope in a chain binds a key.
type T struct {
	key key.T
}

// New creates a new errunbound for the name k in the namespace ns.
func New(ns, k string) *T {
	return &T{key: key.New(ns, k)}
}

// Key returns the key that could not be resolved.
func (e *T) Key() key.T {
	return e.key
}

// The errunbound type is a cell.

// Equal returns true if the cell c is an errunbound for the same key.
func (e *T) Equal(c cell.T) bool {
	return Is(c) && e.key == To(c).key
}

// Name returns the name of the errunbound type.
func (e *T) Name() string {
	return name
}

// The errunbound type is an error.

// Error returns a message naming the unbound identifier.
func (e *T) Error() string {
	kind := "variable"
	if e.key.Namespace != key.Variable {
		kind = e.key.Namespace
	}

	return "unbound " + kind + ": " + e.key.Name
}

// The errunbound type has a literal representation.

// Literal returns the literal representation of the errunbound e.
func (e *T) Literal() string {
	return "(|" + name + " " + e.key.String() + "|)"
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise is panics.
func To(c cell.T) *T {
	if e, ok := c.(*T); ok {
		return e
	}

	panic("not a " + name)
}

// As returns the errunbound wrapped by err, if there is one.
func As(err error) (*T, bool) {
	var e *T
	ok := errors.As(err, &e)

	return e, ok
}

func implements() { //nolint:deadcode,unused
	// This function is never called. Its purpose is as compiler-checked
	// documentation about the interfaces this type satisfies.
	var e T

	var c cell.T = &e
	_ = c
	var err error = &e
	_ = err
	var l literal.T = &e
	_ = l
}
