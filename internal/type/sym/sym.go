// Released under an MIT license. See LICENSE.

// Package sym provides bind's symbol cell type.
package sym

import (
	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/bind/internal/interface/cell"
	"github.com/michaelmacinnis/bind/internal/interface/literal"
)

const name = "symbol"

// T (symbol) wraps Go's string type.
type T string

// New creates a symbol cell.
func New(v string) cell.T {
	s := T(v)
	return &s
}

// The symbol type is a cell.

// Equal returns true if c is a symbol and wraps the same string.
func (s *T) Equal(c cell.T) bool {
	return Is(c) && s.String() == To(c).String()
}

// Name returns the type name for the symbol s.
func (s *T) Name() string {
	return name
}

// The symbol type has a literal representation.

// Literal returns the literal representation of the symbol s.
func (s *T) Literal() string {
	return repr(string(*s))
}

// The symbol type is a stringer.

// String returns the text of the *T (sym) s.
func (s *T) String() string {
	return string(*s)
}

func meta(s string) string {
	return "(|" + name + " " + s + "|)"
}

func repr(s string) string {
	q := adapted.CanonicalString(s)

	if len(s) == 0 {
		return meta(q)
	}

	for _, r := range s {
		if r == ' ' {
			return meta(q)
		}
	}

	if q[2:len(q)-1] != s {
		return meta(q)
	}

	return s
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise is panics.
func To(c cell.T) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}

func implements() { //nolint:deadcode,unused
	// This function is never called. Its purpose is as compiler-checked
	// documentation about the interfaces this type satisfies.
	var s T

	var c cell.T = &s
	_ = c
	var l literal.T = &s
	_ = l
}
