// Released under an MIT license. See LICENSE.

// Package literal defines the interface for bind types that can be expressed as literals.
package literal

import (
	"fmt"

	"github.com/michaelmacinnis/bind/internal/interface/cell"
)

// T (literal) is any type that can be expressed as a literal.
type T interface {
	Literal() string
}

// String returns the literal string representaition for a cell, if possible.
func String(c cell.T) string {
	l, ok := c.(T)
	if !ok {
		// Not all cell types can be expressed as literals.
		panic(c.Name() + " does not have a literal representation")
	}
	return l.Literal()
}

// Display returns the literal representation of c, if it has one, or a
// placeholder naming its type.
func Display(c cell.T) string {
	switch v := c.(type) {
	case nil:
		return "()"
	case T:
		return v.Literal()
	case fmt.Stringer:
		return v.String()
	}

	return "<" + c.Name() + ">"
}
