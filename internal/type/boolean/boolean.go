// Released under an MIT license. See LICENSE.

// Package boolean provides bind's boolean value type.
package boolean

import (
	"github.com/michaelmacinnis/bind/internal/interface/cell"
)

const name = "boolean"

// T (boolean) wraps Go's bool type.
type T bool

type boolean = T

//nolint:gochecknoglobals
var (
	False = f()
	True  = t()
)

// Bool returns the shared boolean cell for the bool b.
func Bool(b bool) cell.T {
	if b {
		return True
	}

	return False
}

// New creates a boolean from the string "true" or "false".
func New(s string) cell.T {
	b, ok := map[string]*boolean{
		"true":  True,
		"false": False,
	}[s]

	if ok {
		return b
	}

	panic(s + " is not true or false")
}

// Bool returns the boolean value of the boolean b.
func (b *boolean) Bool() bool {
	return bool(*b)
}

// Equal returns true if c is a boolean with a matching value.
func (b *boolean) Equal(c cell.T) bool {
	return Is(c) && b.Bool() == To(c).Bool()
}

// Literal returns the literal representation of the boolean b.
func (b *boolean) Literal() string {
	return b.String()
}

// Name returns the type name for the boolean b.
func (b *boolean) Name() string {
	return name
}

// String returns the text of the boolean b.
func (b *boolean) String() string {
	if bool(*b) {
		return "true"
	}

	return "false"
}

func f() *boolean {
	v := boolean(false)
	return &v
}

func t() *boolean {
	v := boolean(true)
	return &v
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*boolean)
	return ok
}

// To returns a *T if c is a *T; Otherwise is panics.
func To(c cell.T) *T {
	if b, ok := c.(*boolean); ok {
		return b
	}

	panic("not a " + name)
}
