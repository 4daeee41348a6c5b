// Released under an MIT license. See LICENSE.

// Package boolean defines the interface for bind's boolean types.
package boolean

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/bind/internal/interface/cell"
)

// ErrNotBoolean is returned for a value that has no truth value.
var ErrNotBoolean = errors.New("cannot be used in a boolean expression")

// T (boolean) is anything that evaluates to a true or false value.
type T interface {
	Bool() bool
}

// Value returns the truth value of c.
func Value(c cell.T) (bool, error) {
	b, ok := c.(T)
	if !ok {
		return false, fmt.Errorf("%s %w", cell.TypeName(c), ErrNotBoolean)
	}

	return b.Bool(), nil
}
