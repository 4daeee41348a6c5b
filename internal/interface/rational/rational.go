// Released under an MIT license. See LICENSE.

// Package rational defines the interface for bind's numeric types.
package rational

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/michaelmacinnis/bind/internal/interface/cell"
)

// ErrNotNumber is returned for a value that is not a number.
var ErrNotNumber = errors.New("cannot be used in a numeric expression")

// T (rational) is anything that can be treated as a rational number.
type T interface {
	Rat() *big.Rat
}

// Sum adds the values a and b. Neither argument is modified.
func Sum(a, b cell.T) (*big.Rat, error) {
	x, err := Number(a)
	if err != nil {
		return nil, err
	}

	y, err := Number(b)
	if err != nil {
		return nil, err
	}

	return (&big.Rat{}).Add(x, y), nil
}

// Number returns the value of c as a *big.Rat.
func Number(c cell.T) (*big.Rat, error) {
	r, ok := c.(T)
	if !ok {
		return nil, fmt.Errorf("%s %w", cell.TypeName(c), ErrNotNumber)
	}

	return r.Rat(), nil
}
