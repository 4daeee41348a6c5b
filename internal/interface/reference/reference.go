// Released under an MIT license. See LICENSE.

// Package reference defines the interface for bind's variable type.
package reference

import (
	"github.com/michaelmacinnis/bind/internal/interface/cell"
)

// T (reference) is anything that can hold a value. Every holder of the
// same reference observes a Set.
type T interface {
	Copy() T
	Get() cell.T
	Set(cell.T)
}
