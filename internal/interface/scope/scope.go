// Released under an MIT license. See LICENSE.

// Package scope defines the interface for bind's first-class environments.
package scope

import (
	"github.com/michaelmacinnis/bind/internal/interface/cell"
	"github.com/michaelmacinnis/bind/internal/interface/reference"
	"github.com/michaelmacinnis/bind/internal/type/key"
)

// Binding is an initial association used when extending a scope.
type Binding struct {
	Key   key.T
	Value cell.T
}

// T (scope) is the interface for bind's first-class environments.
//
// Methods without an In suffix operate on the key.Variable namespace.
type T interface {
	cell.T

	Copy() T
	Enclosing() T
	Extend(uses []T, bindings ...Binding) T
	Uses() []T

	Define(k string, v cell.T) cell.T
	DefineIn(ns, k string, v cell.T) cell.T
	Get(k string) (cell.T, error)
	GetIn(ns, k string) (cell.T, error)
	Set(k string, v cell.T) (cell.T, error)
	SetIn(ns, k string, v cell.T) (cell.T, error)
	SetByIdentity(ns string, id, v cell.T, same cell.Identical) cell.T

	Find(k string) T
	FindIn(ns, k string) T
	IsBound(k string) bool
	IsBoundIn(ns, k string) bool
	IsRecBound(k string) bool
	IsRecBoundIn(ns, k string) bool
	Reference(k string) reference.T
	ReferenceIn(ns, k string) reference.T

	Describe() string
	Each(f func(k key.T, r reference.T) bool)
}
