// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all bind values.
package cell

import (
	"reflect"
)

// T (cell) is the basic unit of storage in bind.
type T interface {
	Equal(c T) bool
	Name() string
}

// Identical reports whether a and b are the same value object.
// It is distinct from Equal, which compares structure.
type Identical func(a, b T) bool

// Same is the default Identical predicate. Pointer-shaped values are the
// same if they point at the same storage. Other comparable values must
// compare ==. Values that cannot be compared are never the same.
func Same(a, b T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}

	return a == b
}

// TypeName returns the type name of c, or "()" if c is nil.
func TypeName(c T) string {
	if c == nil {
		return "()"
	}

	return c.Name()
}
