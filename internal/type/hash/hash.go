// Released under an MIT license. See LICENSE.

// Package hash provides bind's key to reference mapping type.
package hash

import (
	"github.com/michaelmacinnis/bind/internal/interface/cell"
	"github.com/michaelmacinnis/bind/internal/interface/reference"
	"github.com/michaelmacinnis/bind/internal/type/key"
	"github.com/michaelmacinnis/bind/internal/type/slot"
)

// T (hash) maps keys to references. Each key maps to at most one reference.
type T struct {
	m map[key.T]reference.T
}

// New creates a new hash.
func New() *T {
	return &T{m: map[key.T]reference.T{}}
}

// Copy creates a new hash with a copy of every reference.
func (h *T) Copy() *T {
	if h == nil {
		return nil
	}

	fresh := New()
	for k, v := range h.m {
		fresh.m[k] = v.Copy()
	}

	return fresh
}

// Each calls f for every key and reference in the hash h. Iteration order
// is unspecified. Iteration stops if f returns false.
func (h *T) Each(f func(k key.T, r reference.T) bool) {
	if h == nil {
		return
	}

	for k, r := range h.m {
		if !f(k, r) {
			return
		}
	}
}

// Get retrieves the reference associated with the key k in the hash h.
func (h *T) Get(k key.T) reference.T {
	if h == nil {
		return nil
	}

	return h.m[k]
}

// Set associates the key k with a new reference to the cell v in the hash h.
// Any previous reference for k is replaced, not updated.
func (h *T) Set(k key.T, v cell.T) reference.T {
	r := slot.New(v)
	h.m[k] = r

	return r
}

// Size returns the number of entries in the hash h.
func (h *T) Size() int {
	if h == nil {
		return 0
	}

	return len(h.m)
}
