// Released under an MIT license. See LICENSE.

// Package slot provides bind's variable type.
package slot

import (
	"github.com/michaelmacinnis/bind/internal/interface/cell"
	"github.com/michaelmacinnis/bind/internal/interface/reference"
)

// T (slot) holds a cell value. A slot is shared by every environment and
// closure that refers to the same binding. Slots are not synchronized;
// an interpreter instance runs on a single goroutine.
type T struct {
	c cell.T
}

// New creates a new slot with the cell c.
func New(c cell.T) *T {
	return &T{c: c}
}

// Copy creates a new slot with the same cell as slot s.
func (s *T) Copy() reference.T {
	return New(s.Get())
}

// Get returns the cell in slot s.
func (s *T) Get() cell.T {
	return s.c
}

// Set replaces the cell in slot s with the cell c.
func (s *T) Set(c cell.T) {
	s.c = c
}
