// Released under an MIT license. See LICENSE.

// Package frame provides bind's call stack frame type.
//
// The frame is where the evaluator's resolution policy lives. Scopes carry
// their uses list without interpreting it; Resolve looks through the
// lexical chain first and then through each scope in the uses list of the
// current scope, in order.
package frame

import (
	"github.com/michaelmacinnis/bind/internal/interface/reference"
	"github.com/michaelmacinnis/bind/internal/interface/scope"
)

// T (frame) is stack frame or activation record.
type T struct {
	previous *T
	scope    scope.T
}

// New creates a new frame.
func New(s scope.T) *T {
	return &T{scope: s}
}

// Pop returns the frame that was current when f was pushed.
func (f *T) Pop() *T {
	return f.previous
}

// Push creates a new frame whose scope extends the scope of f.
func (f *T) Push(uses []scope.T, bs ...scope.Binding) *T {
	return &T{previous: f, scope: f.scope.Extend(uses, bs...)}
}

// Depth returns the number of frames below f.
func (f *T) Depth() int {
	n := 0
	for f = f.previous; f != nil; f = f.previous {
		n++
	}

	return n
}

// Resolve looks for a lexical and then a used resolution of k.
// The scope where the reference r was found is also returned.
func (f *T) Resolve(ns, k string) (s scope.T, r reference.T) {
	s = f.scope.FindIn(ns, k)
	if s != nil {
		return s, s.ReferenceIn(ns, k)
	}

	for _, u := range f.scope.Uses() {
		s = u.FindIn(ns, k)
		if s != nil {
			return s, s.ReferenceIn(ns, k)
		}
	}

	return nil, nil
}

// Scope returns the current frame's scope.
func (f *T) Scope() scope.T {
	return f.scope
}

// SetScope sets the current frame's scope.
func (f *T) SetScope(s scope.T) {
	f.scope = s
}
