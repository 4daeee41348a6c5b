// Released under an MIT license. See LICENSE.

// Package env provides bind's first-class environment type.
//
// An env is one frame of a lexical scope chain. It owns a mapping from
// namespace-qualified names to references and points at the frame that
// encloses it. Lookups and assignments walk outward from a frame to the
// root; definitions only ever touch the frame they are made in.
package env

import (
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/bind/internal/interface/cell"
	"github.com/michaelmacinnis/bind/internal/interface/literal"
	"github.com/michaelmacinnis/bind/internal/interface/reference"
	"github.com/michaelmacinnis/bind/internal/interface/scope"
	"github.com/michaelmacinnis/bind/internal/type/errunbound"
	"github.com/michaelmacinnis/bind/internal/type/hash"
	"github.com/michaelmacinnis/bind/internal/type/key"
)

const name = "environment"

// T (env) maps namespace-qualified names to values.
type T struct {
	previous scope.T
	uses     []scope.T
	*bindings
}

// We alias hash.T to bindings so that when embedded it is easy to refer to
// it by name. Embedding bindings also lets us access its methods directly.
type bindings = hash.T

// New creates a new env enclosed by previous. The uses list is carried but
// never consulted by the env itself. Either argument may be nil.
func New(previous scope.T, uses []scope.T) scope.T {
	return &T{
		previous: previous,
		uses:     uses,
		bindings: hash.New(),
	}
}

// Copy creates a copy of the env e. The copy has the same enclosing scope
// and uses list as e but every binding gets a new reference initialized
// with the value currently bound in e.
func (e *T) Copy() scope.T {
	return &T{
		previous: e.previous,
		uses:     e.uses,
		bindings: e.bindings.Copy(),
	}
}

// Enclosing returns the enclosing scope.
func (e *T) Enclosing() scope.T {
	return e.previous
}

// Extend creates a new env enclosed by e with a new reference for each of
// the bindings. If a key appears more than once the last value wins.
func (e *T) Extend(uses []scope.T, bs ...scope.Binding) scope.T {
	n := New(e, uses).(*T)

	for _, b := range bs {
		n.bindings.Set(b.Key, b.Value)
	}

	return n
}

// Uses returns the uses list the env e was created with.
func (e *T) Uses() []scope.T {
	return e.uses
}

// Define associates the name k with the value v in the env e.
func (e *T) Define(k string, v cell.T) cell.T {
	return e.DefineIn(key.Variable, k, v)
}

// DefineIn associates the name k in the namespace ns with the value v in
// the env e. If e already binds k, the existing reference is updated so
// that anything holding it sees v.
func (e *T) DefineIn(ns, k string, v cell.T) cell.T {
	kk := key.New(ns, k)

	if r := e.bindings.Get(kk); r != nil {
		r.Set(v)
	} else {
		e.bindings.Set(kk, v)
	}

	return v
}

// Get retrieves the value associated with the name k.
func (e *T) Get(k string) (cell.T, error) {
	return e.GetIn(key.Variable, k)
}

// GetIn retrieves the value associated with the name k in the namespace ns
// from the nearest scope that binds it.
func (e *T) GetIn(ns, k string) (cell.T, error) {
	r := e.ReferenceIn(ns, k)
	if r == nil {
		return nil, errunbound.New(ns, k)
	}

	return r.Get(), nil
}

// Set replaces the value associated with the name k.
func (e *T) Set(k string, v cell.T) (cell.T, error) {
	return e.SetIn(key.Variable, k, v)
}

// SetIn replaces the value associated with the name k in the namespace ns
// in the nearest scope that binds it. It never creates a binding.
func (e *T) SetIn(ns, k string, v cell.T) (cell.T, error) {
	r := e.ReferenceIn(ns, k)
	if r == nil {
		return nil, errunbound.New(ns, k)
	}

	r.Set(v)

	return v, nil
}

// SetByIdentity replaces v for every value in the namespace ns that is the
// same as id, according to same, in e and every scope that encloses e.
// A match in one scope does not stop the search. If same is nil, cell.Same
// is used.
func (e *T) SetByIdentity(ns string, id, v cell.T, same cell.Identical) cell.T {
	if same == nil {
		same = cell.Same
	}

	e.bindings.Each(func(k key.T, r reference.T) bool {
		if k.Namespace == ns && same(r.Get(), id) {
			r.Set(v)
		}

		return true
	})

	if e.previous != nil {
		e.previous.SetByIdentity(ns, id, v, same)
	}

	return v
}

// Find returns the nearest scope that binds the name k.
func (e *T) Find(k string) scope.T {
	return e.FindIn(key.Variable, k)
}

// FindIn returns the nearest scope, starting with e, that binds the name k
// in the namespace ns. If no scope binds k, FindIn returns nil.
func (e *T) FindIn(ns, k string) scope.T {
	for s := scope.T(e); s != nil; s = s.Enclosing() {
		if s.IsBoundIn(ns, k) {
			return s
		}
	}

	return nil
}

// IsBound returns true if the env e itself binds the name k.
func (e *T) IsBound(k string) bool {
	return e.IsBoundIn(key.Variable, k)
}

// IsBoundIn returns true if the env e itself binds the name k in the
// namespace ns. Enclosing scopes are not consulted.
func (e *T) IsBoundIn(ns, k string) bool {
	return e.bindings.Get(key.New(ns, k)) != nil
}

// IsRecBound returns true if e or any scope enclosing it binds the name k.
func (e *T) IsRecBound(k string) bool {
	return e.IsRecBoundIn(key.Variable, k)
}

// IsRecBoundIn returns true if e or any scope enclosing it binds the name k
// in the namespace ns.
func (e *T) IsRecBoundIn(ns, k string) bool {
	return e.FindIn(ns, k) != nil
}

// Reference retrieves the reference associated with the name k.
func (e *T) Reference(k string) reference.T {
	return e.ReferenceIn(key.Variable, k)
}

// ReferenceIn retrieves the reference associated with the name k in the
// namespace ns from the nearest scope that binds it, or nil.
func (e *T) ReferenceIn(ns, k string) reference.T {
	if e == nil {
		return nil
	}

	r := e.bindings.Get(key.New(ns, k))

	if r == nil && e.previous != nil {
		r = e.previous.ReferenceIn(ns, k)
	}

	return r
}

// Describe returns one line for each binding in the env e, the name
// followed by the current value. The order of the lines is unspecified.
func (e *T) Describe() string {
	var b strings.Builder

	e.bindings.Each(func(k key.T, r reference.T) bool {
		b.WriteString(Line(k, r.Get()))

		return true
	})

	return b.String()
}

// Line returns the line Describe uses for the key k bound to the value c.
// Names that would not read back as a single word are quoted.
func Line(k key.T, c cell.T) string {
	n := k.Name

	q := adapted.CanonicalString(n)
	if n == "" || strings.ContainsAny(n, " \t") || q[2:len(q)-1] != n {
		n = q
	}

	if k.Namespace != key.Variable {
		n = k.Namespace + ":" + n
	}

	return n + " " + literal.Display(c) + "\n"
}

// Equal returns true if c is the same env as e.
func (e *T) Equal(c cell.T) bool {
	return Is(c) && e == To(c)
}

// Name returns the type name for the env e.
func (e *T) Name() string {
	return name
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise is panics.
func To(c cell.T) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}

func implements() { //nolint:deadcode,unused
	// This function is never called. Its purpose is as compiler-checked
	// documentation about the interfaces this type satisfies.
	var e T

	var s scope.T = &e
	_ = s
}
