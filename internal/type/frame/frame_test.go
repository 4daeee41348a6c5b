// Released under an MIT license. See LICENSE.

package frame

import (
	"testing"

	"github.com/michaelmacinnis/bind/internal/interface/scope"
	"github.com/michaelmacinnis/bind/internal/type/env"
	"github.com/michaelmacinnis/bind/internal/type/key"
	"github.com/michaelmacinnis/bind/internal/type/num"
)

func TestPushPop(t *testing.T) {
	global := env.New(nil, nil)
	global.Define("x", num.Int(1))

	f := New(global)

	g := f.Push(nil, scope.Binding{Key: key.Var("x"), Value: num.Int(2)})

	if g.Depth() != 1 || f.Depth() != 0 {
		t.Error("wrong depth")
	}

	if g.Scope().Enclosing() != global {
		t.Error("pushed scope should extend the current scope")
	}

	v, err := g.Scope().Get("x")
	if err != nil || !v.Equal(num.Int(2)) {
		t.Error("pushed binding should shadow global x")
	}

	if g.Pop() != f {
		t.Error("pop should return the previous frame")
	}

	if f.Pop() != nil {
		t.Error("the bottom frame has nothing below it")
	}
}

func TestResolveLexicalFirst(t *testing.T) {
	used := env.New(nil, nil)
	used.Define("x", num.Int(1))

	global := env.New(nil, nil)
	global.Define("x", num.Int(2))

	f := New(global).Push([]scope.T{used})

	s, r := f.Resolve(key.Variable, "x")
	if s != global || !r.Get().Equal(num.Int(2)) {
		t.Error("the lexical binding should win")
	}
}

func TestResolveUses(t *testing.T) {
	first := env.New(nil, nil)
	first.DefineIn(key.Macro, "m", num.Int(1))

	second := env.New(nil, nil)
	second.DefineIn(key.Macro, "m", num.Int(2))
	second.Define("y", num.Int(3))

	f := New(env.New(nil, nil)).Push([]scope.T{first, second})

	s, r := f.Resolve(key.Macro, "m")
	if s != first || !r.Get().Equal(num.Int(1)) {
		t.Error("uses should be consulted in order")
	}

	s, _ = f.Resolve(key.Variable, "y")
	if s != second {
		t.Error("y should resolve through the second use")
	}

	s, r = f.Resolve(key.Variable, "z")
	if s != nil || r != nil {
		t.Error("z is not bound anywhere")
	}
}

func TestSetScope(t *testing.T) {
	e := env.New(nil, nil)
	e.Define("x", num.Int(1))

	f := New(e)
	f.SetScope(e.Copy())

	_, _ = f.Scope().Set("x", num.Int(2))

	v, _ := e.Get("x")
	if !v.Equal(num.Int(1)) {
		t.Error("the original scope should be unaffected")
	}
}
