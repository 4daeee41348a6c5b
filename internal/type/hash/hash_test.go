// Released under an MIT license. See LICENSE.

package hash

import (
	"testing"

	"github.com/michaelmacinnis/bind/internal/interface/reference"
	"github.com/michaelmacinnis/bind/internal/type/key"
	"github.com/michaelmacinnis/bind/internal/type/str"
)

func TestSetGet(t *testing.T) {
	h := New()

	v := str.New("hello")
	h.Set(key.Var("x"), v)

	r := h.Get(key.Var("x"))
	if r == nil || r.Get() != v {
		t.Fatal("expected the value just set")
	}

	if h.Get(key.New(key.Macro, "x")) != nil {
		t.Error("a key in another namespace should not be found")
	}
}

func TestSetReplacesReference(t *testing.T) {
	h := New()

	first := h.Set(key.Var("x"), str.New("a"))
	second := h.Set(key.Var("x"), str.New("b"))

	if first == second {
		t.Fatal("Set should allocate a new reference")
	}

	if h.Size() != 1 {
		t.Errorf("expected 1 entry, got %d", h.Size())
	}
}

func TestCopy(t *testing.T) {
	h := New()

	v := str.New("hello")
	h.Set(key.Var("x"), v)

	c := h.Copy()

	if c.Get(key.Var("x")) == h.Get(key.Var("x")) {
		t.Fatal("copy should not share references")
	}

	if c.Get(key.Var("x")).Get() != v {
		t.Error("copy should share values")
	}

	c.Get(key.Var("x")).Set(str.New("world"))

	if h.Get(key.Var("x")).Get() != v {
		t.Error("changing the copy should not change the original")
	}
}

func TestNil(t *testing.T) {
	var h *T

	if h.Get(key.Var("x")) != nil || h.Size() != 0 || h.Copy() != nil {
		t.Error("a nil hash should be empty")
	}

	h.Each(func(key.T, reference.T) bool {
		t.Error("a nil hash has no entries")
		return true
	})
}
