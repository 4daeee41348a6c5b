// Released under an MIT license. See LICENSE.

package errunbound

import (
	"fmt"
	"testing"

	"github.com/michaelmacinnis/bind/internal/type/key"
)

func TestError(t *testing.T) {
	if got := New(key.Variable, "x").Error(); got != "unbound variable: x" {
		t.Errorf("got %q", got)
	}

	if got := New(key.Macro, "when").Error(); got != "unbound macro: when" {
		t.Errorf("got %q", got)
	}
}

func TestAs(t *testing.T) {
	err := fmt.Errorf("evaluating: %w", New(key.Variable, "x"))

	e, ok := As(err)
	if !ok {
		t.Fatal("expected to find the wrapped error")
	}

	if e.Key() != key.Var("x") {
		t.Errorf("wrong key %v", e.Key())
	}

	if _, ok := As(fmt.Errorf("other")); ok {
		t.Error("unrelated errors should not match")
	}
}

func TestEqual(t *testing.T) {
	a := New(key.Variable, "x")

	if !a.Equal(New(key.Variable, "x")) {
		t.Error("errors for the same key should be equal")
	}

	if a.Equal(New(key.Macro, "x")) {
		t.Error("errors for different keys should not be equal")
	}

	if a.Literal() != "(|errunbound x|)" {
		t.Errorf("unexpected literal %q", a.Literal())
	}
}
