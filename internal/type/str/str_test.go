// Released under an MIT license. See LICENSE.

package str

import (
	"testing"
)

func TestStr(t *testing.T) {
	s := New("hello")

	if !s.Equal(New("hello")) || s.Equal(New("world")) {
		t.Error("strings are equal by text")
	}

	if To(s).Literal() != "$'hello'" {
		t.Errorf("unexpected literal %q", To(s).Literal())
	}

	if To(New("")).Bool() {
		t.Error("the empty string is false")
	}
}
