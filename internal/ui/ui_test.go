// Released under an MIT license. See LICENSE.

package ui

import (
	"strings"
	"testing"
)

func TestCompleter(t *testing.T) {
	c := Completer([]string{"define", "describe", "get"})

	got := strings.Join(c("de"), ",")
	if got != "define ,describe " {
		t.Errorf("unexpected completions %q", got)
	}

	if len(c("get x")) != 0 {
		t.Error("only the first word is completed")
	}

	if len(c("zz")) != 0 {
		t.Error("nothing should match zz")
	}
}
