// Released under an MIT license. See LICENSE.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/michaelmacinnis/bind/internal/engine"
)

func TestSource(t *testing.T) {
	var out bytes.Buffer

	e := engine.New(&out)

	status := source(e, strings.NewReader(`
define x 1
enter
define x 2
get x
leave
get x
`))

	if status != 0 {
		t.Fatalf("unexpected status %d", status)
	}

	if out.String() != "2\n1\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestSourceFailure(t *testing.T) {
	var out bytes.Buffer

	e := engine.New(&out)

	status := source(e, strings.NewReader("get missing\ndefine x 1\nget x\n"))

	if status != 1 {
		t.Error("a failing command should set the status")
	}

	if out.String() != "1\n" {
		t.Error("later commands should still run")
	}
}
