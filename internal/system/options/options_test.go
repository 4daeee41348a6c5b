// Released under an MIT license. See LICENSE.

package options

import (
	"testing"
)

func TestInteractive(t *testing.T) {
	ParseArgs(nil, true)

	if !Interactive() || Command() != "" || Script() != "" {
		t.Error("a terminal with no arguments should be interactive")
	}

	ParseArgs(nil, false)

	if Interactive() {
		t.Error("piped input should not be interactive")
	}

	ParseArgs([]string{"-i"}, true)

	if Interactive() {
		t.Error("-i should invert interactive mode")
	}
}

func TestCommand(t *testing.T) {
	ParseArgs([]string{"-c", "get x"}, true)

	if Interactive() || Command() != "get x" {
		t.Errorf("unexpected command %q", Command())
	}
}

func TestScript(t *testing.T) {
	ParseArgs([]string{"setup.bind"}, true)

	if Interactive() || Script() != "setup.bind" {
		t.Errorf("unexpected script %q", Script())
	}

	ParseArgs([]string{"-i", "setup.bind"}, false)

	if !Interactive() {
		t.Error("-i should force interactive mode after the script")
	}
}
