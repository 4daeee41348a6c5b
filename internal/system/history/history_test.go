// Released under an MIT license. See LICENSE.

package history

import (
	"io"
	"strings"
	"testing"
)

func TestSaveLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	err := Save(func(w io.Writer) (int, error) {
		return io.WriteString(w, "define x 1\n")
	})
	if err != nil {
		t.Fatal(err)
	}

	var got strings.Builder

	err = Load(func(r io.Reader) (int, error) {
		n, err := io.Copy(&got, r)
		return int(n), err
	})
	if err != nil {
		t.Fatal(err)
	}

	if got.String() != "define x 1\n" {
		t.Errorf("unexpected history %q", got.String())
	}
}

func TestLoadMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	err := Load(func(r io.Reader) (int, error) {
		t.Error("read should not be called without a history file")
		return 0, nil
	})
	if err == nil {
		t.Error("expected an error for a missing history file")
	}
}
