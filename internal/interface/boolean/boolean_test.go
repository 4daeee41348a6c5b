// Released under an MIT license. See LICENSE.

package boolean_test

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/bind/internal/interface/boolean"
	bv "github.com/michaelmacinnis/bind/internal/type/boolean"
	"github.com/michaelmacinnis/bind/internal/type/num"
	"github.com/michaelmacinnis/bind/internal/type/sym"
)

func TestValue(t *testing.T) {
	if b, err := boolean.Value(bv.True); err != nil || !b {
		t.Errorf("true: got %v, %v", b, err)
	}

	if b, err := boolean.Value(num.Int(0)); err != nil || b {
		t.Errorf("0: got %v, %v", b, err)
	}

	_, err := boolean.Value(sym.New("x"))
	if !errors.Is(err, boolean.ErrNotBoolean) {
		t.Errorf("symbol: unexpected error %v", err)
	}

	_, err = boolean.Value(nil)
	if err == nil || err.Error() != "() cannot be used in a boolean expression" {
		t.Errorf("nil: unexpected error %v", err)
	}
}
