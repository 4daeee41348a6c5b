// Released under an MIT license. See LICENSE.

package rational_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/michaelmacinnis/bind/internal/interface/rational"
	"github.com/michaelmacinnis/bind/internal/type/num"
	"github.com/michaelmacinnis/bind/internal/type/str"
)

func TestSum(t *testing.T) {
	a, b := num.New("1/3"), num.New("2/3")

	n, err := rational.Sum(a, b)
	if err != nil {
		t.Fatal(err)
	}

	if n.Cmp(big.NewRat(1, 1)) != 0 {
		t.Errorf("got %s, want 1", n.RatString())
	}

	if a.String() != "1/3" || b.String() != "2/3" {
		t.Error("the arguments should not change")
	}

	_, err = rational.Sum(a, str.New("1"))
	if !errors.Is(err, rational.ErrNotNumber) {
		t.Errorf("unexpected error %v", err)
	}
}
