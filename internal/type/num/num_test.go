// Released under an MIT license. See LICENSE.

package num

import (
	"testing"
)

func TestNew(t *testing.T) {
	if !New("2/4").Equal(New("1/2")) {
		t.Error("1/2 and 2/4 should be equal")
	}

	if New("3").String() != "3" || New("0.5").Literal() != "1/2" {
		t.Error("unexpected representation")
	}

	if Int(0).Bool() || !Int(1).Bool() {
		t.Error("only zero is false")
	}
}

func TestValid(t *testing.T) {
	if !Valid("1.5") || Valid("x") {
		t.Error("unexpected validity")
	}

	defer func() {
		if recover() == nil {
			t.Error("New should panic for an invalid number")
		}
	}()

	New("x")
}
