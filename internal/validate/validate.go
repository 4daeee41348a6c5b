// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to bind commands.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/bind/internal/reader"
)

// Fixed returns actual if it has between min and max words.
func Fixed(actual []reader.Word, min, max int) ([]reader.Word, error) {
	n := len(actual)

	if n < min {
		return nil, fmt.Errorf("expected %s, passed %d", Count(min, "argument", "s"), n)
	}

	if n > max {
		return nil, fmt.Errorf("expected %s, passed %d", Count(max, "argument", "s"), n)
	}

	return actual, nil
}

// Qualified splits actual into a namespace and the remaining words. If
// actual has one more word than n, the first word is the namespace.
// Otherwise the namespace is dflt.
func Qualified(actual []reader.Word, n int, dflt string) (string, []reader.Word, error) {
	v, err := Fixed(actual, n, n+1)
	if err != nil {
		return "", nil, err
	}

	if len(v) == n {
		return dflt, v, nil
	}

	return v[0].Text, v[1:], nil
}

// Count returns "n label" with the plural suffix p appended when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
