// Released under an MIT license. See LICENSE.

// Package reader splits bind command lines into words and values.
package reader

import (
	"errors"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/bind/internal/interface/cell"
	"github.com/michaelmacinnis/bind/internal/type/boolean"
	"github.com/michaelmacinnis/bind/internal/type/num"
	"github.com/michaelmacinnis/bind/internal/type/str"
	"github.com/michaelmacinnis/bind/internal/type/sym"
)

// ErrUnterminated is returned when a quoted word is not closed.
var ErrUnterminated = errors.New("unterminated quoted word")

// Word is a single word from a command line.
type Word struct {
	Text   string
	Quoted bool
}

// Value converts the word w to a value. Quoted words are strings. Bare
// words are numbers, booleans, or symbols.
func (w Word) Value() cell.T {
	switch {
	case w.Quoted:
		return str.New(w.Text)
	case w.Text == "true" || w.Text == "false":
		return boolean.New(w.Text)
	case num.Valid(w.Text):
		return num.New(w.Text)
	}

	return sym.New(w.Text)
}

// Scan splits line into words. Words are separated by spaces or tabs.
// A # outside quotes starts a comment that runs to the end of the line.
func Scan(line string) ([]Word, error) {
	var words []Word

	s := strings.TrimRight(line, "\r\n")

	for {
		s = strings.TrimLeft(s, " \t")
		if s == "" || s[0] == '#' {
			return words, nil
		}

		var (
			w   Word
			err error
		)

		switch s[0] {
		case '\'':
			w, s, err = single(s)
		case '"':
			w, s, err = double(s)
		default:
			n := strings.IndexAny(s, " \t")
			if n < 0 {
				n = len(s)
			}

			w, s = Word{Text: s[:n]}, s[n:]
		}

		if err != nil {
			return nil, err
		}

		words = append(words, w)
	}
}

func double(s string) (Word, string, error) {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			text, err := strconv.Unquote(s[:i+1])
			if err != nil {
				return Word{}, "", err
			}

			return Word{Text: text, Quoted: true}, s[i+1:], nil
		}
	}

	return Word{}, "", ErrUnterminated
}

func single(s string) (Word, string, error) {
	n := strings.IndexByte(s[1:], '\'')
	if n < 0 {
		return Word{}, "", ErrUnterminated
	}

	return Word{Text: s[1 : n+1], Quoted: true}, s[n+2:], nil
}
