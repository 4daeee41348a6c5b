// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for bind.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/michaelmacinnis/bind/internal/system/history"
	"github.com/peterh/liner"
)

// Evaluator is the interface for things that want to process commands.
type Evaluator interface {
	Evaluate(line string) error
}

// Run launches the UI which sends commands to the Evaluator. Words is the
// list of command names offered as completions for the first word.
func Run(e Evaluator, words []string) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetCompleter(Completer(words))

	// A missing history file is not an error worth reporting.
	_ = history.Load(cli.ReadHistory)

	defer func() {
		if err := history.Save(cli.WriteHistory); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
		}
	}()

	for {
		line, err := cli.Prompt("bind> ")

		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		case io.EOF:
			os.Stdout.Write([]byte("exit\n"))
			return
		default:
			fmt.Fprintln(os.Stderr, err.Error())
			return
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		cli.AppendHistory(line)

		if err := e.Evaluate(line); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
		}
	}
}

// Completer returns a liner completer that completes the first word of a
// line from words.
func Completer(words []string) liner.Completer {
	return func(line string) (cs []string) {
		if strings.ContainsAny(line, " \t") {
			return nil
		}

		for _, w := range words {
			if strings.HasPrefix(w, line) {
				cs = append(cs, w+" ")
			}
		}

		return cs
	}
}
