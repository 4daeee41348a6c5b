// Released under an MIT license. See LICENSE.

// Package options parses bind's command-line arguments.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by bind -v.
const Version = "0.1.0"

//nolint:gochecknoglobals
var (
	command     string
	interactive bool
	script      string
	usage       = `bind

Usage:
  bind [-i] [SCRIPT]
  bind [-i] -c COMMAND
  bind -h
  bind -v

Arguments:
  SCRIPT     Path to a file of bind commands, one per line.

Options:
  -c, --command=COMMAND  Run the specified command.
  -i, --interactive      Invert interactive mode.
  -h, --help             Display this help.
  -v, --version          Print bind version.

If bind's stdin is a TTY, and bind was invoked with no script or command,
interactive mode is enabled. Otherwise, commands are read from stdin.
`
)

// Command returns the command passed with -c, if any.
func Command() string {
	return command
}

// Interactive returns true if bind should prompt for commands.
func Interactive() bool {
	return interactive
}

// Parse parses os.Args. It exits for -h and -v.
func Parse() {
	ParseArgs(os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
}

// ParseArgs parses argv. The terminal flag reports whether stdin is a TTY.
func ParseArgs(argv []string, terminal bool) {
	if argv == nil {
		// Docopt treats nil as os.Args[1:].
		argv = []string{}
	}

	parser := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

	opts, err := parser.ParseArgs(usage, argv, Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")

	interactive = command == "" && script == "" && terminal

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive
}

// Script returns the path of the script to run, if any.
func Script() string {
	return script
}
