package clikit

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DavidGamba/go-getoptions"
)

// ParseError reports a rejected command line. It carries the usage text
// rendered for the descriptor sequence so callers can show it without
// recomputing anything, and unwraps to the parser's own rejection.
type ParseError struct {
	// Program is the identity the usage text was rendered with.
	Program string

	// Usage is the full usage text for the descriptor sequence.
	Usage string

	// Err is the rejection reported by the underlying parser.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Program == "" {
		return e.Err.Error()
	}
	return e.Program + ": " + e.Err.Error()
}

// Unwrap exposes the parser's rejection to errors.Is and errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse matches a process argument vector against a descriptor sequence.
// argv is the full vector, normally os.Args: index zero names the program,
// the remainder is the option stream. On success it returns the parser
// handle, which answers presence lookups with Called and value lookups with
// Value through either flag form, together with the positional remainder.
// On failure it returns a *ParseError and the caller decides the
// termination policy.
func Parse(argv []string, opts []Option) (*getoptions.GetOpt, []string, error) {
	matches, rest, perr := parse(argv, opts)
	if perr != nil {
		return nil, nil, perr
	}
	return matches, rest, nil
}

// MustParse is Parse with the traditional hard-stop behavior: when the
// command line is rejected it writes the usage text and the rejection to
// standard error and exits the process with ExUsage. There is no recovery
// path; a program that reaches this point with a bad command line is not
// meant to keep running.
func MustParse(argv []string, opts []Option) (*getoptions.GetOpt, []string) {
	return mustParse(argv, opts, os.Stderr, os.Exit)
}

func parse(argv []string, opts []Option) (*getoptions.GetOpt, []string, *ParseError) {
	id := ProgramIdentity(argv)
	slog.Debug("Argument parsing started.", "program", id.Name, "options", len(opts))

	var args []string
	if len(argv) > 1 {
		args = argv[1:]
	}
	parser := newParser(opts)
	rest, err := parser.Parse(args)
	if err != nil {
		return nil, nil, &ParseError{
			Program: id.Name,
			Usage:   Usage(id, opts),
			Err:     err,
		}
	}
	slog.Debug("Argument parsing finished.", "rest", len(rest))
	return parser, rest, nil
}

// mustParse carries MustParse's seams so both failure paths are testable
// without terminating the test process.
func mustParse(argv []string, opts []Option, stderr io.Writer, exit func(int)) (*getoptions.GetOpt, []string) {
	matches, rest, perr := parse(argv, opts)
	if perr == nil {
		return matches, rest
	}

	// Usage first, rejection last: the closing line of the report names
	// what was wrong.
	if _, werr := fmt.Fprintf(stderr, "%s\n\n%s\n", perr.Usage, perr); werr != nil {
		// Standard error is gone. The panic payload is the one channel left
		// that keeps both diagnostics, original rejection first.
		panic(fmt.Sprintf("%v; writing diagnostics to stderr failed: %v", perr, werr))
	}
	exit(int(ExUsage))
	return nil, nil // reached only when a test stubs exit
}
