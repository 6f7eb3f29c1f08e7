// Package clikit reduces the boilerplate of building small command-line
// programs. It provides canonical usage and version strings, ready-made
// --help and --version option descriptors, and argument parsing that keeps
// programs on the conventions of the standard streams: results belong on
// stdout, diagnostics and usage reports belong on stderr.
//
// Option matching itself is delegated to github.com/DavidGamba/go-getoptions.
// This package only describes options, renders the canonical output, and
// decides what happens when parsing fails. Parse reports failures as a
// *ParseError so the caller picks the termination policy; MustParse keeps
// the traditional hard stop (usage to stderr, exit with ExUsage) for
// programs that have no use for a partially parsed command line.
//
// Every function takes the process argument vector, or an Identity derived
// from it, as an explicit parameter. Nothing in this package reads os.Args,
// which keeps all of it testable with plain slices.
//
// Defining the same option name or alias twice is a programmer error and
// panics inside the underlying parser, matching its documented contract.
package clikit
