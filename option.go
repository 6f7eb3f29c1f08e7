package clikit

import (
	"github.com/DavidGamba/go-getoptions"
)

// Option describes a single command-line option: its flag forms, the help
// text shown in the option table, and whether it consumes a value. Options
// are plain values; this package never mutates a caller's sequence, it only
// constructs new descriptors.
type Option struct {
	// Short is the single-character flag form, e.g. "h" for -h. Optional.
	Short string

	// Long is the long flag form, e.g. "help" for --help.
	Long string

	// ArgName is the value placeholder shown in help output for options
	// that take a value. Defaults to "arg" when empty.
	ArgName string

	// Description is the help text shown next to the flag forms.
	Description string

	// TakesValue marks the option as consuming an argument.
	TakesValue bool
}

// HelpOption returns the conventional -h/--help descriptor.
func HelpOption() Option {
	return Option{
		Short:       "h",
		Long:        "help",
		Description: "Print this help menu",
	}
}

// VersionOption returns the conventional --version descriptor. It has no
// short form: -v stays free for a verbose flag.
func VersionOption(id Identity) Option {
	return Option{
		Long:        "version",
		Description: "Print the version of " + id.Name + " being run",
	}
}

// name returns the canonical registration name: the long form, or the short
// form for descriptors that only have one.
func (o Option) name() string {
	if o.Long != "" {
		return o.Long
	}
	return o.Short
}

// argName returns the help placeholder for value-taking options.
func (o Option) argName() string {
	if o.ArgName != "" {
		return o.ArgName
	}
	return "arg"
}

// newParser registers the descriptor sequence onto a fresh go-getoptions
// parser. Each option is registered under its canonical name with the short
// form as an alias, so presence and value lookups work through either form.
func newParser(opts []Option) *getoptions.GetOpt {
	parser := getoptions.New()
	for _, o := range opts {
		var fns []getoptions.ModifyFn
		if o.Short != "" && o.Long != "" {
			fns = append(fns, parser.Alias(o.Short))
		}
		if o.Description != "" {
			fns = append(fns, parser.Description(o.Description))
		}
		if o.TakesValue {
			fns = append(fns, parser.ArgName(o.argName()))
			parser.String(o.name(), "", fns...)
		} else {
			parser.Bool(o.name(), false, fns...)
		}
	}
	return parser
}
