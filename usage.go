package clikit

import (
	"fmt"
	"strings"
)

// Usage renders the canonical usage text for a program and its option
// descriptors: a one-line synopsis followed by a column-aligned option
// table. The result carries no trailing newline; the caller chooses the
// sink (stdout when help was asked for, stderr when parsing failed).
//
//	Usage: prog [-s] [--greeting] [-h] [--version]
//
//	Options:
//	    -s --shout            Greet in all caps
//	       --greeting <word>  Greeting word to use
//	    -h --help             Print this help menu
//	       --version          Print the version of prog being run
func Usage(id Identity, opts []Option) string {
	var b strings.Builder
	b.WriteString("Usage: ")
	b.WriteString(id.Name)
	for _, o := range opts {
		b.WriteString(" [")
		b.WriteString(o.synopsisForm())
		b.WriteByte(']')
	}
	b.WriteString("\n\nOptions:")

	width := 0
	cells := make([]string, len(opts))
	for i, o := range opts {
		cells[i] = o.flagCell()
		if len(cells[i]) > width {
			width = len(cells[i])
		}
	}
	for i, o := range opts {
		b.WriteString("\n    ")
		if o.Description == "" {
			b.WriteString(cells[i])
			continue
		}
		fmt.Fprintf(&b, "%-*s  %s", width, cells[i], o.Description)
	}
	return b.String()
}

// synopsisForm is the bracketed token shown in the synopsis line: the short
// form when the option has one, the long form otherwise.
func (o Option) synopsisForm() string {
	if o.Short != "" {
		return "-" + o.Short
	}
	return "--" + o.Long
}

// flagCell is the flag column of the option table. Long-only options are
// padded so long forms line up under each other.
func (o Option) flagCell() string {
	var cell string
	switch {
	case o.Short != "" && o.Long != "":
		cell = "-" + o.Short + " --" + o.Long
	case o.Short != "":
		cell = "-" + o.Short
	default:
		cell = "   --" + o.Long
	}
	if o.TakesValue {
		cell += " <" + o.argName() + ">"
	}
	return cell
}
