package clikit

import "os"

// Identity is the name a program was invoked under, used to label usage and
// version output.
type Identity struct {
	// Name is the identity to display: the symlink target when Resolved is
	// true, otherwise the raw argument.
	Name string

	// Raw is argument zero exactly as the process received it.
	Raw string

	// Resolved reports whether Name came from resolving a symlink.
	Resolved bool
}

// ProgramIdentity derives the program identity from an argument vector,
// normally os.Args. When argument zero names a symlink it is resolved a
// single level to the link target; resolution is best-effort and any
// failure falls back to the raw value. An empty vector yields a zero
// Identity.
func ProgramIdentity(argv []string) Identity {
	if len(argv) == 0 {
		return Identity{}
	}
	raw := argv[0]
	if target, err := os.Readlink(raw); err == nil {
		return Identity{Name: target, Raw: raw, Resolved: true}
	}
	return Identity{Name: raw, Raw: raw}
}
