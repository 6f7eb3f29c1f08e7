package clikit

// Version renders the canonical one-line version banner:
//
//	<program> version <version>
//
// The version label is whatever the caller ships, typically a semantic
// version.
func Version(id Identity, version string) string {
	return id.Name + " version " + version
}
