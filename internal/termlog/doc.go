// Package termlog is responsible for constructing the structured loggers
// used by command-line programs: colorized text on terminals, plain text on
// pipes and files, and JSON when machine-readable output is wanted. It
// never touches the process-global logger.
package termlog
