package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/clikit"
	"github.com/vk/clikit/internal/termlog"
)

// version is what --version reports.
const version = "0.3.0"

// main is the entrypoint for the greet demo binary.
func main() {
	// Use a minimal logger until the configured one takes over.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var exitErr *clikit.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(int(clikit.ExSoftware))
	}
}

// run encapsulates the program logic for easier testing and error handling.
// Results go to outW, diagnostics to errW.
func run(outW, errW io.Writer, argv []string) error {
	id := clikit.ProgramIdentity(argv)
	opts := []clikit.Option{
		{Short: "s", Long: "shout", Description: "Greet in all caps"},
		{Long: "greeting", ArgName: "word", TakesValue: true, Description: "Greeting word to use"},
		{Long: "log-level", ArgName: "level", TakesValue: true, Description: "Set the logging level. Options: 'debug', 'info', 'warn', 'error'."},
		clikit.HelpOption(),
		clikit.VersionOption(id),
	}

	matches, rest, err := clikit.Parse(argv, opts)
	if err != nil {
		var parseErr *clikit.ParseError
		if errors.As(err, &parseErr) {
			fmt.Fprintf(errW, "%s\n\n", parseErr.Usage)
		}
		return &clikit.ExitError{Code: clikit.ExUsage, Err: err}
	}

	if matches.Called("help") {
		fmt.Fprintln(outW, clikit.Usage(id, opts))
		return nil
	}
	if matches.Called("version") {
		fmt.Fprintln(outW, clikit.Version(id, version))
		return nil
	}

	level := "info"
	if matches.Called("log-level") {
		raw, _ := matches.Value("log-level").(string)
		level = strings.ToLower(raw)
		switch level {
		case "debug", "info", "warn", "error":
			// valid
		default:
			return &clikit.ExitError{
				Code: clikit.ExUsage,
				Err:  fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", raw),
			}
		}
	}
	logger := termlog.New(level, "text", errW)

	greeting := "Hello"
	if word, _ := matches.Value("greeting").(string); word != "" {
		greeting = word
	}
	name := "world"
	if len(rest) > 0 {
		name = rest[0]
	}
	logger.Debug("Greeting composed.", "greeting", greeting, "recipient", name)

	message := fmt.Sprintf("%s, %s!", greeting, name)
	if matches.Called("shout") {
		message = strings.ToUpper(message)
	}
	fmt.Fprintln(outW, message)
	return nil
}
