package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/clikit"
)

func TestRun_Help(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "--help" flag should short-circuit into printing the usage text.
	argv := []string{"greet", "--help"}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, argv)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when help was asked for")
	require.Contains(t, out.String(), "Usage: greet", "Expected the usage text on the output buffer")
	require.Contains(t, out.String(), "--version", "Expected the option table to list every flag")
	require.Zero(t, errOut.Len(), "Nothing should be written to the diagnostic stream")
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	argv := []string{"greet", "--version"}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, argv)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "greet version "+version+"\n", out.String())
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause clikit.Parse to return an error.
	argv := []string{"greet", "--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, argv)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")

	var exitErr *clikit.ExitError
	require.True(t, errors.As(err, &exitErr), "The error should carry an exit code")
	require.Equal(t, clikit.ExUsage, exitErr.Code)
	require.Contains(t, err.Error(), "this-is-not-a-valid-flag")
	require.Contains(t, errOut.String(), "Usage: greet", "The usage text should land on the diagnostic stream")
	require.Zero(t, out.Len(), "Nothing should be written to the result stream")
}

func TestRun_Greets(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	testCases := []struct {
		name string
		argv []string
		want string
	}{
		{"defaults", []string{"greet"}, "Hello, world!\n"},
		{"named recipient", []string{"greet", "sailor"}, "Hello, sailor!\n"},
		{"custom greeting", []string{"greet", "--greeting", "Ahoy", "sailor"}, "Ahoy, sailor!\n"},
		{"shouted", []string{"greet", "-s", "crew"}, "HELLO, CREW!\n"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := &bytes.Buffer{}
			errOut := &bytes.Buffer{}

			// --- Act ---
			err := run(out, errOut, tc.argv)

			// --- Assert ---
			require.NoError(t, err)
			require.Equal(t, tc.want, out.String())
		})
	}
}

func TestRun_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	argv := []string{"greet", "--log-level", "chatty"}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, argv)

	// --- Assert ---
	require.Error(t, err)

	var exitErr *clikit.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, clikit.ExUsage, exitErr.Code)
	require.Contains(t, err.Error(), "invalid log-level")
}
