package clikit

import "fmt"

// ExitCode classifies why a process terminated, following the BSD sysexits
// convention. The catalog is offered for callers to use when terminating
// deliberately; the only code this package acts on itself is ExUsage, in
// MustParse.
type ExitCode int

const (
	// ExOK reports successful termination.
	ExOK ExitCode = 0

	// ExUsage reports a command-line usage error: bad flag, bad number of
	// arguments, malformed value.
	ExUsage ExitCode = 64

	// ExDataErr reports incorrect user-supplied input data.
	ExDataErr ExitCode = 65

	// ExNoInput reports that an input file did not exist or was unreadable.
	ExNoInput ExitCode = 66

	// ExNoUser reports that a specified user did not exist.
	ExNoUser ExitCode = 67

	// ExNoHost reports that a specified host did not exist.
	ExNoHost ExitCode = 68

	// ExUnavailable reports that a required service is unavailable.
	ExUnavailable ExitCode = 69

	// ExSoftware reports an internal software error.
	ExSoftware ExitCode = 70

	// ExOSErr reports an operating system error, such as a failed fork.
	ExOSErr ExitCode = 71

	// ExOSFile reports that a critical system file is missing or unusable.
	ExOSFile ExitCode = 72

	// ExCantCreat reports that a user-specified output file cannot be
	// created.
	ExCantCreat ExitCode = 73

	// ExIOErr reports an error doing I/O on a file.
	ExIOErr ExitCode = 74

	// ExTempFail reports a temporary failure where a retry may succeed.
	ExTempFail ExitCode = 75

	// ExProtocol reports a protocol violation by a remote system.
	ExProtocol ExitCode = 76

	// ExNoPerm reports insufficient permission to perform an operation.
	ExNoPerm ExitCode = 77

	// ExConfig reports a configuration error.
	ExConfig ExitCode = 78
)

// String returns the conventional sysexits phrase for the code.
func (c ExitCode) String() string {
	switch c {
	case ExOK:
		return "success"
	case ExUsage:
		return "command line usage error"
	case ExDataErr:
		return "data format error"
	case ExNoInput:
		return "cannot open input"
	case ExNoUser:
		return "addressee unknown"
	case ExNoHost:
		return "host name unknown"
	case ExUnavailable:
		return "service unavailable"
	case ExSoftware:
		return "internal software error"
	case ExOSErr:
		return "system error"
	case ExOSFile:
		return "critical OS file missing"
	case ExCantCreat:
		return "can't create output file"
	case ExIOErr:
		return "input/output error"
	case ExTempFail:
		return "temporary failure"
	case ExProtocol:
		return "remote protocol error"
	case ExNoPerm:
		return "permission denied"
	case ExConfig:
		return "configuration error"
	}
	return fmt.Sprintf("exit code %d", int(c))
}

// ExitError pairs an error with the exit code a caller should hand to
// os.Exit when terminating deliberately. A typical main unwraps it with
// errors.As, prints the error, and exits with the code.
type ExitError struct {
	Code ExitCode
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Code.String()
	}
	return e.Err.Error()
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *ExitError) Unwrap() error {
	return e.Err
}
