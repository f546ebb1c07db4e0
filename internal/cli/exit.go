package cli

import (
	"fmt"
	"io"
	"os"
)

// Exit codes for the jv commands.
const (
	ExitOK      = 0
	ExitError   = 1
	ExitUsage   = 2
	ExitNoMatch = 3
)

// Result holds the output destination and exit code for program
// termination.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the result message to the configured output destination.
func (r *Result) Print() {
	fmt.Fprint(r.Output, r.Message)
}

// Success creates a stdout result with exit code 0.
func Success(message string) *Result {
	return &Result{Output: os.Stdout, ExitCode: ExitOK, Message: message}
}

// Errorf creates a stderr result with exit code 1.
func Errorf(format string, a ...any) *Result {
	return &Result{Output: os.Stderr, ExitCode: ExitError, Message: fmt.Sprintf(format, a...)}
}

// Usagef creates a stderr result with the usage exit code.
func Usagef(format string, a ...any) *Result {
	return &Result{Output: os.Stderr, ExitCode: ExitUsage, Message: fmt.Sprintf(format, a...)}
}
