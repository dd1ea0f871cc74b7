// Package cli provides the command-line interface for the unlocker.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Reporter prints engine status messages to the terminal.
// If quiet is true, only errors are printed.
type Reporter struct {
	quiet bool
}

// NewReporter creates a new terminal reporter.
func NewReporter(quiet bool) *Reporter {
	return &Reporter{quiet: quiet}
}

// Status prints a status message from the engine.
func (r *Reporter) Status(message string) {
	if r.quiet {
		return
	}
	fmt.Fprintln(os.Stderr, message)
}

// PrintError prints an error message in red.
func (r *Reporter) PrintError(format string, args ...any) {
	color.New(color.FgRed).Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// PrintSuccess prints a success message in green.
func (r *Reporter) PrintSuccess(format string, args ...any) {
	if r.quiet {
		return
	}
	color.New(color.FgGreen).Fprintf(os.Stderr, format+"\n", args...)
}

// PrintWarn prints a warning message in yellow.
func (r *Reporter) PrintWarn(format string, args ...any) {
	if r.quiet {
		return
	}
	color.New(color.FgYellow).Fprintf(os.Stderr, format+"\n", args...)
}
