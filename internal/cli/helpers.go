package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Confirm prompts the user for confirmation
func Confirm(prompt string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}

	fmt.Fprint(stdout, prompt+suffix)

	reader := bufio.NewReader(stdin)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))

	if response == "" {
		return defaultYes, nil
	}

	return response == "y" || response == "yes", nil
}

// statusKind selects the marker of a status line: a symbol normally, a
// plain label with --no-color
type statusKind struct {
	symbol string
	label  string
	toErr  bool
	always bool // printed even with --quiet
}

var (
	statusSuccess = statusKind{symbol: "✓", label: "OK"}
	statusInfo    = statusKind{symbol: "ℹ", label: "INFO"}
	statusWarning = statusKind{symbol: "⚠", label: "WARNING", toErr: true, always: true}
	statusError   = statusKind{symbol: "✗", label: "ERROR", toErr: true, always: true}
)

// printStatus writes one status message. Continuation lines of a multi-line
// message are indented under the first.
func printStatus(kind statusKind, format string, args ...interface{}) {
	if quiet && !kind.always {
		return
	}

	w := stdout
	if kind.toErr {
		w = stderr
	}

	prefix := kind.symbol + " "
	if noColor {
		prefix = kind.label + ": "
	}

	msg := fmt.Sprintf(format, args...)
	indent := "\n" + strings.Repeat(" ", utf8.RuneCountInString(prefix))
	fmt.Fprintf(w, "%s%s\n", prefix, strings.ReplaceAll(msg, "\n", indent))
}

// PrintSuccess prints a success message unless quiet mode is enabled
func PrintSuccess(format string, args ...interface{}) {
	printStatus(statusSuccess, format, args...)
}

// PrintInfo prints an info message unless quiet mode is enabled
func PrintInfo(format string, args ...interface{}) {
	printStatus(statusInfo, format, args...)
}

// PrintWarning prints a warning message to stderr
func PrintWarning(format string, args ...interface{}) {
	printStatus(statusWarning, format, args...)
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...interface{}) {
	printStatus(statusError, format, args...)
}

// Global flags (will be set from cmd package)
var (
	quiet       bool
	noColor     bool
	skipConfirm bool

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	stdin  io.Reader = os.Stdin
)

// SetGlobalFlags sets the global flag values from the cmd package
func SetGlobalFlags(q, nc, sc bool) {
	quiet = q
	noColor = nc
	skipConfirm = sc
}

// SetStreams redirects status output and confirmation input. Nil arguments
// keep the current stream.
func SetStreams(out, errOut io.Writer, in io.Reader) {
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
	if in != nil {
		stdin = in
	}
}
