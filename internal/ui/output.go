package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// UI provides user interface methods
type UI struct {
	output         io.Writer
	nonInteractive bool // If true, prompts return their default
	// Color functions
	colorInfo    *color.Color
	colorSuccess *color.Color
	colorWarning *color.Color
	colorError   *color.Color
	colorBold    *color.Color
	colorLabel   *color.Color
	colorCommand *color.Color
}

// New creates a new UI instance writing to standard output
func New() *UI {
	return &UI{
		output:         os.Stdout,
		nonInteractive: false,
		colorInfo:      color.New(color.FgBlue),
		colorSuccess:   color.New(color.FgGreen),
		colorWarning:   color.New(color.FgYellow),
		colorError:     color.New(color.FgRed),
		colorBold:      color.New(color.Bold),
		colorLabel:     color.New(color.FgCyan),
		colorCommand:   color.New(color.FgYellow),
	}
}

// NewWithWriter creates a UI with custom output writer (useful for testing)
func NewWithWriter(w io.Writer) *UI {
	ui := New()
	ui.output = w
	return ui
}

// SetNonInteractive enables or disables non-interactive mode
func (u *UI) SetNonInteractive(enabled bool) {
	u.nonInteractive = enabled
}

// IsNonInteractive returns true if non-interactive mode is enabled
func (u *UI) IsNonInteractive() bool {
	return u.nonInteractive
}

// DisableColor turns off ANSI escape codes for this UI only.
func (u *UI) DisableColor() {
	for _, c := range []*color.Color{
		u.colorInfo, u.colorSuccess, u.colorWarning, u.colorError,
		u.colorBold, u.colorLabel, u.colorCommand,
	} {
		c.DisableColor()
	}
}

// Running announces a command before it starts.
func (u *UI) Running(name, command string) {
	fmt.Fprintln(u.output)
	u.colorLabel.Fprintf(u.output, "Running %s", name)
	fmt.Fprint(u.output, " : ")
	u.colorCommand.Fprint(u.output, command)
	fmt.Fprintln(u.output)
	fmt.Fprintln(u.output)
}

// Passed reports a command that exited cleanly.
func (u *UI) Passed(name, message string) {
	fmt.Fprintln(u.output)
	u.colorSuccess.Fprintf(u.output, "%s %s\n", name, message)
	fmt.Fprintln(u.output)
}

// Failed reports a command that could not run or exited non-zero.
func (u *UI) Failed(name, message string) {
	fmt.Fprintln(u.output)
	u.colorError.Fprintf(u.output, "%s %s\n", name, message)
	fmt.Fprintln(u.output)
}

// Info prints an info message
func (u *UI) Info(msg string) {
	u.colorInfo.Fprintf(u.output, "[INFO] %s\n", msg)
}

// Infof prints a formatted info message
func (u *UI) Infof(format string, args ...interface{}) {
	u.Info(fmt.Sprintf(format, args...))
}

// Success prints a success message
func (u *UI) Success(msg string) {
	u.colorSuccess.Fprintf(u.output, "[✓] %s\n", msg)
}

// Successf prints a formatted success message
func (u *UI) Successf(format string, args ...interface{}) {
	u.Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message
func (u *UI) Warning(msg string) {
	u.colorWarning.Fprintf(u.output, "[WARNING] %s\n", msg)
}

// Warningf prints a formatted warning message
func (u *UI) Warningf(format string, args ...interface{}) {
	u.Warning(fmt.Sprintf(format, args...))
}

// Error prints an error message
func (u *UI) Error(msg string) {
	u.colorError.Fprintf(u.output, "[ERROR] %s\n", msg)
}

// Errorf prints a formatted error message
func (u *UI) Errorf(format string, args ...interface{}) {
	u.Error(fmt.Sprintf(format, args...))
}

// Header prints a header with a box
func (u *UI) Header(title string) {
	width := 70
	border := strings.Repeat("=", width)

	fmt.Fprintln(u.output)
	u.colorLabel.Fprintln(u.output, border)
	u.colorLabel.Fprintf(u.output, "  %s\n", title)
	u.colorLabel.Fprintln(u.output, border)
	fmt.Fprintln(u.output)
}

// Separator prints a separator line
func (u *UI) Separator() {
	u.colorLabel.Fprintln(u.output, strings.Repeat("-", 70))
}

// Print prints a plain message without formatting
func (u *UI) Print(msg string) {
	fmt.Fprintln(u.output, msg)
}

// Printf prints a formatted plain message
func (u *UI) Printf(format string, args ...interface{}) {
	fmt.Fprintf(u.output, format+"\n", args...)
}

// Bold prints bold text
func (u *UI) Bold(msg string) {
	u.colorBold.Fprintln(u.output, msg)
}
