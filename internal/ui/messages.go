package ui

import (
	"fmt"
	"io"
	"os"
)

// Destinations for status lines
var (
	Out    io.Writer = os.Stdout
	ErrOut io.Writer = os.Stderr
)

// Warning prints a warning line
func Warning(format string, args ...any) {
	fmt.Fprintf(Out, "  %s %s\n", WarningStyle.Render("⚠"), fmt.Sprintf(format, args...))
}

// Error prints an error line to stderr
func Error(format string, args ...any) {
	fmt.Fprintf(ErrOut, "  %s %s\n", ErrorStyle.Render("✖"), fmt.Sprintf(format, args...))
}
