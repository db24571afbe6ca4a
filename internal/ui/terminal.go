package ui

import (
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const (
	// DefaultWidth is assumed when the width cannot be detected
	DefaultWidth = 80

	// CompactThreshold is the narrowest width that still gets the full banner
	CompactThreshold = 70
)

// IsTerminal checks if w is a TTY
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// TerminalWidth returns the column count of w when it is a terminal,
// then tries $COLUMNS, then falls back to DefaultWidth.
func TerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && IsTerminal(f) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}

	if cols := os.Getenv("COLUMNS"); cols != "" {
		if width, err := strconv.Atoi(cols); err == nil && width > 0 {
			return width
		}
	}

	return DefaultWidth
}

// IsCompact reports whether width calls for the compact banner
func IsCompact(width int) bool {
	return width < CompactThreshold
}
