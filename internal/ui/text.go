package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// VisibleWidth returns the number of terminal cells s occupies once escape
// sequences are stripped. For multi-line input it is the widest line.
func VisibleWidth(s string) int {
	return lipgloss.Width(s)
}

// CenterText pads text with spaces so its visible content sits in the middle
// of width columns. The left side gets the smaller half of an odd remainder.
// Text wider than width is returned as is.
func CenterText(text string, width int) string {
	total := max(width-VisibleWidth(text), 0)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}
