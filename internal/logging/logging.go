// Package logging builds the diagnostic logger for leo. Diagnostics go to
// stderr so banners written to stdout stay clean when piped.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

// Leo palette for log output
var (
	colorGold  = lipgloss.Color("#FFD700")
	colorAmber = lipgloss.Color("#FFA500")
	colorRed   = lipgloss.Color("#f43f5e")
	colorMuted = lipgloss.Color("#78716c")
	colorGray  = lipgloss.Color("#a8a29e")
)

// New creates a logger writing to w. Debug enables debug-level messages.
func New(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly, // HH:MM:SS
		Prefix:          "leo",
	})

	if isTerminal(w) {
		logger.SetStyles(leoStyles())
	}
	if debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}

	return logger
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// leoStyles returns charmbracelet/log styles in the banner's gold tones
func leoStyles() *log.Styles {
	styles := log.DefaultStyles()

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Foreground(colorGold).
		Bold(true)

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(colorAmber).
		Bold(true)

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Foreground(colorRed).
		Bold(true)

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(colorMuted)

	styles.Timestamp = lipgloss.NewStyle().Foreground(colorMuted)
	styles.Prefix = lipgloss.NewStyle().Foreground(colorGold).Bold(true)
	styles.Key = lipgloss.NewStyle().Foreground(colorGold)
	styles.Value = lipgloss.NewStyle().Foreground(colorGray)

	return styles
}
