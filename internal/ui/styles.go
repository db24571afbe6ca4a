package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode controls whether rendered output carries color escapes
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Detect from the output writer
	ColorAlways ColorMode = "always" // Force 24-bit color
	ColorNever  ColorMode = "never"  // Plain text
)

// ParseColorMode validates a --color value
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

// Terminal palette. ANSI indexes follow the terminal's own theme.
var (
	yellow  = lipgloss.Color("3")
	cyan    = lipgloss.Color("6")
	white   = lipgloss.Color("7")
	gray    = lipgloss.Color("8")
	green   = lipgloss.Color("2")
	blue    = lipgloss.Color("4")
	magenta = lipgloss.Color("5")
	red     = lipgloss.Color("1")

	// Logo gradient, top to bottom
	gradient = []lipgloss.Color{
		"#FFD700",
		"#FFC700",
		"#FFB700",
		"#FFA500",
		"#FF9500",
		"#FF8C00",
	}
)

// Theme is the set of styles used to render banners for one output
type Theme struct {
	renderer *lipgloss.Renderer

	Yellow     lipgloss.Style
	YellowBold lipgloss.Style
	Cyan       lipgloss.Style
	CyanBold   lipgloss.Style
	White      lipgloss.Style
	WhiteBold  lipgloss.Style
	Gray       lipgloss.Style
	GreenBold  lipgloss.Style
	Blue       lipgloss.Style
	Link       lipgloss.Style
	Magenta    lipgloss.Style
	Gradient   []lipgloss.Style
}

// NewTheme builds a theme for w. ColorAuto keeps lipgloss's profile detection.
func NewTheme(w io.Writer, mode ColorMode) *Theme {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return newTheme(r)
}

// NewThemeWithProfile builds a theme with a fixed color profile
func NewThemeWithProfile(w io.Writer, profile termenv.Profile) *Theme {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return newTheme(r)
}

func newTheme(r *lipgloss.Renderer) *Theme {
	fg := func(c lipgloss.TerminalColor) lipgloss.Style {
		return r.NewStyle().Foreground(c)
	}

	t := &Theme{
		renderer:   r,
		Yellow:     fg(yellow),
		YellowBold: fg(yellow).Bold(true),
		Cyan:       fg(cyan),
		CyanBold:   fg(cyan).Bold(true),
		White:      fg(white),
		WhiteBold:  fg(white).Bold(true),
		Gray:       fg(gray),
		GreenBold:  fg(green).Bold(true),
		Blue:       fg(blue),
		Link:       fg(blue).Underline(true),
		Magenta:    fg(magenta),
	}
	for _, c := range gradient {
		t.Gradient = append(t.Gradient, fg(c))
	}
	return t
}

// Profile reports the color profile the theme renders with
func (t *Theme) Profile() termenv.Profile {
	return t.renderer.ColorProfile()
}

// Status line styles, rendered against stdout
var (
	WarningStyle = lipgloss.NewStyle().Foreground(yellow)
	ErrorStyle   = lipgloss.NewStyle().Foreground(red)
)
