package ui

import (
	_ "embed"
	"os"
	"strings"
	"sync"

	"github.com/leonpagotto/leo-kit/internal/version"
)

//go:embed banner.txt
var banner string

// bannerWidth is the column span the subtitle lines are centered in
const bannerWidth = 77

const (
	tagline  = "GitHub Workflow Automation Toolkit"
	features = "⚡ Initialize  •  🎯 Issues  •  📋 Labels  •  🔄 Automation"
	author   = "Leo Pagotto"
)

// Set renders every banner variant for one theme and version
type Set struct {
	theme   *Theme
	version string
}

// NewSet creates a banner set
func NewSet(theme *Theme, version string) *Set {
	return &Set{theme: theme, version: version}
}

// Version returns the version shown in the banners
func (s *Set) Version() string {
	return s.version
}

// Theme returns the styles the set renders with
func (s *Set) Theme() *Theme {
	return s.theme
}

// Banner returns the full ASCII art logo with a centered subtitle and
// version line.
func (s *Set) Banner() string {
	t := s.theme
	var b strings.Builder

	b.WriteString("\n")
	for i, line := range logoLines() {
		style := t.Gradient[min(i, len(t.Gradient)-1)]
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	versionText := "Version " + s.version + "  •  Made with ❤️  by " + author

	b.WriteString("\n")
	b.WriteString(CenterText(t.Cyan.Render("🦁  "+tagline+"  🦁"), bannerWidth))
	b.WriteString("\n\n")
	b.WriteString(CenterText(t.White.Render(features), bannerWidth))
	b.WriteString("\n\n")
	b.WriteString(CenterText(t.Gray.Render(versionText), bannerWidth))
	b.WriteString("\n")

	return b.String()
}

// CompactBanner returns the two-line variant for narrow terminals
func (s *Set) CompactBanner() string {
	t := s.theme
	return "\n" +
		t.Yellow.Render("    🦁") + "  " + t.YellowBold.Render("LEO-KIT") + "\n" +
		"    " + t.Gray.Render(tagline) + "\n"
}

// SmallLogo returns the inline symbol used in command output
func (s *Set) SmallLogo() string {
	return s.theme.Yellow.Render("🦁")
}

// Responsive picks the compact banner below CompactThreshold columns and
// the full banner otherwise.
func (s *Set) Responsive(width int) string {
	if IsCompact(width) {
		return s.CompactBanner()
	}
	return s.Banner()
}

func logoLines() []string {
	return strings.Split(strings.TrimRight(banner, "\n"), "\n")
}

var defaultSet = sync.OnceValue(func() *Set {
	return NewSet(
		NewTheme(os.Stdout, ColorAuto),
		version.Resolve(version.DefaultMetadataPath()),
	)
})

// Default returns the set used by the package-level helpers, built on
// first use for stdout.
func Default() *Set {
	return defaultSet()
}

// Banner returns the full banner from the default set
func Banner() string {
	return Default().Banner()
}

// CompactBanner returns the compact banner from the default set
func CompactBanner() string {
	return Default().CompactBanner()
}

// WelcomeMessage returns the onboarding message from the default set
func WelcomeMessage() string {
	return Default().WelcomeMessage()
}

// SmallLogo returns the inline symbol from the default set
func SmallLogo() string {
	return Default().SmallLogo()
}

// ResponsiveBanner returns the banner that fits the width of stdout
func ResponsiveBanner() string {
	return Default().Responsive(TerminalWidth(os.Stdout))
}
