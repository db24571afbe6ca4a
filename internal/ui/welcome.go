package ui

import (
	"strings"
)

const (
	docsURL    = "https://github.com/leonpagotto/leo-kit#readme"
	issuesURL  = "https://github.com/leonpagotto/leo-kit/issues"
	profileURL = "https://github.com/leonpagotto"

	// boxInner is the width between the welcome box borders
	boxInner = 63
	indent   = "    "
)

// Command describes one entry in the welcome message command list
type Command struct {
	Name        string
	Description string
}

// Commands lists the leo commands advertised after installation
var Commands = []Command{
	{Name: "leo init", Description: "Set up complete workflow in current project"},
	{Name: "leo issue", Description: "Create spec-driven issue from templates"},
	{Name: "leo labels", Description: "Configure GitHub labels (P0-P3, types, status)"},
	{Name: "leo vscode", Description: "Install VS Code Copilot instructions"},
	{Name: "leo status", Description: "Check workflow setup status"},
	{Name: "leo docs", Description: "Open documentation in browser"},
}

// Aliases maps short command forms to the command they expand to
var Aliases = []struct{ Alias, Target string }{
	{"leo i", "issue"},
	{"leo l", "labels"},
	{"leo vs", "vscode"},
	{"leo s", "status"},
}

// WelcomeMessage returns the onboarding text shown after installation
func (s *Set) WelcomeMessage() string {
	t := s.theme
	var b strings.Builder

	line := func(parts ...string) {
		for _, p := range parts {
			b.WriteString(p)
		}
		b.WriteString("\n")
	}

	blankRow := t.Yellow.Render(indent + "║" + strings.Repeat(" ", boxInner) + "║")
	rule := t.Yellow.Render(indent + strings.Repeat("═", boxInner))

	// Title box
	line()
	line(t.Yellow.Render(indent + "╔" + strings.Repeat("═", boxInner) + "╗"))
	line(blankRow)
	line(
		t.Yellow.Render(indent+"║"+strings.Repeat(" ", 18)),
		t.Yellow.Render("🦁  "),
		t.YellowBold.Render("LEO-KIT"),
		t.Yellow.Render("  🦁"),
		t.Yellow.Render(strings.Repeat(" ", 23)+"║"),
	)
	line(blankRow)
	line(
		t.Yellow.Render(indent+"║"),
		"        ",
		t.WhiteBold.Render("Complete GitHub Workflow Automation Toolkit"),
		"        ",
		t.Yellow.Render("║"),
	)
	line(blankRow)
	line(t.Yellow.Render(indent + "╚" + strings.Repeat("═", boxInner) + "╝"))
	line()

	line(indent, t.GreenBold.Render("✨ Successfully installed LEO Workflow Kit! ✨"))
	line()
	line(indent, t.White.Render("Transform your development workflow with:"))
	bullets := []struct {
		marker string
		text   string
	}{
		{t.Cyan.Render("  •"), "Spec-driven development methodology"},
		{t.Blue.Render("  •"), "Automated GitHub Projects integration"},
		{t.Magenta.Render("  •"), "Comprehensive issue templates"},
		{t.Cyan.Render("  •"), "Smart label management"},
		{t.Blue.Render("  •"), "VS Code Copilot integration"},
	}
	for _, bl := range bullets {
		line(indent, bl.marker, " ", t.White.Render(bl.text))
	}
	line()
	line(rule)
	line()

	// Quick start
	line(indent, t.CyanBold.Render("🚀 Quick Start Guide:"))
	line()
	line(indent, t.WhiteBold.Render("Step 1:"), " Navigate to your project")
	line("       ", t.Gray.Render("$"), " ", t.Yellow.Render("cd your-project"))
	line()
	line(indent, t.WhiteBold.Render("Step 2:"), " Initialize LEO workflow (one-time setup)")
	line("       ", t.Gray.Render("$"), " ", t.Yellow.Render("leo init"))
	line("       ", t.Gray.Render("   → Sets up docs, templates, labels, and VS Code config"))
	line()
	line(indent, t.WhiteBold.Render("Step 3:"), " Create your first spec-driven issue")
	line("       ", t.Gray.Render("$"), " ", t.Yellow.Render("leo issue"))
	line("       ", t.Gray.Render("   → Choose from 8 professional templates"))
	line()
	line(rule)
	line()

	// Commands
	line(indent, t.CyanBold.Render("📦 Available Commands:"))
	line()
	for _, c := range Commands {
		pad := strings.Repeat(" ", max(16-len(c.Name), 1))
		line("       ", t.YellowBold.Render(c.Name), pad, t.Gray.Render("→"), " ", t.White.Render(c.Description))
	}
	line()

	aliases := []string{t.Gray.Render("Aliases:")}
	for i, a := range Aliases {
		sep := ","
		if i == len(Aliases)-1 {
			sep = ""
		}
		aliases = append(aliases, t.Yellow.Render(a.Alias), t.Gray.Render("("+a.Target+")"+sep))
	}
	line(indent, strings.Join(aliases, " "))
	line()
	line(rule)
	line()

	// Links
	line(indent, t.CyanBold.Render("📚 Learn More:"))
	line()
	line(indent, t.White.Render("Documentation:"), " ", t.Link.Render(docsURL))
	line(indent, t.White.Render("Report Issues:  "), " ", t.Link.Render(issuesURL))
	line(indent, t.White.Render("GitHub Profile: "), " ", t.Link.Render(profileURL))
	line()
	line(rule)
	line()

	line(indent,
		t.GreenBold.Render("🎉 Ready to streamline your workflow!"), " ",
		t.Gray.Render("Start with"), " ",
		t.Yellow.Render("leo init"),
	)
	line()

	return b.String()
}
