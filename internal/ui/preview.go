package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// PreviewModel is a Bubbletea model that redraws the responsive banner
// whenever the terminal is resized.
type PreviewModel struct {
	set   *Set
	width int
}

// NewPreviewModel creates a preview starting at width columns
func NewPreviewModel(set *Set, width int) PreviewModel {
	return PreviewModel{set: set, width: width}
}

// Width returns the width the preview is currently laid out for
func (m PreviewModel) Width() int {
	return m.width
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuitKey(msg) {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	return m, nil
}

func (m PreviewModel) View() string {
	layout := "full"
	if IsCompact(m.width) {
		layout = "compact"
	}

	status := fmt.Sprintf("%d columns • %s layout • threshold %d • q to quit",
		m.width, layout, CompactThreshold)

	return m.set.Responsive(m.width) + "\n" + m.set.theme.Gray.Render(status) + "\n"
}

// RunPreview shows the live banner preview until the user quits
func RunPreview(set *Set, width int) error {
	p := tea.NewProgram(NewPreviewModel(set, width), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func isQuitKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}
