package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// footerHeight is the number of rows reserved below the viewport
const footerHeight = 1

// PagerModel scrolls the welcome message inside a viewport
type PagerModel struct {
	set      *Set
	content  string
	viewport viewport.Model
	ready    bool
}

// NewPagerModel creates a pager over the set's welcome message
func NewPagerModel(set *Set) PagerModel {
	return PagerModel{
		set:     set,
		content: set.WelcomeMessage(),
	}
}

func (m PagerModel) Init() tea.Cmd {
	return nil
}

func (m PagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuitKey(msg) {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		height := max(msg.Height-footerHeight, 1)
		if !m.ready {
			// The first size message tells us the real dimensions
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m PagerModel) View() string {
	if !m.ready {
		return "\n  Loading..."
	}

	footer := fmt.Sprintf("%3.f%% • ↑/↓ scroll • q to quit", m.viewport.ScrollPercent()*100)
	return m.viewport.View() + "\n" + m.set.theme.Gray.Render(footer)
}

// RunPager shows the welcome message in a scrollable pager
func RunPager(set *Set) error {
	p := tea.NewProgram(NewPagerModel(set), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
