package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewModel_Resize(t *testing.T) {
	set := plainSet("2.6.2")
	m := NewPreviewModel(set, 100)

	assert.Nil(t, m.Init())
	assert.True(t, strings.HasPrefix(m.View(), set.Banner()))
	assert.Contains(t, m.View(), "100 columns • full layout")

	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 69, Height: 30})
	assert.Nil(t, cmd)
	m = updated.(PreviewModel)

	assert.Equal(t, 69, m.Width())
	assert.True(t, strings.HasPrefix(m.View(), set.CompactBanner()))
	assert.Contains(t, m.View(), "69 columns • compact layout")

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 70, Height: 30})
	m = updated.(PreviewModel)
	assert.True(t, strings.HasPrefix(m.View(), set.Banner()))
}

func TestPreviewModel_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		quit bool
	}{
		{name: "q", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, quit: true},
		{name: "esc", msg: tea.KeyMsg{Type: tea.KeyEsc}, quit: true},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, quit: true},
		{name: "other key", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, quit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPreviewModel(plainSet("2.6.2"), 80)
			_, cmd := m.Update(tt.msg)

			if !tt.quit {
				assert.Nil(t, cmd)
				return
			}
			require.NotNil(t, cmd)
			_, ok := cmd().(tea.QuitMsg)
			assert.True(t, ok, "expected tea.QuitMsg")
		})
	}
}
