package ui

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input    string
		expected ColorMode
		wantErr  bool
	}{
		{input: "auto", expected: ColorAuto},
		{input: "always", expected: ColorAlways},
		{input: "never", expected: ColorNever},
		{input: "", expected: ColorAuto},
		{input: "rainbow", wantErr: true},
		{input: "ALWAYS", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColorMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNewTheme_Profiles(t *testing.T) {
	var buf bytes.Buffer

	assert.Equal(t, termenv.TrueColor, NewTheme(&buf, ColorAlways).Profile())
	assert.Equal(t, termenv.Ascii, NewTheme(&buf, ColorNever).Profile())
	// A buffer is not a terminal, so detection settles on plain text
	assert.Equal(t, termenv.Ascii, NewTheme(&buf, ColorAuto).Profile())
}

func TestNewTheme_Rendering(t *testing.T) {
	plain := NewTheme(&bytes.Buffer{}, ColorNever)
	assert.Equal(t, "leo", plain.YellowBold.Render("leo"))
	assert.Equal(t, "docs", plain.Link.Render("docs"))

	colored := NewTheme(&bytes.Buffer{}, ColorAlways)
	assert.Equal(t, "\x1b[33mleo\x1b[0m", colored.Yellow.Render("leo"))
	assert.Len(t, colored.Gradient, 6)
}
