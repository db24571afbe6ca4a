package config

import (
	"testing"

	"github.com/leonpagotto/leo-kit/internal/ui"
	"github.com/leonpagotto/leo-kit/internal/version"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("leo", pflag.ContinueOnError)
	AddFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"LEO_COLOR", "LEO_WIDTH", "LEO_METADATA", "LEO_DEBUG", "NO_COLOR"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	opts, err := Load(newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, ui.ColorAuto, opts.Color)
	assert.Equal(t, 0, opts.Width)
	assert.False(t, opts.Debug)
	assert.Equal(t, version.DefaultMetadataPath(), opts.Metadata)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		env      map[string]string
		color    ui.ColorMode
		width    int
		metadata string
		debug    bool
		wantErr  bool
	}{
		{
			name:  "Flags",
			args:  []string{"--color", "always", "--width", "60", "--metadata", "/opt/leo/package.json", "--debug"},
			color: ui.ColorAlways, width: 60, metadata: "/opt/leo/package.json", debug: true,
		},
		{
			name:  "Environment",
			env:   map[string]string{"LEO_COLOR": "never", "LEO_WIDTH": "100", "LEO_METADATA": "/srv/package.json"},
			color: ui.ColorNever, width: 100, metadata: "/srv/package.json",
		},
		{
			name:  "Flag beats environment",
			args:  []string{"--width", "72"},
			env:   map[string]string{"LEO_WIDTH": "40"},
			color: ui.ColorAuto, width: 72,
		},
		{
			name:  "NO_COLOR turns auto off",
			env:   map[string]string{"NO_COLOR": "1"},
			color: ui.ColorNever,
		},
		{
			name:  "NO_COLOR does not override always",
			args:  []string{"--color", "always"},
			env:   map[string]string{"NO_COLOR": "1"},
			color: ui.ColorAlways,
		},
		{
			name:    "Unknown color mode",
			args:    []string{"--color", "sometimes"},
			wantErr: true,
		},
		{
			name:    "Negative width",
			args:    []string{"--width", "-5"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			opts, err := Load(newFlags(t, tt.args...))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.color, opts.Color)
			assert.Equal(t, tt.width, opts.Width)
			assert.Equal(t, tt.debug, opts.Debug)
			if tt.metadata != "" {
				assert.Equal(t, tt.metadata, opts.Metadata)
			}
		})
	}
}
