// Package config resolves leo's runtime settings from command-line flags
// and LEO_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/leonpagotto/leo-kit/internal/ui"
	"github.com/leonpagotto/leo-kit/internal/version"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag names shared by every command
const (
	FlagColor    = "color"
	FlagWidth    = "width"
	FlagMetadata = "metadata"
	FlagDebug    = "debug"

	envPrefix  = "LEO"
	keyNoColor = "no_color"
)

// Options holds the resolved settings
type Options struct {
	Color    ui.ColorMode // auto, always or never
	Width    int          // Terminal width override, 0 to detect
	Metadata string       // Path to package metadata holding the version
	Debug    bool         // Debug logging on stderr
}

// AddFlags registers the global flags on fs
func AddFlags(fs *pflag.FlagSet) {
	fs.String(FlagColor, string(ui.ColorAuto), "Colorize output: auto, always or never")
	fs.Int(FlagWidth, 0, "Terminal width to lay out for (0 detects it)")
	fs.String(FlagMetadata, "", "Package metadata file to read the version from")
	fs.Bool(FlagDebug, false, "Enable debug logging")
}

// Load resolves Options from fs and the environment. Flags set on the
// command line win over LEO_* variables, which win over flag defaults.
func Load(fs *pflag.FlagSet) (*Options, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	if err := v.BindEnv(keyNoColor, "NO_COLOR"); err != nil {
		return nil, fmt.Errorf("failed to bind NO_COLOR: %w", err)
	}

	mode, err := ui.ParseColorMode(v.GetString(FlagColor))
	if err != nil {
		return nil, err
	}
	if mode == ui.ColorAuto && v.GetString(keyNoColor) != "" {
		mode = ui.ColorNever
	}

	width := v.GetInt(FlagWidth)
	if width < 0 {
		return nil, fmt.Errorf("invalid width %d: must be zero or positive", width)
	}

	metadata := v.GetString(FlagMetadata)
	if metadata == "" {
		metadata = version.DefaultMetadataPath()
	}

	return &Options{
		Color:    mode,
		Width:    width,
		Metadata: metadata,
		Debug:    v.GetBool(FlagDebug),
	}, nil
}
