package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/leonpagotto/leo-kit/internal/config"
	"github.com/leonpagotto/leo-kit/internal/logging"
	"github.com/leonpagotto/leo-kit/internal/ui"
	"github.com/leonpagotto/leo-kit/internal/version"
	"github.com/spf13/cobra"
)

// session holds what every command needs once flags are parsed
type session struct {
	opts   *config.Options
	logger *log.Logger
	set    *ui.Set
}

var current *session

var rootCmd = &cobra.Command{
	Use:   "leo",
	Short: "LEO-KIT - GitHub Workflow Automation Toolkit",
	Long: `leo sets up spec-driven GitHub workflows in your projects.

It provides:
  • Project initialization (docs, templates, labels, VS Code config)
  • Spec-driven issue creation from templates
  • GitHub label management
  • VS Code Copilot instructions

Run 'leo welcome' for the quick start guide.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		current = s
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.OutOrStdout(), current.set.Responsive(current.width(cmd)))
		return cmd.Help()
	},
}

func newSession(cmd *cobra.Command) (*session, error) {
	opts, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}

	logger := logging.New(cmd.ErrOrStderr(), opts.Debug)
	ui.Out = cmd.ErrOrStderr()

	v, err := version.Lookup(opts.Metadata)
	if err != nil {
		logger.Debug("version metadata unavailable, using fallback",
			"path", opts.Metadata, "fallback", v, "err", err)
	} else {
		logger.Debug("version metadata loaded", "path", opts.Metadata, "version", v)
	}

	theme := ui.NewTheme(cmd.OutOrStdout(), opts.Color)
	logger.Debug("color profile", "mode", opts.Color, "profile", theme.Profile())

	return &session{
		opts:   opts,
		logger: logger,
		set:    ui.NewSet(theme, v),
	}, nil
}

// width returns the --width override or the detected width of the output
func (s *session) width(cmd *cobra.Command) int {
	w := s.opts.Width
	source := "flag"
	if w == 0 {
		w = ui.TerminalWidth(cmd.OutOrStdout())
		source = "terminal"
	}

	layout := "full"
	if ui.IsCompact(w) {
		layout = "compact"
	}
	s.logger.Debug("banner layout", "width", w, "source", source, "layout", layout)
	return w
}

func init() {
	config.AddFlags(rootCmd.PersistentFlags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}
}
