package main

import (
	"fmt"

	"github.com/leonpagotto/leo-kit/internal/ui"
	"github.com/spf13/cobra"
)

var bannerCmd = &cobra.Command{
	Use:   "banner",
	Short: "Print the LEO-KIT banner",
	Long: `Print the banner that fits the current terminal.

Terminals narrower than 70 columns get the compact banner, wider ones the
full ASCII art logo. Use flags to pick a variant:
  --compact   Always print the compact banner
  --full      Always print the full banner
  --watch     Preview the banner live while resizing the terminal`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		compact, _ := cmd.Flags().GetBool("compact")
		full, _ := cmd.Flags().GetBool("full")
		watch, _ := cmd.Flags().GetBool("watch")

		set := current.set
		out := cmd.OutOrStdout()

		if watch {
			if ui.IsTerminal(out) {
				return ui.RunPreview(set, current.width(cmd))
			}
			ui.Warning("stdout is not a terminal, printing the static banner")
		}

		switch {
		case compact:
			fmt.Fprint(out, set.CompactBanner())
		case full:
			fmt.Fprint(out, set.Banner())
		default:
			fmt.Fprint(out, set.Responsive(current.width(cmd)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bannerCmd)

	bannerCmd.Flags().Bool("compact", false, "Print the compact banner")
	bannerCmd.Flags().Bool("full", false, "Print the full banner")
	bannerCmd.Flags().Bool("watch", false, "Preview the banner live while resizing")
	bannerCmd.MarkFlagsMutuallyExclusive("compact", "full", "watch")
}
