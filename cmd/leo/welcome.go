package main

import (
	"fmt"

	"github.com/leonpagotto/leo-kit/internal/ui"
	"github.com/spf13/cobra"
)

var welcomeCmd = &cobra.Command{
	Use:   "welcome",
	Short: "Show the post-install welcome message",
	Long: `Show the onboarding message printed after installation, with the
quick start guide, the available commands and links to the documentation.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pager, _ := cmd.Flags().GetBool("pager")
		out := cmd.OutOrStdout()

		if pager {
			if ui.IsTerminal(out) {
				return ui.RunPager(current.set)
			}
			ui.Warning("stdout is not a terminal, printing without the pager")
		}

		fmt.Fprint(out, current.set.WelcomeMessage())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(welcomeCmd)

	welcomeCmd.Flags().Bool("pager", false, "Scroll the message in a pager")
}
