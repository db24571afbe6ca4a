package main

import (
	"fmt"

	"github.com/leonpagotto/leo-kit/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Long:  "Display the leo-kit version, build time, commit and Go version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s leo-kit %s\n", current.set.SmallLogo(), current.set.Version())
		fmt.Fprintf(out, "Built:      %s\n", version.BuildTime)
		fmt.Fprintf(out, "Commit:     %s\n", version.Commit)
		fmt.Fprintf(out, "Go version: %s\n", version.GoVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
