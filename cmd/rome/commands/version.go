package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/rome/display"
	"github.com/teranos/rome/version"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show rome version information",
		Long:  `Display version, build time, commit hash, and platform information for the rome binary.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()

			if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
				return display.Write(cmd.OutOrStdout(), display.FormatJSON, info)
			}
			fmt.Fprintln(cmd.OutOrStdout(), info.String())
			fmt.Fprintf(cmd.OutOrStdout(), "Platform: %s\n", info.Platform)
			fmt.Fprintf(cmd.OutOrStdout(), "Go: %s\n", info.GoVersion)
			if !info.Release {
				fmt.Fprintln(cmd.OutOrStdout(), "Development build")
			}
			return nil
		},
	}
	cmd.Flags().BoolP("json", "j", false, "Output version info as JSON")
	return cmd
}
