package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/internal/message"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/version"
)

var shortVersion bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		if shortVersion {
			fmt.Fprintln(cmd.OutOrStdout(), version.AbbreviatedVersion())
			return
		}
		message.Info(version.FullVersion())
	},
}

func init() {
	versionCmd.Flags().BoolVar(&shortVersion, "short", false, "print only version-commit")
	rootCmd.AddCommand(versionCmd)
}
