package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/internal/message"
)

var docDir string

var docCmd = &cobra.Command{
	Use:   "gendoc",
	Short: "Generate Markdown documentation",
	Long:  `Generate Markdown documentation for the CLI and its subcommands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		excludedCmds := []string{"gendoc", "completion"}
		for _, c := range rootCmd.Commands() {
			for _, e := range excludedCmds {
				if c.Name() == e {
					rootCmd.RemoveCommand(c)
					break
				}
			}
		}

		if err := os.MkdirAll(docDir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", docDir, err)
		}
		if err := doc.GenMarkdownTree(rootCmd, docDir); err != nil {
			return fmt.Errorf("failed to generate documentation: %w", err)
		}
		message.Success("Documentation generated in %s", docDir)
		return nil
	},
}

func init() {
	docCmd.Flags().StringVar(&docDir, "dir", "./docs", "output directory")
	rootCmd.AddCommand(docCmd)
}
