package cmd

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/internal/registry"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
)

var listHandlersCmd = &cobra.Command{
	Use:   "list-handlers",
	Short: "Display the registered resource handlers in a tree structure",
	Run: func(cmd *cobra.Command, args []string) {
		displayHandlerTree(cmd.OutOrStdout(), registry.Registry)
	},
}

func displayHandlerTree(w io.Writer, reg *registry.HandlerRegistry) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	actions := make([]string, 0, len(cfn.Actions))
	for _, a := range cfn.Actions {
		actions = append(actions, strings.ToLower(string(a)))
	}

	hierarchy := reg.GetHierarchy()
	for _, service := range slices.Sorted(maps.Keys(hierarchy)) {
		fmt.Fprintf(w, "\n%s\n", bold.Sprint(service))
		for _, typeName := range hierarchy[service] {
			entry, ok := reg.GetRegistryEntry(typeName)
			if !ok {
				continue
			}
			fmt.Fprintf(w, "├─ %s - %s\n", entry.TypeHierarchy.Resource, entry.Metadata.Description)
			fmt.Fprintf(w, "│    %s %s\n", faint.Sprint(entry.TypeName), faint.Sprintf("(%s)", entry.Metadata.Identifier))
			fmt.Fprintf(w, "│    %s\n", strings.Join(actions, " "))
		}
	}
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(listHandlersCmd)
}
