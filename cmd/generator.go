package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/internal/options"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/internal/registry"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
)

// generateCommands builds the service -> resource -> action command tree from the registry.
func generateCommands(root *cobra.Command) {
	for service, typeNames := range registry.GetHierarchy() {
		serviceCmd := &cobra.Command{
			Use:   service,
			Short: fmt.Sprintf("%s resource handlers", service),
		}

		for _, typeName := range typeNames {
			generateResourceCommand(typeName, serviceCmd)
		}

		root.AddCommand(serviceCmd)
	}
}

func generateResourceCommand(typeName string, parent *cobra.Command) {
	entry, ok := registry.GetRegistryEntry(typeName)
	if !ok {
		return
	}

	resourceCmd := &cobra.Command{
		Use:   entry.TypeHierarchy.Resource,
		Short: entry.Metadata.Description,
		Long:  fmt.Sprintf("%s\n\nType: %s\nIdentifier: %s", entry.Metadata.Description, entry.TypeName, entry.Metadata.Identifier),
	}

	for _, action := range cfn.Actions {
		generateActionCommand(entry, action, resourceCmd)
	}

	parent.AddCommand(resourceCmd)
}

// actionOptions returns the flags an action command takes. LIST is the only action that
// can run without a request.
func actionOptions(action cfn.Action) []*options.Option {
	return []*options.Option{
		options.WithRequired(options.RequestOpt, action != cfn.List),
		&options.QueryOpt,
		&options.OutputOpt,
		&options.FileNameOpt,
	}
}

func generateActionCommand(entry registry.RegistryEntry, action cfn.Action, parent *cobra.Command) {
	opts := actionOptions(action)

	cmd := &cobra.Command{
		Use:   strings.ToLower(string(action)),
		Short: fmt.Sprintf("Run the %s handler of %s", action, entry.TypeName),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := getOptsFromFlags(cmd.Flags(), opts)
			if err := options.ValidateOptions(parsed); err != nil {
				return err
			}

			return runHandler(cmd.Context(), newRunRequest(entry, action, parsed), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	options2Flag(opts, cmd.Flags())

	parent.AddCommand(cmd)
}
