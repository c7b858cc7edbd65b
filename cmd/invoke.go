package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	o "github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/internal/options"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/internal/registry"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
)

var invokeOptions = []*o.Option{&o.TypeOpt, &o.ActionOpt, &o.RequestOpt, &o.QueryOpt, &o.OutputOpt, &o.FileNameOpt}

var invokeCmd = &cobra.Command{
	Use:   "invoke",
	Short: "Run one handler action of a resource type",
	Long: `Run one handler action of a resource type against a handler request document.

The request is the JSON (or YAML) body CloudFormation sends a resource handler.
awsAccountId, awsPartition, region and clientRequestToken are filled in from the
caller's credentials when the request leaves them out.`,
	Example: `  entityresolution-cfn invoke -t AWS::EntityResolution::SchemaMapping -a READ -r request.json
  entityresolution-cfn invoke -t matchingworkflow -a LIST -r - --query '.resourceModels[].WorkflowName'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := getOptsFromFlags(cmd.Flags(), invokeOptions)
		if err := o.ValidateOptions(opts); err != nil {
			return err
		}

		typeName := o.GetOptionByName(o.TypeOpt.Name, opts).Value
		entry, ok := registry.GetRegistryEntry(typeName)
		if !ok {
			return fmt.Errorf("unknown resource type %q", typeName)
		}

		action, err := cfn.ParseAction(o.GetOptionByName(o.ActionOpt.Name, opts).Value)
		if err != nil {
			return err
		}

		return runHandler(cmd.Context(), newRunRequest(entry, action, opts), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	options2Flag(invokeOptions, invokeCmd.Flags())
	rootCmd.AddCommand(invokeCmd)
}
