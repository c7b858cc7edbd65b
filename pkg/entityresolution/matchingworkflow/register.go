package matchingworkflow

import (
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/entityresolution"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/internal/registry"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
)

func init() {
	registry.Register(TypeName, registry.Metadata{
		Name:        "Matching Workflow",
		Description: "Entity Resolution workflow that matches records by rules, machine learning or a provider service.",
		Identifier:  "WorkflowName",
		References: []string{
			"https://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/aws-resource-entityresolution-matchingworkflow.html",
			"https://pkg.go.dev/github.com/aws/aws-sdk-go-v2/service/entityresolution#Client.CreateMatchingWorkflow",
		},
	}, func(client *entityresolution.Client, logger *slog.Logger) cfn.RawHandler {
		return cfn.NewRawHandler[ResourceModel](NewHandler(client, logger))
	})
}
