package idmappingworkflow

import (
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/entityresolution"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/internal/registry"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
)

func init() {
	registry.Register(TypeName, registry.Metadata{
		Name:        "ID Mapping Workflow",
		Description: "Entity Resolution workflow that maps identifiers across sources through a provider service.",
		Identifier:  "WorkflowName",
		References: []string{
			"https://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/aws-resource-entityresolution-idmappingworkflow.html",
			"https://pkg.go.dev/github.com/aws/aws-sdk-go-v2/service/entityresolution#Client.CreateIdMappingWorkflow",
		},
	}, func(client *entityresolution.Client, logger *slog.Logger) cfn.RawHandler {
		return cfn.NewRawHandler[ResourceModel](NewHandler(client, logger))
	})
}
