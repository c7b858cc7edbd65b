package schemamapping

import (
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/entityresolution"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/internal/registry"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
)

func init() {
	registry.Register(TypeName, registry.Metadata{
		Name:        "Schema Mapping",
		Description: "Entity Resolution schema mapping describing the columns of an input table.",
		Identifier:  "SchemaName",
		References: []string{
			"https://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/aws-resource-entityresolution-schemamapping.html",
			"https://pkg.go.dev/github.com/aws/aws-sdk-go-v2/service/entityresolution#Client.CreateSchemaMapping",
		},
	}, func(client *entityresolution.Client, logger *slog.Logger) cfn.RawHandler {
		return cfn.NewRawHandler[ResourceModel](NewHandler(client, logger))
	})
}
