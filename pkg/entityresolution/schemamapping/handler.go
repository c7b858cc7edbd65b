// Package schemamapping implements the AWS::EntityResolution::SchemaMapping handlers.
//
// A schema mapping referenced by a workflow cannot be changed. Update still reconciles its
// tags, skips the definition change and reports the skip in the event message.
package schemamapping

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/entityresolution"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/entityresolution/common"
)

const AlreadyExistsMessage = "SchemaMapping already exists"

type API interface {
	common.TaggingAPI
	CreateSchemaMapping(ctx context.Context, params *entityresolution.CreateSchemaMappingInput, optFns ...func(*entityresolution.Options)) (*entityresolution.CreateSchemaMappingOutput, error)
	GetSchemaMapping(ctx context.Context, params *entityresolution.GetSchemaMappingInput, optFns ...func(*entityresolution.Options)) (*entityresolution.GetSchemaMappingOutput, error)
	UpdateSchemaMapping(ctx context.Context, params *entityresolution.UpdateSchemaMappingInput, optFns ...func(*entityresolution.Options)) (*entityresolution.UpdateSchemaMappingOutput, error)
	DeleteSchemaMapping(ctx context.Context, params *entityresolution.DeleteSchemaMappingInput, optFns ...func(*entityresolution.Options)) (*entityresolution.DeleteSchemaMappingOutput, error)
	ListSchemaMappings(ctx context.Context, params *entityresolution.ListSchemaMappingsInput, optFns ...func(*entityresolution.Options)) (*entityresolution.ListSchemaMappingsOutput, error)
	ListTagsForResource(ctx context.Context, params *entityresolution.ListTagsForResourceInput, optFns ...func(*entityresolution.Options)) (*entityresolution.ListTagsForResourceOutput, error)
}

var _ API = (*entityresolution.Client)(nil)

type Handler struct {
	client API
	logger *slog.Logger
}

var _ cfn.Handler[ResourceModel] = (*Handler)(nil)

func NewHandler(client API, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		client: client,
		logger: logger.With("type", TypeName),
	}
}

func schemaArn(req *cfn.Request[ResourceModel]) string {
	return common.ResourceArn(req.AwsPartition, req.Region, req.AwsAccountID, common.SchemaMappingResource, req.Desired().SchemaName)
}
