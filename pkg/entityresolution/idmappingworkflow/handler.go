// Package idmappingworkflow implements the AWS::EntityResolution::IdMappingWorkflow handlers.
package idmappingworkflow

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/entityresolution"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/entityresolution/common"
)

const AlreadyExistsMessage = "IdMappingWorkflow already exists"

type API interface {
	common.TaggingAPI
	CreateIdMappingWorkflow(ctx context.Context, params *entityresolution.CreateIdMappingWorkflowInput, optFns ...func(*entityresolution.Options)) (*entityresolution.CreateIdMappingWorkflowOutput, error)
	GetIdMappingWorkflow(ctx context.Context, params *entityresolution.GetIdMappingWorkflowInput, optFns ...func(*entityresolution.Options)) (*entityresolution.GetIdMappingWorkflowOutput, error)
	UpdateIdMappingWorkflow(ctx context.Context, params *entityresolution.UpdateIdMappingWorkflowInput, optFns ...func(*entityresolution.Options)) (*entityresolution.UpdateIdMappingWorkflowOutput, error)
	DeleteIdMappingWorkflow(ctx context.Context, params *entityresolution.DeleteIdMappingWorkflowInput, optFns ...func(*entityresolution.Options)) (*entityresolution.DeleteIdMappingWorkflowOutput, error)
	ListIdMappingWorkflows(ctx context.Context, params *entityresolution.ListIdMappingWorkflowsInput, optFns ...func(*entityresolution.Options)) (*entityresolution.ListIdMappingWorkflowsOutput, error)
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

func workflowArn(req *cfn.Request[ResourceModel]) string {
	return common.ResourceArn(req.AwsPartition, req.Region, req.AwsAccountID, common.IdMappingWorkflowResource, req.Desired().WorkflowName)
}
