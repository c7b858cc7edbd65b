// Package matchingworkflow implements the AWS::EntityResolution::MatchingWorkflow handlers.
package matchingworkflow

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/entityresolution"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/entityresolution/common"
)

// AlreadyExistsMessage is what the backend puts in a conflict caused by a duplicate name.
const AlreadyExistsMessage = "MatchingWorkflow already exists"

// API is the subset of the Entity Resolution client the handlers call.
type API interface {
	common.TaggingAPI
	CreateMatchingWorkflow(ctx context.Context, params *entityresolution.CreateMatchingWorkflowInput, optFns ...func(*entityresolution.Options)) (*entityresolution.CreateMatchingWorkflowOutput, error)
	GetMatchingWorkflow(ctx context.Context, params *entityresolution.GetMatchingWorkflowInput, optFns ...func(*entityresolution.Options)) (*entityresolution.GetMatchingWorkflowOutput, error)
	UpdateMatchingWorkflow(ctx context.Context, params *entityresolution.UpdateMatchingWorkflowInput, optFns ...func(*entityresolution.Options)) (*entityresolution.UpdateMatchingWorkflowOutput, error)
	DeleteMatchingWorkflow(ctx context.Context, params *entityresolution.DeleteMatchingWorkflowInput, optFns ...func(*entityresolution.Options)) (*entityresolution.DeleteMatchingWorkflowOutput, error)
	ListMatchingWorkflows(ctx context.Context, params *entityresolution.ListMatchingWorkflowsInput, optFns ...func(*entityresolution.Options)) (*entityresolution.ListMatchingWorkflowsOutput, error)
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
	return common.ResourceArn(req.AwsPartition, req.Region, req.AwsAccountID, common.MatchingWorkflowResource, req.Desired().WorkflowName)
}
