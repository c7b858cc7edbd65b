package matchingworkflow

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/entityresolution/common"
)

// List returns one page of workflow summaries. The caller owns pagination.
func (h *Handler) List(ctx context.Context, req *cfn.Request[ResourceModel]) (*cfn.ProgressEvent[ResourceModel], error) {
	input := &entityresolution.ListMatchingWorkflowsInput{}
	if req.NextToken != "" {
		input.NextToken = aws.String(req.NextToken)
	}

	out, err := h.client.ListMatchingWorkflows(ctx, input)
	if err != nil {
		return nil, common.MapError(err)
	}

	models := make([]ResourceModel, 0, len(out.WorkflowSummaries))
	for _, summary := range out.WorkflowSummaries {
		models = append(models, ResourceModel{
			WorkflowName: aws.ToString(summary.WorkflowName),
			WorkflowArn:  summary.WorkflowArn,
			CreatedAt:    common.FormatTimestamp(summary.CreatedAt),
			UpdatedAt:    common.FormatTimestamp(summary.UpdatedAt),
		})
	}
	h.logger.Debug("Listed matching workflows", "count", len(models))

	return cfn.ListSuccess(models, aws.ToString(out.NextToken)), nil
}
