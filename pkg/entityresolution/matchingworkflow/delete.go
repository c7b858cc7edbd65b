package matchingworkflow

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/entityresolution/common"
)

// Delete fails with NotFound when the workflow is already gone, so a second delete of the
// same workflow is reported rather than silently accepted.
func (h *Handler) Delete(ctx context.Context, req *cfn.Request[ResourceModel]) (*cfn.ProgressEvent[ResourceModel], error) {
	name := aws.String(req.Desired().WorkflowName)

	if _, err := h.client.GetMatchingWorkflow(ctx, &entityresolution.GetMatchingWorkflowInput{WorkflowName: name}); err != nil {
		return nil, common.MapError(err)
	}

	if _, err := h.client.DeleteMatchingWorkflow(ctx, &entityresolution.DeleteMatchingWorkflowInput{WorkflowName: name}); err != nil {
		return nil, common.MapError(err)
	}
	h.logger.Info("Deleted matching workflow", "workflowName", aws.ToString(name))

	return cfn.Success[ResourceModel](nil), nil
}
