package idmappingworkflow

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/entityresolution/common"
)

func (h *Handler) Read(ctx context.Context, req *cfn.Request[ResourceModel]) (*cfn.ProgressEvent[ResourceModel], error) {
	model := req.Desired()

	out, err := h.client.GetIdMappingWorkflow(ctx, &entityresolution.GetIdMappingWorkflowInput{
		WorkflowName: aws.String(model.WorkflowName),
	})
	if err != nil {
		return nil, common.MapError(err)
	}
	h.logger.Debug("Retrieved ID mapping workflow", "workflowName", model.WorkflowName)

	tags, err := h.client.ListTagsForResource(ctx, &entityresolution.ListTagsForResourceInput{
		ResourceArn: aws.String(workflowArn(req)),
	})
	if err != nil {
		return nil, common.MapError(err)
	}

	result, err := toResourceModel(workflow{
		name:        out.WorkflowName,
		description: out.Description,
		inputs:      out.InputSourceConfig,
		outputs:     out.OutputSourceConfig,
		techniques:  out.IdMappingTechniques,
		roleArn:     out.RoleArn,
	}, aws.ToString(out.WorkflowArn))
	if err != nil {
		return nil, common.InvalidResponse(err)
	}
	result.WorkflowArn = out.WorkflowArn
	result.CreatedAt = common.FormatTimestamp(out.CreatedAt)
	result.UpdatedAt = common.FormatTimestamp(out.UpdatedAt)
	result.Tags = common.TagsMapToSet(tags.Tags)

	return cfn.Success(result), nil
}
