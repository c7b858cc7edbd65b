package idmappingworkflow

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/entityresolution/common"
)

func (h *Handler) Update(ctx context.Context, req *cfn.Request[ResourceModel]) (*cfn.ProgressEvent[ResourceModel], error) {
	model := req.Desired()
	arn := workflowArn(req)

	inputs, err := toBackendInputSources(model.InputSourceConfig)
	if err != nil {
		return nil, common.InvalidModel(err)
	}

	if err := common.ReconcileTags(ctx, h.client, h.logger, arn, req.PreviousResourceTags, req.DesiredResourceTags); err != nil {
		return nil, common.MapError(err)
	}

	out, err := h.client.UpdateIdMappingWorkflow(ctx, &entityresolution.UpdateIdMappingWorkflowInput{
		WorkflowName:        aws.String(model.WorkflowName),
		Description:         model.Description,
		InputSourceConfig:   inputs,
		OutputSourceConfig:  toBackendOutputSources(model.OutputSourceConfig),
		IdMappingTechniques: toBackendIdMappingTechniques(model.IdMappingTechniques),
		RoleArn:             model.RoleArn,
	})
	if err != nil {
		return nil, common.MapError(err)
	}
	h.logger.Info("Updated ID mapping workflow", "workflowName", model.WorkflowName)

	tags, err := h.client.ListTagsForResource(ctx, &entityresolution.ListTagsForResourceInput{
		ResourceArn: aws.String(arn),
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
	}, arn)
	if err != nil {
		return nil, common.InvalidResponse(err)
	}
	result.WorkflowArn = aws.String(arn)
	result.Tags = common.TagsMapToSet(tags.Tags)

	return cfn.Success(result), nil
}
