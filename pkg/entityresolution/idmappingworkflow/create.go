package idmappingworkflow

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/entityresolution/common"
)

func (h *Handler) Create(ctx context.Context, req *cfn.Request[ResourceModel]) (*cfn.ProgressEvent[ResourceModel], error) {
	model := req.Desired()

	inputs, err := toBackendInputSources(model.InputSourceConfig)
	if err != nil {
		return nil, common.InvalidModel(err)
	}

	if _, err := h.client.GetIdMappingWorkflow(ctx, &entityresolution.GetIdMappingWorkflowInput{
		WorkflowName: aws.String(model.WorkflowName),
	}); err == nil {
		return nil, cfn.Errorf(types.HandlerErrorCodeAlreadyExists, "%s: %s", AlreadyExistsMessage, model.WorkflowName)
	}

	out, err := h.client.CreateIdMappingWorkflow(ctx, &entityresolution.CreateIdMappingWorkflowInput{
		WorkflowName:        aws.String(model.WorkflowName),
		Description:         model.Description,
		InputSourceConfig:   inputs,
		OutputSourceConfig:  toBackendOutputSources(model.OutputSourceConfig),
		IdMappingTechniques: toBackendIdMappingTechniques(model.IdMappingTechniques),
		RoleArn:             model.RoleArn,
		Tags:                common.DesiredTags(req.DesiredResourceTags),
	})
	if err != nil {
		return nil, common.MapCreateError(err, AlreadyExistsMessage)
	}
	h.logger.Info("Created ID mapping workflow", "workflowName", model.WorkflowName)

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

	return cfn.Success(result), nil
}
