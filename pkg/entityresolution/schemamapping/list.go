package schemamapping

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/entityresolution/common"
)

func (h *Handler) List(ctx context.Context, req *cfn.Request[ResourceModel]) (*cfn.ProgressEvent[ResourceModel], error) {
	input := &entityresolution.ListSchemaMappingsInput{}
	if req.NextToken != "" {
		input.NextToken = aws.String(req.NextToken)
	}

	out, err := h.client.ListSchemaMappings(ctx, input)
	if err != nil {
		return nil, common.MapError(err)
	}

	models := make([]ResourceModel, 0, len(out.SchemaList))
	for _, summary := range out.SchemaList {
		models = append(models, ResourceModel{
			SchemaName:   aws.ToString(summary.SchemaName),
			SchemaArn:    summary.SchemaArn,
			CreatedAt:    common.FormatTimestamp(summary.CreatedAt),
			UpdatedAt:    common.FormatTimestamp(summary.UpdatedAt),
			HasWorkflows: summary.HasWorkflows,
		})
	}

	return cfn.ListSuccess(models, aws.ToString(out.NextToken)), nil
}
