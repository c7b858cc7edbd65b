package schemamapping

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/entityresolution/common"
)

func (h *Handler) Read(ctx context.Context, req *cfn.Request[ResourceModel]) (*cfn.ProgressEvent[ResourceModel], error) {
	model, err := h.read(ctx, req)
	if err != nil {
		return nil, err
	}
	return cfn.Success(model), nil
}

func (h *Handler) read(ctx context.Context, req *cfn.Request[ResourceModel]) (*ResourceModel, error) {
	name := req.Desired().SchemaName

	out, err := h.client.GetSchemaMapping(ctx, &entityresolution.GetSchemaMappingInput{
		SchemaName: aws.String(name),
	})
	if err != nil {
		return nil, common.MapError(err)
	}
	h.logger.Debug("Retrieved schema mapping", "schemaName", name)

	tags, err := h.client.ListTagsForResource(ctx, &entityresolution.ListTagsForResourceInput{
		ResourceArn: aws.String(schemaArn(req)),
	})
	if err != nil {
		return nil, common.MapError(err)
	}

	return &ResourceModel{
		SchemaName:        aws.ToString(out.SchemaName),
		SchemaArn:         out.SchemaArn,
		Description:       out.Description,
		MappedInputFields: toModelFields(out.MappedInputFields),
		Tags:              common.TagsMapToSet(tags.Tags),
		CreatedAt:         common.FormatTimestamp(out.CreatedAt),
		UpdatedAt:         common.FormatTimestamp(out.UpdatedAt),
		HasWorkflows:      out.HasWorkflows,
	}, nil
}
