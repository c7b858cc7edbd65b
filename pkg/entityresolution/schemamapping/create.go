package schemamapping

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

	if _, err := h.client.GetSchemaMapping(ctx, &entityresolution.GetSchemaMappingInput{
		SchemaName: aws.String(model.SchemaName),
	}); err == nil {
		return nil, cfn.Errorf(types.HandlerErrorCodeAlreadyExists, "%s: %s", AlreadyExistsMessage, model.SchemaName)
	}

	out, err := h.client.CreateSchemaMapping(ctx, &entityresolution.CreateSchemaMappingInput{
		SchemaName:        aws.String(model.SchemaName),
		Description:       model.Description,
		MappedInputFields: toBackendFields(model.MappedInputFields),
		Tags:              common.DesiredTags(req.DesiredResourceTags),
	})
	if err != nil {
		return nil, common.MapCreateError(err, AlreadyExistsMessage)
	}
	h.logger.Info("Created schema mapping", "schemaName", model.SchemaName)

	return cfn.Success(&ResourceModel{
		SchemaName:        aws.ToString(out.SchemaName),
		SchemaArn:         out.SchemaArn,
		Description:       out.Description,
		MappedInputFields: toModelFields(out.MappedInputFields),
	}), nil
}
