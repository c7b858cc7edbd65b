package schemamapping

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/entityresolution/common"
)

func (h *Handler) Delete(ctx context.Context, req *cfn.Request[ResourceModel]) (*cfn.ProgressEvent[ResourceModel], error) {
	name := aws.String(req.Desired().SchemaName)

	if _, err := h.client.GetSchemaMapping(ctx, &entityresolution.GetSchemaMappingInput{SchemaName: name}); err != nil {
		return nil, common.MapError(err)
	}

	if _, err := h.client.DeleteSchemaMapping(ctx, &entityresolution.DeleteSchemaMappingInput{SchemaName: name}); err != nil {
		return nil, common.MapError(err)
	}
	h.logger.Info("Deleted schema mapping", "schemaName", aws.ToString(name))

	return cfn.Success[ResourceModel](nil), nil
}
