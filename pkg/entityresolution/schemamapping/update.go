package schemamapping

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	cfntypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution/types"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/entityresolution/common"
)

// InUseMessage is the event message of an update that left an in-use mapping unchanged.
const InUseMessage = "schema mapping is used by at least one workflow; only tags were updated"

func (h *Handler) Update(ctx context.Context, req *cfn.Request[ResourceModel]) (*cfn.ProgressEvent[ResourceModel], error) {
	model := req.Desired()
	arn := schemaArn(req)

	current, err := h.client.GetSchemaMapping(ctx, &entityresolution.GetSchemaMappingInput{
		SchemaName: aws.String(model.SchemaName),
	})
	if err != nil {
		return nil, common.MapError(err)
	}

	if err := common.ReconcileTags(ctx, h.client, h.logger, arn, req.PreviousResourceTags, req.DesiredResourceTags); err != nil {
		return nil, common.MapError(err)
	}

	inUse := aws.ToBool(current.HasWorkflows)
	if inUse {
		h.logger.Warn("Schema mapping is in use, skipping update", "schemaName", model.SchemaName)
	} else {
		_, err := h.client.UpdateSchemaMapping(ctx, &entityresolution.UpdateSchemaMappingInput{
			SchemaName:        aws.String(model.SchemaName),
			Description:       model.Description,
			MappedInputFields: toBackendFields(model.MappedInputFields),
		})
		var conflict *types.ConflictException
		switch {
		case errors.As(err, &conflict):
			return nil, cfn.NewError(cfntypes.HandlerErrorCodeInternalFailure, err)
		case err != nil:
			return nil, common.MapError(err)
		}
		h.logger.Info("Updated schema mapping", "schemaName", model.SchemaName)
	}

	result, err := h.read(ctx, req)
	if err != nil {
		return nil, err
	}

	event := cfn.Success(result)
	if inUse {
		event.Message = InUseMessage
	}
	return event, nil
}
