package idmappingworkflow

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution/types"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/entityresolution/common"
)

type workflow struct {
	name        *string
	description *string
	inputs      []types.IdMappingWorkflowInputSource
	outputs     []types.IdMappingWorkflowOutputSource
	techniques  *types.IdMappingTechniques
	roleArn     *string
}

func toResourceModel(w workflow, workflowArn string) (*ResourceModel, error) {
	inputs, err := toModelInputSources(w.inputs, workflowArn)
	if err != nil {
		return nil, err
	}
	techniques, err := toModelIdMappingTechniques(w.techniques)
	if err != nil {
		return nil, err
	}

	return &ResourceModel{
		WorkflowName:        aws.ToString(w.name),
		Description:         w.description,
		InputSourceConfig:   inputs,
		OutputSourceConfig:  toModelOutputSources(w.outputs),
		IdMappingTechniques: techniques,
		RoleArn:             w.roleArn,
	}, nil
}

func toBackendInputSources(src []InputSource) ([]types.IdMappingWorkflowInputSource, error) {
	if src == nil {
		return nil, nil
	}

	out := make([]types.IdMappingWorkflowInputSource, 0, len(src))
	for i, s := range src {
		schemaName, err := common.NameFromArn(aws.ToString(s.SchemaArn))
		if err != nil {
			return nil, fmt.Errorf("InputSourceConfig[%d].SchemaArn: %w", i, err)
		}
		out = append(out, types.IdMappingWorkflowInputSource{
			InputSourceARN: s.InputSourceARN,
			SchemaName:     aws.String(schemaName),
		})
	}
	return out, nil
}

func toModelInputSources(src []types.IdMappingWorkflowInputSource, workflowArn string) ([]InputSource, error) {
	if src == nil {
		return nil, nil
	}

	out := make([]InputSource, 0, len(src))
	for _, s := range src {
		schemaArn, err := common.SchemaArnFromWorkflowArn(workflowArn, aws.ToString(s.SchemaName))
		if err != nil {
			return nil, err
		}
		out = append(out, InputSource{
			InputSourceARN: s.InputSourceARN,
			SchemaArn:      aws.String(schemaArn),
		})
	}
	return out, nil
}

func toBackendOutputSources(src []OutputSource) []types.IdMappingWorkflowOutputSource {
	if src == nil {
		return nil
	}

	out := make([]types.IdMappingWorkflowOutputSource, 0, len(src))
	for _, s := range src {
		out = append(out, types.IdMappingWorkflowOutputSource{
			OutputS3Path: s.OutputS3Path,
			KMSArn:       s.KMSArn,
		})
	}
	return out
}

func toModelOutputSources(src []types.IdMappingWorkflowOutputSource) []OutputSource {
	if src == nil {
		return nil
	}

	out := make([]OutputSource, 0, len(src))
	for _, s := range src {
		out = append(out, OutputSource{
			OutputS3Path: s.OutputS3Path,
			KMSArn:       s.KMSArn,
		})
	}
	return out
}

func toBackendIdMappingTechniques(src *IdMappingTechniques) *types.IdMappingTechniques {
	if src == nil || src.Technique == nil {
		return nil
	}

	out := &types.IdMappingTechniques{IdMappingType: src.Technique.IdMappingType()}
	if p, ok := src.Technique.(ProviderIdMapping); ok {
		out.ProviderProperties = common.ToBackendProviderProperties(p.ProviderProperties)
	}
	return out
}

func toModelIdMappingTechniques(src *types.IdMappingTechniques) (*IdMappingTechniques, error) {
	if src == nil {
		return nil, nil
	}
	if src.IdMappingType != types.IdMappingTypeProvider {
		return nil, fmt.Errorf("unknown IdMappingType %q", src.IdMappingType)
	}

	props, err := common.ToModelProviderProperties(src.ProviderProperties)
	if err != nil {
		return nil, err
	}
	return &IdMappingTechniques{Technique: ProviderIdMapping{ProviderProperties: props}}, nil
}
