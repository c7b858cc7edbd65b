package matchingworkflow

import (
	"errors"
	"fmt"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution/types"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/entityresolution/common"
)

// workflow gathers the fields that the create, get and update responses have in common.
type workflow struct {
	name        *string
	description *string
	inputs      []types.InputSource
	outputs     []types.OutputSource
	techniques  *types.ResolutionTechniques
	roleArn     *string
}

// toResourceModel builds a model from a backend response. Schema ARNs are rebuilt under
// workflowArn's partition, region and account.
func toResourceModel(w workflow, workflowArn string) (*ResourceModel, error) {
	inputs, err := toModelInputSources(w.inputs, workflowArn)
	if err != nil {
		return nil, err
	}
	techniques, err := toModelResolutionTechniques(w.techniques)
	if err != nil {
		return nil, err
	}

	return &ResourceModel{
		WorkflowName:         aws.ToString(w.name),
		Description:          w.description,
		InputSourceConfig:    inputs,
		OutputSourceConfig:   toModelOutputSources(w.outputs),
		ResolutionTechniques: techniques,
		RoleArn:              w.roleArn,
	}, nil
}

func toBackendInputSources(src []InputSource) ([]types.InputSource, error) {
	if src == nil {
		return nil, nil
	}

	out := make([]types.InputSource, 0, len(src))
	for i, s := range src {
		schemaName, err := common.NameFromArn(aws.ToString(s.SchemaArn))
		if err != nil {
			return nil, fmt.Errorf("InputSourceConfig[%d].SchemaArn: %w", i, err)
		}
		out = append(out, types.InputSource{
			InputSourceARN:     s.InputSourceARN,
			SchemaName:         aws.String(schemaName),
			ApplyNormalization: s.ApplyNormalization,
		})
	}
	return out, nil
}

func toModelInputSources(src []types.InputSource, workflowArn string) ([]InputSource, error) {
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
			InputSourceARN:     s.InputSourceARN,
			SchemaArn:          aws.String(schemaArn),
			ApplyNormalization: s.ApplyNormalization,
		})
	}
	return out, nil
}

func toBackendOutputSources(src []OutputSource) []types.OutputSource {
	if src == nil {
		return nil
	}

	out := make([]types.OutputSource, 0, len(src))
	for _, s := range src {
		var attrs []types.OutputAttribute
		if s.Output != nil {
			attrs = make([]types.OutputAttribute, 0, len(s.Output))
			for _, a := range s.Output {
				attrs = append(attrs, types.OutputAttribute{Name: a.Name, Hashed: a.Hashed})
			}
		}
		out = append(out, types.OutputSource{
			OutputS3Path:       s.OutputS3Path,
			Output:             attrs,
			KMSArn:             s.KMSArn,
			ApplyNormalization: s.ApplyNormalization,
		})
	}
	return out
}

func toModelOutputSources(src []types.OutputSource) []OutputSource {
	if src == nil {
		return nil
	}

	out := make([]OutputSource, 0, len(src))
	for _, s := range src {
		var attrs []OutputAttribute
		if s.Output != nil {
			attrs = make([]OutputAttribute, 0, len(s.Output))
			for _, a := range s.Output {
				attrs = append(attrs, OutputAttribute{Name: a.Name, Hashed: a.Hashed})
			}
		}
		out = append(out, OutputSource{
			OutputS3Path:       s.OutputS3Path,
			Output:             attrs,
			KMSArn:             s.KMSArn,
			ApplyNormalization: s.ApplyNormalization,
		})
	}
	return out
}

func toBackendResolutionTechniques(src *ResolutionTechniques) *types.ResolutionTechniques {
	if src == nil || src.Technique == nil {
		return nil
	}

	out := &types.ResolutionTechniques{ResolutionType: src.Technique.ResolutionType()}
	switch t := src.Technique.(type) {
	case RuleMatching:
		rules := make([]types.Rule, 0, len(t.Rules))
		for _, r := range t.Rules {
			rules = append(rules, types.Rule{
				RuleName:     r.RuleName,
				MatchingKeys: slices.Clone(r.MatchingKeys),
			})
		}
		out.RuleBasedProperties = &types.RuleBasedProperties{
			AttributeMatchingModel: types.AttributeMatchingModel(t.AttributeMatchingModel),
			Rules:                  rules,
		}
	case ProviderMatching:
		out.ProviderProperties = common.ToBackendProviderProperties(t.ProviderProperties)
	}
	return out
}

var errMissingRuleBasedProperties = errors.New("RULE_MATCHING technique without RuleBasedProperties")

func toModelResolutionTechniques(src *types.ResolutionTechniques) (*ResolutionTechniques, error) {
	if src == nil {
		return nil, nil
	}

	switch src.ResolutionType {
	case types.ResolutionTypeRuleMatching:
		if src.RuleBasedProperties == nil {
			return nil, errMissingRuleBasedProperties
		}
		rules := make([]Rule, 0, len(src.RuleBasedProperties.Rules))
		for _, r := range src.RuleBasedProperties.Rules {
			rules = append(rules, Rule{
				RuleName:     r.RuleName,
				MatchingKeys: slices.Clone(r.MatchingKeys),
			})
		}
		return &ResolutionTechniques{Technique: RuleMatching{
			AttributeMatchingModel: string(src.RuleBasedProperties.AttributeMatchingModel),
			Rules:                  rules,
		}}, nil
	case types.ResolutionTypeMlMatching:
		return &ResolutionTechniques{Technique: MLMatching{}}, nil
	case types.ResolutionTypeProvider:
		props, err := common.ToModelProviderProperties(src.ProviderProperties)
		if err != nil {
			return nil, err
		}
		return &ResolutionTechniques{Technique: ProviderMatching{ProviderProperties: props}}, nil
	default:
		return nil, fmt.Errorf("unknown ResolutionType %q", src.ResolutionType)
	}
}
