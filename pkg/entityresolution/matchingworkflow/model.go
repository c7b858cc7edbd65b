package matchingworkflow

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/entityresolution/types"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/entityresolution/common"
)

// TypeName is the CloudFormation resource type handled by this package.
const TypeName = "AWS::EntityResolution::MatchingWorkflow"

// ResourceModel is the CloudFormation shape of a matching workflow.
type ResourceModel struct {
	WorkflowName         string                `json:"WorkflowName,omitempty"`
	Description          *string               `json:"Description,omitempty"`
	InputSourceConfig    []InputSource         `json:"InputSourceConfig,omitempty"`
	OutputSourceConfig   []OutputSource        `json:"OutputSourceConfig,omitempty"`
	ResolutionTechniques *ResolutionTechniques `json:"ResolutionTechniques,omitempty"`
	RoleArn              *string               `json:"RoleArn,omitempty"`
	Tags                 []common.Tag          `json:"Tags,omitempty"`
	WorkflowArn          *string               `json:"WorkflowArn,omitempty"`
	CreatedAt            *string               `json:"CreatedAt,omitempty"`
	UpdatedAt            *string               `json:"UpdatedAt,omitempty"`
}

type InputSource struct {
	InputSourceARN     *string `json:"InputSourceARN,omitempty"`
	SchemaArn          *string `json:"SchemaArn,omitempty"`
	ApplyNormalization *bool   `json:"ApplyNormalization,omitempty"`
}

type OutputSource struct {
	OutputS3Path       *string           `json:"OutputS3Path,omitempty"`
	Output             []OutputAttribute `json:"Output,omitempty"`
	KMSArn             *string           `json:"KMSArn,omitempty"`
	ApplyNormalization *bool             `json:"ApplyNormalization,omitempty"`
}

type OutputAttribute struct {
	Name   *string `json:"Name,omitempty"`
	Hashed *bool   `json:"Hashed,omitempty"`
}

// ResolutionTechniques holds exactly one Technique. On the wire it is the
// ResolutionType discriminator plus the payload that type takes.
type ResolutionTechniques struct {
	Technique Technique
}

// Technique is one of RuleMatching, MLMatching or ProviderMatching.
type Technique interface {
	ResolutionType() types.ResolutionType
	isTechnique()
}

type Rule struct {
	RuleName     *string  `json:"RuleName,omitempty"`
	MatchingKeys []string `json:"MatchingKeys"`
}

// RuleMatching applies rules in order. The order of a rule's matching keys is significant.
type RuleMatching struct {
	AttributeMatchingModel string `json:"AttributeMatchingModel,omitempty"`
	Rules                  []Rule `json:"Rules"`
}

type MLMatching struct{}

type ProviderMatching struct {
	common.ProviderProperties
}

func (RuleMatching) ResolutionType() types.ResolutionType {
	return types.ResolutionTypeRuleMatching
}

func (MLMatching) ResolutionType() types.ResolutionType {
	return types.ResolutionTypeMlMatching
}

func (ProviderMatching) ResolutionType() types.ResolutionType {
	return types.ResolutionTypeProvider
}

func (RuleMatching) isTechnique()     {}
func (MLMatching) isTechnique()       {}
func (ProviderMatching) isTechnique() {}

type resolutionTechniquesJSON struct {
	ResolutionType      types.ResolutionType       `json:"ResolutionType"`
	RuleBasedProperties *RuleMatching              `json:"RuleBasedProperties,omitempty"`
	ProviderProperties  *common.ProviderProperties `json:"ProviderProperties,omitempty"`
}

func (r ResolutionTechniques) MarshalJSON() ([]byte, error) {
	if r.Technique == nil {
		return []byte("null"), nil
	}

	wire := resolutionTechniquesJSON{ResolutionType: r.Technique.ResolutionType()}
	switch t := r.Technique.(type) {
	case RuleMatching:
		wire.RuleBasedProperties = &t
	case ProviderMatching:
		wire.ProviderProperties = &t.ProviderProperties
	}
	return json.Marshal(wire)
}

func (r *ResolutionTechniques) UnmarshalJSON(b []byte) error {
	var wire resolutionTechniquesJSON
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	switch wire.ResolutionType {
	case types.ResolutionTypeRuleMatching:
		if wire.ProviderProperties != nil {
			return fmt.Errorf("ResolutionType %s does not take ProviderProperties", wire.ResolutionType)
		}
		if wire.RuleBasedProperties == nil {
			return fmt.Errorf("ResolutionType %s requires RuleBasedProperties", wire.ResolutionType)
		}
		r.Technique = *wire.RuleBasedProperties
	case types.ResolutionTypeMlMatching:
		if wire.RuleBasedProperties != nil || wire.ProviderProperties != nil {
			return fmt.Errorf("ResolutionType %s takes no properties", wire.ResolutionType)
		}
		r.Technique = MLMatching{}
	case types.ResolutionTypeProvider:
		if wire.RuleBasedProperties != nil {
			return fmt.Errorf("ResolutionType %s does not take RuleBasedProperties", wire.ResolutionType)
		}
		if wire.ProviderProperties == nil {
			return fmt.Errorf("ResolutionType %s requires ProviderProperties", wire.ResolutionType)
		}
		r.Technique = ProviderMatching{ProviderProperties: *wire.ProviderProperties}
	default:
		return fmt.Errorf("unknown ResolutionType %q", wire.ResolutionType)
	}
	return nil
}

// ResourceDefinedTags returns the tags declared on the model as a map.
func ResourceDefinedTags(model *ResourceModel) map[string]string {
	if model == nil {
		return nil
	}
	return common.TagsSetToMap(model.Tags)
}
