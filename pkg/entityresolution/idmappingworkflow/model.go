package idmappingworkflow

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/entityresolution/types"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/entityresolution/common"
)

const TypeName = "AWS::EntityResolution::IdMappingWorkflow"

// ResourceModel is the CloudFormation shape of an ID mapping workflow.
type ResourceModel struct {
	WorkflowName        string               `json:"WorkflowName,omitempty"`
	Description         *string              `json:"Description,omitempty"`
	InputSourceConfig   []InputSource        `json:"InputSourceConfig,omitempty"`
	OutputSourceConfig  []OutputSource       `json:"OutputSourceConfig,omitempty"`
	IdMappingTechniques *IdMappingTechniques `json:"IdMappingTechniques,omitempty"`
	RoleArn             *string              `json:"RoleArn,omitempty"`
	Tags                []common.Tag         `json:"Tags,omitempty"`
	WorkflowArn         *string              `json:"WorkflowArn,omitempty"`
	CreatedAt           *string              `json:"CreatedAt,omitempty"`
	UpdatedAt           *string              `json:"UpdatedAt,omitempty"`
}

type InputSource struct {
	InputSourceARN *string `json:"InputSourceARN,omitempty"`
	SchemaArn      *string `json:"SchemaArn,omitempty"`
}

type OutputSource struct {
	OutputS3Path *string `json:"OutputS3Path,omitempty"`
	KMSArn       *string `json:"KMSArn,omitempty"`
}

// IdMappingTechniques holds exactly one IdMappingTechnique, keyed on the wire by IdMappingType.
type IdMappingTechniques struct {
	Technique IdMappingTechnique
}

// IdMappingTechnique is sealed. ProviderIdMapping is its only variant.
type IdMappingTechnique interface {
	IdMappingType() types.IdMappingType
	isIdMappingTechnique()
}

// ProviderIdMapping maps IDs through a third-party provider service.
type ProviderIdMapping struct {
	common.ProviderProperties
}

func (ProviderIdMapping) IdMappingType() types.IdMappingType {
	return types.IdMappingTypeProvider
}

func (ProviderIdMapping) isIdMappingTechnique() {}

type idMappingTechniquesJSON struct {
	IdMappingType      types.IdMappingType        `json:"IdMappingType"`
	ProviderProperties *common.ProviderProperties `json:"ProviderProperties,omitempty"`
}

func (t IdMappingTechniques) MarshalJSON() ([]byte, error) {
	if t.Technique == nil {
		return []byte("null"), nil
	}

	wire := idMappingTechniquesJSON{IdMappingType: t.Technique.IdMappingType()}
	if p, ok := t.Technique.(ProviderIdMapping); ok {
		wire.ProviderProperties = &p.ProviderProperties
	}
	return json.Marshal(wire)
}

func (t *IdMappingTechniques) UnmarshalJSON(b []byte) error {
	var wire idMappingTechniquesJSON
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	if wire.IdMappingType != types.IdMappingTypeProvider {
		return fmt.Errorf("unknown IdMappingType %q", wire.IdMappingType)
	}
	if wire.ProviderProperties == nil {
		return fmt.Errorf("IdMappingType %s requires ProviderProperties", wire.IdMappingType)
	}
	t.Technique = ProviderIdMapping{ProviderProperties: *wire.ProviderProperties}
	return nil
}

// ResourceDefinedTags returns the tags declared on the model as a map.
func ResourceDefinedTags(model *ResourceModel) map[string]string {
	if model == nil {
		return nil
	}
	return common.TagsSetToMap(model.Tags)
}
