package schemamapping

import (
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/entityresolution/common"
)

const TypeName = "AWS::EntityResolution::SchemaMapping"

// ResourceModel is the CloudFormation shape of a schema mapping.
type ResourceModel struct {
	SchemaName        string                 `json:"SchemaName,omitempty"`
	Description       *string                `json:"Description,omitempty"`
	MappedInputFields []SchemaInputAttribute `json:"MappedInputFields,omitempty"`
	Tags              []common.Tag           `json:"Tags,omitempty"`
	SchemaArn         *string                `json:"SchemaArn,omitempty"`
	CreatedAt         *string                `json:"CreatedAt,omitempty"`
	UpdatedAt         *string                `json:"UpdatedAt,omitempty"`
	HasWorkflows      *bool                  `json:"HasWorkflows,omitempty"`
}

// SchemaInputAttribute describes one column of an input table. Type is an Entity Resolution
// attribute type such as NAME, EMAIL_ADDRESS or UNIQUE_ID.
type SchemaInputAttribute struct {
	FieldName *string `json:"FieldName,omitempty"`
	Type      string  `json:"Type,omitempty"`
	SubType   *string `json:"SubType,omitempty"`
	GroupName *string `json:"GroupName,omitempty"`
	MatchKey  *string `json:"MatchKey,omitempty"`
}

// ResourceDefinedTags returns the tags declared on the model as a map.
func ResourceDefinedTags(model *ResourceModel) map[string]string {
	if model == nil {
		return nil
	}
	return common.TagsSetToMap(model.Tags)
}
