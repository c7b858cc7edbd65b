package schemamapping

import (
	"github.com/aws/aws-sdk-go-v2/service/entityresolution/types"
)

func toBackendFields(src []SchemaInputAttribute) []types.SchemaInputAttribute {
	if src == nil {
		return nil
	}

	out := make([]types.SchemaInputAttribute, 0, len(src))
	for _, f := range src {
		out = append(out, types.SchemaInputAttribute{
			FieldName: f.FieldName,
			Type:      types.SchemaAttributeType(f.Type),
			SubType:   f.SubType,
			GroupName: f.GroupName,
			MatchKey:  f.MatchKey,
		})
	}
	return out
}

func toModelFields(src []types.SchemaInputAttribute) []SchemaInputAttribute {
	if src == nil {
		return nil
	}

	out := make([]SchemaInputAttribute, 0, len(src))
	for _, f := range src {
		out = append(out, SchemaInputAttribute{
			FieldName: f.FieldName,
			Type:      string(f.Type),
			SubType:   f.SubType,
			GroupName: f.GroupName,
			MatchKey:  f.MatchKey,
		})
	}
	return out
}
