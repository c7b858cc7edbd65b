package schemamapping

import (
	"context"
	"maps"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution/types"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/entityresolution/common"
)

var testTime = time.Date(2023, 11, 20, 16, 45, 0, 0, time.UTC)

func testArn(name string) string {
	return common.ResourceArn("aws", "us-west-2", "111122223333", common.SchemaMappingResource, name)
}

func newRequest(model *ResourceModel) *cfn.Request[ResourceModel] {
	return &cfn.Request[ResourceModel]{
		DesiredResourceState: model,
		AwsAccountID:         "111122223333",
		AwsPartition:         "aws",
		Region:               "us-west-2",
	}
}

type storedSchema struct {
	input        *entityresolution.CreateSchemaMappingInput
	hasWorkflows bool
}

type fakeAPI struct {
	calls     []string
	schemas   map[string]*storedSchema
	tags      map[string]map[string]string
	errs      map[string]error
	listInput *entityresolution.ListSchemaMappingsInput
	updates   []*entityresolution.UpdateSchemaMappingInput
	untagged  [][]string
	tagged    []map[string]string
}

var _ API = (*fakeAPI)(nil)

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		schemas: map[string]*storedSchema{},
		tags:    map[string]map[string]string{},
		errs:    map[string]error{},
	}
}

func (f *fakeAPI) record(op string) error {
	f.calls = append(f.calls, op)
	return f.errs[op]
}

func (f *fakeAPI) CreateSchemaMapping(_ context.Context, in *entityresolution.CreateSchemaMappingInput, _ ...func(*entityresolution.Options)) (*entityresolution.CreateSchemaMappingOutput, error) {
	if err := f.record("CreateSchemaMapping"); err != nil {
		return nil, err
	}
	name := aws.ToString(in.SchemaName)
	f.schemas[name] = &storedSchema{input: in}
	if in.Tags != nil {
		f.tags[testArn(name)] = maps.Clone(in.Tags)
	}
	return &entityresolution.CreateSchemaMappingOutput{
		SchemaName:        in.SchemaName,
		SchemaArn:         aws.String(testArn(name)),
		Description:       in.Description,
		MappedInputFields: in.MappedInputFields,
	}, nil
}

func (f *fakeAPI) GetSchemaMapping(_ context.Context, in *entityresolution.GetSchemaMappingInput, _ ...func(*entityresolution.Options)) (*entityresolution.GetSchemaMappingOutput, error) {
	if err := f.record("GetSchemaMapping"); err != nil {
		return nil, err
	}
	name := aws.ToString(in.SchemaName)
	s, ok := f.schemas[name]
	if !ok {
		return nil, &types.ResourceNotFoundException{Message: aws.String("schema " + name + " not found")}
	}
	return &entityresolution.GetSchemaMappingOutput{
		SchemaName:        s.input.SchemaName,
		SchemaArn:         aws.String(testArn(name)),
		Description:       s.input.Description,
		MappedInputFields: s.input.MappedInputFields,
		HasWorkflows:      aws.Bool(s.hasWorkflows),
		CreatedAt:         aws.Time(testTime),
		UpdatedAt:         aws.Time(testTime),
	}, nil
}

func (f *fakeAPI) UpdateSchemaMapping(_ context.Context, in *entityresolution.UpdateSchemaMappingInput, _ ...func(*entityresolution.Options)) (*entityresolution.UpdateSchemaMappingOutput, error) {
	if err := f.record("UpdateSchemaMapping"); err != nil {
		return nil, err
	}
	f.updates = append(f.updates, in)
	s := f.schemas[aws.ToString(in.SchemaName)]
	s.input = &entityresolution.CreateSchemaMappingInput{
		SchemaName:        in.SchemaName,
		Description:       in.Description,
		MappedInputFields: in.MappedInputFields,
	}
	return &entityresolution.UpdateSchemaMappingOutput{
		SchemaName:        in.SchemaName,
		SchemaArn:         aws.String(testArn(aws.ToString(in.SchemaName))),
		Description:       in.Description,
		MappedInputFields: in.MappedInputFields,
	}, nil
}

func (f *fakeAPI) DeleteSchemaMapping(_ context.Context, in *entityresolution.DeleteSchemaMappingInput, _ ...func(*entityresolution.Options)) (*entityresolution.DeleteSchemaMappingOutput, error) {
	if err := f.record("DeleteSchemaMapping"); err != nil {
		return nil, err
	}
	delete(f.schemas, aws.ToString(in.SchemaName))
	return &entityresolution.DeleteSchemaMappingOutput{Message: aws.String("deleted")}, nil
}

func (f *fakeAPI) ListSchemaMappings(_ context.Context, in *entityresolution.ListSchemaMappingsInput, _ ...func(*entityresolution.Options)) (*entityresolution.ListSchemaMappingsOutput, error) {
	if err := f.record("ListSchemaMappings"); err != nil {
		return nil, err
	}
	f.listInput = in
	out := &entityresolution.ListSchemaMappingsOutput{NextToken: aws.String("next")}
	for name, s := range f.schemas {
		out.SchemaList = append(out.SchemaList, types.SchemaMappingSummary{
			SchemaName:   aws.String(name),
			SchemaArn:    aws.String(testArn(name)),
			CreatedAt:    aws.Time(testTime),
			UpdatedAt:    aws.Time(testTime),
			HasWorkflows: aws.Bool(s.hasWorkflows),
		})
	}
	return out, nil
}

func (f *fakeAPI) ListTagsForResource(_ context.Context, in *entityresolution.ListTagsForResourceInput, _ ...func(*entityresolution.Options)) (*entityresolution.ListTagsForResourceOutput, error) {
	if err := f.record("ListTagsForResource"); err != nil {
		return nil, err
	}
	return &entityresolution.ListTagsForResourceOutput{Tags: maps.Clone(f.tags[aws.ToString(in.ResourceArn)])}, nil
}

func (f *fakeAPI) TagResource(_ context.Context, in *entityresolution.TagResourceInput, _ ...func(*entityresolution.Options)) (*entityresolution.TagResourceOutput, error) {
	if err := f.record("TagResource"); err != nil {
		return nil, err
	}
	f.tagged = append(f.tagged, maps.Clone(in.Tags))
	arn := aws.ToString(in.ResourceArn)
	if f.tags[arn] == nil {
		f.tags[arn] = map[string]string{}
	}
	maps.Copy(f.tags[arn], in.Tags)
	return &entityresolution.TagResourceOutput{}, nil
}

func (f *fakeAPI) UntagResource(_ context.Context, in *entityresolution.UntagResourceInput, _ ...func(*entityresolution.Options)) (*entityresolution.UntagResourceOutput, error) {
	if err := f.record("UntagResource"); err != nil {
		return nil, err
	}
	f.untagged = append(f.untagged, in.TagKeys)
	arn := aws.ToString(in.ResourceArn)
	for _, key := range in.TagKeys {
		delete(f.tags[arn], key)
	}
	return &entityresolution.UntagResourceOutput{}, nil
}
