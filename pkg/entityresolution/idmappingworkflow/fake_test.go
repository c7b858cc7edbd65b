package idmappingworkflow

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

var testTime = time.Date(2024, 5, 10, 8, 30, 0, 0, time.UTC)

func testArn(resourceType, name string) string {
	return common.ResourceArn("aws", "eu-west-1", "210987654321", resourceType, name)
}

func newRequest(model *ResourceModel) *cfn.Request[ResourceModel] {
	return &cfn.Request[ResourceModel]{
		DesiredResourceState: model,
		AwsAccountID:         "210987654321",
		AwsPartition:         "aws",
		Region:               "eu-west-1",
	}
}

type fakeAPI struct {
	calls     []string
	workflows map[string]*entityresolution.CreateIdMappingWorkflowInput
	tags      map[string]map[string]string
	errs      map[string]error
	listInput *entityresolution.ListIdMappingWorkflowsInput
	untagged  [][]string
	tagged    []map[string]string
}

var _ API = (*fakeAPI)(nil)

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		workflows: map[string]*entityresolution.CreateIdMappingWorkflowInput{},
		tags:      map[string]map[string]string{},
		errs:      map[string]error{},
	}
}

func (f *fakeAPI) record(op string) error {
	f.calls = append(f.calls, op)
	return f.errs[op]
}

func (f *fakeAPI) CreateIdMappingWorkflow(_ context.Context, in *entityresolution.CreateIdMappingWorkflowInput, _ ...func(*entityresolution.Options)) (*entityresolution.CreateIdMappingWorkflowOutput, error) {
	if err := f.record("CreateIdMappingWorkflow"); err != nil {
		return nil, err
	}
	name := aws.ToString(in.WorkflowName)
	f.workflows[name] = in
	arn := testArn(common.IdMappingWorkflowResource, name)
	if in.Tags != nil {
		f.tags[arn] = maps.Clone(in.Tags)
	}
	return &entityresolution.CreateIdMappingWorkflowOutput{
		WorkflowName:        in.WorkflowName,
		WorkflowArn:         aws.String(arn),
		Description:         in.Description,
		InputSourceConfig:   in.InputSourceConfig,
		OutputSourceConfig:  in.OutputSourceConfig,
		IdMappingTechniques: in.IdMappingTechniques,
		RoleArn:             in.RoleArn,
	}, nil
}

func (f *fakeAPI) GetIdMappingWorkflow(_ context.Context, in *entityresolution.GetIdMappingWorkflowInput, _ ...func(*entityresolution.Options)) (*entityresolution.GetIdMappingWorkflowOutput, error) {
	if err := f.record("GetIdMappingWorkflow"); err != nil {
		return nil, err
	}
	name := aws.ToString(in.WorkflowName)
	w, ok := f.workflows[name]
	if !ok {
		return nil, &types.ResourceNotFoundException{Message: aws.String("no workflow " + name)}
	}
	return &entityresolution.GetIdMappingWorkflowOutput{
		WorkflowName:        w.WorkflowName,
		WorkflowArn:         aws.String(testArn(common.IdMappingWorkflowResource, name)),
		Description:         w.Description,
		InputSourceConfig:   w.InputSourceConfig,
		OutputSourceConfig:  w.OutputSourceConfig,
		IdMappingTechniques: w.IdMappingTechniques,
		RoleArn:             w.RoleArn,
		CreatedAt:           aws.Time(testTime),
		UpdatedAt:           aws.Time(testTime),
	}, nil
}

func (f *fakeAPI) UpdateIdMappingWorkflow(_ context.Context, in *entityresolution.UpdateIdMappingWorkflowInput, _ ...func(*entityresolution.Options)) (*entityresolution.UpdateIdMappingWorkflowOutput, error) {
	if err := f.record("UpdateIdMappingWorkflow"); err != nil {
		return nil, err
	}
	name := aws.ToString(in.WorkflowName)
	if _, ok := f.workflows[name]; !ok {
		return nil, &types.ResourceNotFoundException{Message: aws.String("no workflow " + name)}
	}
	f.workflows[name] = &entityresolution.CreateIdMappingWorkflowInput{
		WorkflowName:        in.WorkflowName,
		Description:         in.Description,
		InputSourceConfig:   in.InputSourceConfig,
		OutputSourceConfig:  in.OutputSourceConfig,
		IdMappingTechniques: in.IdMappingTechniques,
		RoleArn:             in.RoleArn,
	}
	return &entityresolution.UpdateIdMappingWorkflowOutput{
		WorkflowName:        in.WorkflowName,
		WorkflowArn:         aws.String(testArn(common.IdMappingWorkflowResource, name)),
		Description:         in.Description,
		InputSourceConfig:   in.InputSourceConfig,
		OutputSourceConfig:  in.OutputSourceConfig,
		IdMappingTechniques: in.IdMappingTechniques,
		RoleArn:             in.RoleArn,
	}, nil
}

func (f *fakeAPI) DeleteIdMappingWorkflow(_ context.Context, in *entityresolution.DeleteIdMappingWorkflowInput, _ ...func(*entityresolution.Options)) (*entityresolution.DeleteIdMappingWorkflowOutput, error) {
	if err := f.record("DeleteIdMappingWorkflow"); err != nil {
		return nil, err
	}
	delete(f.workflows, aws.ToString(in.WorkflowName))
	return &entityresolution.DeleteIdMappingWorkflowOutput{Message: aws.String("deleted")}, nil
}

func (f *fakeAPI) ListIdMappingWorkflows(_ context.Context, in *entityresolution.ListIdMappingWorkflowsInput, _ ...func(*entityresolution.Options)) (*entityresolution.ListIdMappingWorkflowsOutput, error) {
	if err := f.record("ListIdMappingWorkflows"); err != nil {
		return nil, err
	}
	f.listInput = in
	out := &entityresolution.ListIdMappingWorkflowsOutput{}
	for name := range f.workflows {
		out.WorkflowSummaries = append(out.WorkflowSummaries, types.IdMappingWorkflowSummary{
			WorkflowName: aws.String(name),
			WorkflowArn:  aws.String(testArn(common.IdMappingWorkflowResource, name)),
			CreatedAt:    aws.Time(testTime),
			UpdatedAt:    aws.Time(testTime),
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
