package matchingworkflow

import (
	"context"
	"fmt"
	"maps"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution/types"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/entityresolution/common"
)

const (
	testPartition = "aws"
	testRegion    = "us-east-1"
	testAccount   = "123456789012"
)

var testTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func testArn(resourceType, name string) string {
	return common.ResourceArn(testPartition, testRegion, testAccount, resourceType, name)
}

func newRequest(model *ResourceModel) *cfn.Request[ResourceModel] {
	return &cfn.Request[ResourceModel]{
		DesiredResourceState: model,
		AwsAccountID:         testAccount,
		AwsPartition:         testPartition,
		Region:               testRegion,
	}
}

// fakeAPI is an in-memory matching workflow backend that records every call it receives.
type fakeAPI struct {
	calls     []string
	workflows map[string]*entityresolution.CreateMatchingWorkflowInput
	tags      map[string]map[string]string
	errs      map[string]error

	getOutput *entityresolution.GetMatchingWorkflowOutput
	listInput *entityresolution.ListMatchingWorkflowsInput
	untagged  [][]string
	tagged    []map[string]string
}

var _ API = (*fakeAPI)(nil)

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		workflows: map[string]*entityresolution.CreateMatchingWorkflowInput{},
		tags:      map[string]map[string]string{},
		errs:      map[string]error{},
	}
}

func (f *fakeAPI) record(op string) error {
	f.calls = append(f.calls, op)
	return f.errs[op]
}

func notFound(name string) error {
	return &types.ResourceNotFoundException{Message: aws.String(fmt.Sprintf("workflow %s not found", name))}
}

func (f *fakeAPI) CreateMatchingWorkflow(_ context.Context, in *entityresolution.CreateMatchingWorkflowInput, _ ...func(*entityresolution.Options)) (*entityresolution.CreateMatchingWorkflowOutput, error) {
	if err := f.record("CreateMatchingWorkflow"); err != nil {
		return nil, err
	}
	name := aws.ToString(in.WorkflowName)
	f.workflows[name] = in
	arn := testArn(common.MatchingWorkflowResource, name)
	if in.Tags != nil {
		f.tags[arn] = maps.Clone(in.Tags)
	}
	return &entityresolution.CreateMatchingWorkflowOutput{
		WorkflowName:         in.WorkflowName,
		WorkflowArn:          aws.String(arn),
		Description:          in.Description,
		InputSourceConfig:    in.InputSourceConfig,
		OutputSourceConfig:   in.OutputSourceConfig,
		ResolutionTechniques: in.ResolutionTechniques,
		RoleArn:              in.RoleArn,
	}, nil
}

func (f *fakeAPI) GetMatchingWorkflow(_ context.Context, in *entityresolution.GetMatchingWorkflowInput, _ ...func(*entityresolution.Options)) (*entityresolution.GetMatchingWorkflowOutput, error) {
	if err := f.record("GetMatchingWorkflow"); err != nil {
		return nil, err
	}
	if f.getOutput != nil {
		return f.getOutput, nil
	}
	name := aws.ToString(in.WorkflowName)
	w, ok := f.workflows[name]
	if !ok {
		return nil, notFound(name)
	}
	return &entityresolution.GetMatchingWorkflowOutput{
		WorkflowName:         w.WorkflowName,
		WorkflowArn:          aws.String(testArn(common.MatchingWorkflowResource, name)),
		Description:          w.Description,
		InputSourceConfig:    w.InputSourceConfig,
		OutputSourceConfig:   w.OutputSourceConfig,
		ResolutionTechniques: w.ResolutionTechniques,
		RoleArn:              w.RoleArn,
		CreatedAt:            aws.Time(testTime),
		UpdatedAt:            aws.Time(testTime.Add(time.Hour)),
	}, nil
}

func (f *fakeAPI) UpdateMatchingWorkflow(_ context.Context, in *entityresolution.UpdateMatchingWorkflowInput, _ ...func(*entityresolution.Options)) (*entityresolution.UpdateMatchingWorkflowOutput, error) {
	if err := f.record("UpdateMatchingWorkflow"); err != nil {
		return nil, err
	}
	name := aws.ToString(in.WorkflowName)
	if _, ok := f.workflows[name]; !ok {
		return nil, notFound(name)
	}
	f.workflows[name] = &entityresolution.CreateMatchingWorkflowInput{
		WorkflowName:         in.WorkflowName,
		Description:          in.Description,
		InputSourceConfig:    in.InputSourceConfig,
		OutputSourceConfig:   in.OutputSourceConfig,
		ResolutionTechniques: in.ResolutionTechniques,
		RoleArn:              in.RoleArn,
	}
	return &entityresolution.UpdateMatchingWorkflowOutput{
		WorkflowName:         in.WorkflowName,
		Description:          in.Description,
		InputSourceConfig:    in.InputSourceConfig,
		OutputSourceConfig:   in.OutputSourceConfig,
		ResolutionTechniques: in.ResolutionTechniques,
		RoleArn:              in.RoleArn,
	}, nil
}

func (f *fakeAPI) DeleteMatchingWorkflow(_ context.Context, in *entityresolution.DeleteMatchingWorkflowInput, _ ...func(*entityresolution.Options)) (*entityresolution.DeleteMatchingWorkflowOutput, error) {
	if err := f.record("DeleteMatchingWorkflow"); err != nil {
		return nil, err
	}
	name := aws.ToString(in.WorkflowName)
	delete(f.workflows, name)
	return &entityresolution.DeleteMatchingWorkflowOutput{
		Message: aws.String("Workflow " + name + " deleted"),
	}, nil
}

func (f *fakeAPI) ListMatchingWorkflows(_ context.Context, in *entityresolution.ListMatchingWorkflowsInput, _ ...func(*entityresolution.Options)) (*entityresolution.ListMatchingWorkflowsOutput, error) {
	if err := f.record("ListMatchingWorkflows"); err != nil {
		return nil, err
	}
	f.listInput = in
	out := &entityresolution.ListMatchingWorkflowsOutput{NextToken: aws.String("page-2")}
	for name := range f.workflows {
		out.WorkflowSummaries = append(out.WorkflowSummaries, types.MatchingWorkflowSummary{
			WorkflowName: aws.String(name),
			WorkflowArn:  aws.String(testArn(common.MatchingWorkflowResource, name)),
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
