package registry

import (
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/entityresolution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
)

func nopFactory(*entityresolution.Client, *slog.Logger) cfn.RawHandler {
	return nil
}

func TestParseTypeName(t *testing.T) {
	h, err := ParseTypeName("AWS::EntityResolution::IdMappingWorkflow")
	require.NoError(t, err)
	assert.Equal(t, TypeHierarchy{Service: "entityresolution", Resource: "idmappingworkflow"}, h)

	for _, bad := range []string{"", "AWS::EntityResolution", "Custom::Foo::Bar", "AWS::::Bar"} {
		_, err := ParseTypeName(bad)
		assert.Error(t, err, bad)
	}
}

func TestRegistry(t *testing.T) {
	r := NewHandlerRegistry()
	r.Register("AWS::EntityResolution::SchemaMapping", Metadata{Identifier: "SchemaName"}, nopFactory)
	r.Register("AWS::EntityResolution::MatchingWorkflow", Metadata{Identifier: "WorkflowName"}, nopFactory)
	r.Register("AWS::Other::Thing", Metadata{}, nopFactory)

	assert.Equal(t, []string{
		"AWS::EntityResolution::MatchingWorkflow",
		"AWS::EntityResolution::SchemaMapping",
		"AWS::Other::Thing",
	}, r.TypeNames())

	assert.Equal(t, map[string][]string{
		"entityresolution": {"AWS::EntityResolution::MatchingWorkflow", "AWS::EntityResolution::SchemaMapping"},
		"other":            {"AWS::Other::Thing"},
	}, r.GetHierarchy())

	for _, name := range []string{"AWS::EntityResolution::SchemaMapping", "aws::entityresolution::schemamapping", "schemamapping", "SchemaMapping"} {
		entry, ok := r.GetRegistryEntry(name)
		require.True(t, ok, name)
		assert.Equal(t, "SchemaName", entry.Metadata.Identifier)
	}

	_, ok := r.GetRegistryEntry("idmappingworkflow")
	assert.False(t, ok)
}

func TestRegisterTwicePanics(t *testing.T) {
	r := NewHandlerRegistry()
	r.Register("AWS::EntityResolution::SchemaMapping", Metadata{}, nopFactory)
	assert.Panics(t, func() {
		r.Register("AWS::EntityResolution::SchemaMapping", Metadata{}, nopFactory)
	})
	assert.Panics(t, func() {
		r.Register("SchemaMapping", Metadata{}, nopFactory)
	})
}
