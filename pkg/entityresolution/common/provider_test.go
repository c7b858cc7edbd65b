package common

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution/document"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderConfigurationRoundTrip(t *testing.T) {
	config := map[string]string{"endpoint": "https://example.com", "mode": "strict", "empty": ""}

	doc := EncodeProviderConfiguration(config)
	require.NotNil(t, doc)

	decoded, err := DecodeProviderConfiguration(doc)
	require.NoError(t, err)
	assert.Equal(t, config, decoded)

	assert.Nil(t, EncodeProviderConfiguration(nil))
	decoded, err = DecodeProviderConfiguration(nil)
	require.NoError(t, err)
	assert.Nil(t, decoded)
}

func TestDecodeProviderConfigurationRejectsNonStrings(t *testing.T) {
	tests := []struct {
		name  string
		value any
		kind  string
	}{
		{name: "number", value: 42, kind: "number"},
		{name: "boolean", value: true, kind: "boolean"},
		{name: "array", value: []string{"a"}, kind: "array"},
		{name: "object", value: map[string]string{"a": "b"}, kind: "object"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeProviderConfiguration(document.NewLazyDocument(map[string]any{"key": tc.value}))

			var decodeErr *DocumentDecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, "key", decodeErr.Key)
			assert.Equal(t, tc.kind, decodeErr.Kind)
		})
	}
}

func TestDecodeProviderConfigurationRejectsNonObjects(t *testing.T) {
	_, err := DecodeProviderConfiguration(document.NewLazyDocument([]string{"a", "b"}))

	var decodeErr *DocumentDecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Error(t, decodeErr.Err)
}

func TestProviderPropertiesRoundTrip(t *testing.T) {
	props := ProviderProperties{
		ProviderServiceArn:    aws.String("arn:aws:entityresolution:us-east-1::providerservice/acme/match"),
		ProviderConfiguration: map[string]string{"k": "v"},
		IntermediateSourceConfiguration: &IntermediateSourceConfiguration{
			IntermediateS3Path: aws.String("s3://bucket/tmp"),
		},
	}

	back, err := ToModelProviderProperties(ToBackendProviderProperties(props))
	require.NoError(t, err)
	assert.Equal(t, props, back)

	back, err = ToModelProviderProperties(&types.ProviderProperties{ProviderServiceArn: props.ProviderServiceArn})
	require.NoError(t, err)
	assert.Nil(t, back.ProviderConfiguration)
	assert.Nil(t, back.IntermediateSourceConfiguration)
}
