package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution/document"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution/types"
)

// IntermediateSourceConfiguration is the S3 staging location a provider service may use.
type IntermediateSourceConfiguration struct {
	IntermediateS3Path *string `json:"IntermediateS3Path,omitempty"`
}

// ProviderProperties configures a third-party provider service. It is shared by matching
// and ID mapping workflows.
type ProviderProperties struct {
	ProviderServiceArn              *string                          `json:"ProviderServiceArn,omitempty"`
	ProviderConfiguration           map[string]string                `json:"ProviderConfiguration,omitempty"`
	IntermediateSourceConfiguration *IntermediateSourceConfiguration `json:"IntermediateSourceConfiguration,omitempty"`
}

// DocumentDecodeError reports a provider configuration the model cannot represent. The model
// only holds string values.
type DocumentDecodeError struct {
	Key  string
	Kind string
	Err  error
}

func (e *DocumentDecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider configuration is not a JSON object: %v", e.Err)
	}
	return fmt.Sprintf("provider configuration value %q is a %s, expected a string", e.Key, e.Kind)
}

func (e *DocumentDecodeError) Unwrap() error {
	return e.Err
}

// EncodeProviderConfiguration wraps every configuration value as a string document node.
func EncodeProviderConfiguration(config map[string]string) document.Interface {
	if config == nil {
		return nil
	}
	return document.NewLazyDocument(maps.Clone(config))
}

// DecodeProviderConfiguration unwraps a configuration document. Every value must be a
// string node; anything else is a *DocumentDecodeError.
func DecodeProviderConfiguration(doc document.Interface) (map[string]string, error) {
	if doc == nil {
		return nil, nil
	}

	raw, err := doc.MarshalSmithyDocument()
	if err != nil {
		return nil, &DocumentDecodeError{Err: err}
	}

	var fields map[string]any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		return nil, &DocumentDecodeError{Err: err}
	}
	if fields == nil {
		return nil, nil
	}

	config := make(map[string]string, len(fields))
	for key, value := range fields {
		s, ok := value.(string)
		if !ok {
			return nil, &DocumentDecodeError{Key: key, Kind: jsonKind(value)}
		}
		config[key] = s
	}
	return config, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// ToBackendProviderProperties builds the API shape of provider properties.
func ToBackendProviderProperties(p ProviderProperties) *types.ProviderProperties {
	out := &types.ProviderProperties{
		ProviderServiceArn:    p.ProviderServiceArn,
		ProviderConfiguration: EncodeProviderConfiguration(p.ProviderConfiguration),
	}
	if p.IntermediateSourceConfiguration != nil {
		out.IntermediateSourceConfiguration = &types.IntermediateSourceConfiguration{
			IntermediateS3Path: p.IntermediateSourceConfiguration.IntermediateS3Path,
		}
	}
	return out
}

// ToModelProviderProperties is the inverse of ToBackendProviderProperties.
func ToModelProviderProperties(p *types.ProviderProperties) (ProviderProperties, error) {
	if p == nil {
		return ProviderProperties{}, nil
	}

	config, err := DecodeProviderConfiguration(p.ProviderConfiguration)
	if err != nil {
		return ProviderProperties{}, fmt.Errorf("provider %s: %w", aws.ToString(p.ProviderServiceArn), err)
	}

	out := ProviderProperties{
		ProviderServiceArn:    p.ProviderServiceArn,
		ProviderConfiguration: config,
	}
	if p.IntermediateSourceConfiguration != nil {
		out.IntermediateSourceConfiguration = &IntermediateSourceConfiguration{
			IntermediateS3Path: p.IntermediateSourceConfiguration.IntermediateS3Path,
		}
	}
	return out, nil
}
