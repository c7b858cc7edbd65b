package helpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// LoadRequest reads a handler request from path, or stdin when path is "-", and returns it
// as JSON. Files ending in .yaml or .yml are read as YAML.
func LoadRequest(path string, stdin io.Reader) ([]byte, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read request: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAMLToJSON(raw)
	default:
		return raw, nil
	}
}

// YAMLToJSON converts one YAML document to JSON.
func YAMLToJSON(raw []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML request: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML request: %w", err)
	}
	return out, nil
}

// RequestDefaults are the request fields the CloudFormation service would normally supply.
type RequestDefaults struct {
	AccountID string
	Partition string
	Region    string
}

// ApplyDefaults fills awsAccountId, awsPartition, region and clientRequestToken when the
// request leaves them empty. Everything else passes through untouched.
func ApplyDefaults(payload []byte, defaults RequestDefaults) ([]byte, error) {
	fields := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(payload)) > 0 {
		if err := json.Unmarshal(payload, &fields); err != nil {
			return nil, fmt.Errorf("request must be a JSON object: %w", err)
		}
		if fields == nil {
			return nil, errors.New("request must be a JSON object, got null")
		}
	}

	set := func(key, value string) error {
		if value == "" {
			return nil
		}
		if existing, ok := fields[key]; ok {
			var s string
			if err := json.Unmarshal(existing, &s); err == nil && s != "" {
				return nil
			}
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return err
		}
		fields[key] = encoded
		return nil
	}

	for key, value := range map[string]string{
		"awsAccountId":       defaults.AccountID,
		"awsPartition":       defaults.Partition,
		"region":             defaults.Region,
		"clientRequestToken": uuid.NewString(),
	} {
		if err := set(key, value); err != nil {
			return nil, err
		}
	}

	return json.Marshal(fields)
}
