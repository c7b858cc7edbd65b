package jq

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
)

var ErrEmptyQuery = errors.New("jq query is empty")

// PerformJqQuery runs jqQuery over jsonContent. Every value the query emits is encoded on its
// own line; a query that emits nothing yields an empty result.
func PerformJqQuery(jsonContent []byte, jqQuery string) ([]byte, error) {
	if strings.TrimSpace(jqQuery) == "" {
		return nil, ErrEmptyQuery
	}

	query, err := gojq.Parse(jqQuery)
	if err != nil {
		return nil, fmt.Errorf("invalid jq query: %w", err)
	}

	var input any
	dec := json.NewDecoder(bytes.NewReader(jsonContent))
	dec.UseNumber()
	if err := dec.Decode(&input); err != nil {
		return nil, fmt.Errorf("jq input is not JSON: %w", err)
	}
	input = normalizeNumbers(input)

	var out bytes.Buffer
	iter := query.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			var halt *gojq.HaltError
			if errors.As(err, &halt) && halt.Value() == nil {
				break
			}
			return nil, err
		}

		encoded, err := gojq.Marshal(v)
		if err != nil {
			return nil, err
		}
		out.Write(encoded)
		out.WriteByte('\n')
	}

	return bytes.TrimSuffix(out.Bytes(), []byte("\n")), nil
}

// normalizeNumbers converts json.Number into the int or float64 values gojq operates on.
func normalizeNumbers(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return int(i)
		}
		f, _ := val.Float64()
		return f
	case map[string]any:
		for k, e := range val {
			val[k] = normalizeNumbers(e)
		}
		return val
	case []any:
		for i, e := range val {
			val[i] = normalizeNumbers(e)
		}
		return val
	default:
		return v
	}
}
