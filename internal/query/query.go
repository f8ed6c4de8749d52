// Package query evaluates JMESPath expressions against loaded documents.
package query

import (
	"encoding/json"
	"fmt"

	"github.com/jmespath/go-jmespath"
	"gopkg.in/yaml.v3"
)

// Run applies a JMESPath expression to a document. The document is
// normalized to JSON types first, so YAML-sourced values (int keys,
// int numbers) behave the same as JSON-sourced ones.
func Run(doc interface{}, expression string) (interface{}, error) {
	jp, err := jmespath.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid JMESPath expression '%s': %w", expression, err)
	}

	normalized, err := normalize(doc)
	if err != nil {
		return nil, err
	}

	result, err := jp.Search(normalized)
	if err != nil {
		return nil, fmt.Errorf("JMESPath search failed: %w", err)
	}

	return result, nil
}

// FormatYAML renders a query result as YAML
func FormatYAML(result interface{}) (string, error) {
	output, err := yaml.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(output), nil
}

// FormatJSON renders a query result as indented JSON
func FormatJSON(result interface{}) (string, error) {
	if result == nil {
		return "null", nil
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(output), nil
}

// normalize round-trips the document through JSON so jmespath sees the
// types it expects (float64 numbers, map[string]interface{} objects)
func normalize(value interface{}) (interface{}, error) {
	data, err := json.Marshal(stringifyKeys(value))
	if err != nil {
		return nil, fmt.Errorf("failed to normalize document: %w", err)
	}

	var out interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to normalize document: %w", err)
	}
	return out, nil
}

// stringifyKeys rewrites YAML maps with non-string keys (a bare 200
// response code parses as an int) into JSON-compatible maps
func stringifyKeys(value interface{}) interface{} {
	switch v := value.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, val := range v {
			out[fmt.Sprint(key)] = stringifyKeys(val)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, val := range v {
			out[key] = stringifyKeys(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, val := range v {
			out[i] = stringifyKeys(val)
		}
		return out
	default:
		return v
	}
}
