package query

import (
	"strings"
	"testing"
)

func sampleDocument() interface{} {
	return map[string]interface{}{
		"openapi": "3.0.0",
		"info": map[string]interface{}{
			"title":   "Petstore",
			"version": "1.0.0",
		},
		"paths": map[string]interface{}{
			"/pets": map[string]interface{}{
				"get": map[string]interface{}{
					"summary": "List pets",
					// YAML parses bare response codes as int keys
					"responses": map[interface{}]interface{}{
						200: map[string]interface{}{"description": "ok"},
						404: map[string]interface{}{"description": "missing"},
					},
				},
			},
		},
		"tags": []interface{}{
			map[string]interface{}{"name": "pets", "weight": 3},
			map[string]interface{}{"name": "store", "weight": 1},
		},
	}
}

func TestRunSelectsField(t *testing.T) {
	result, err := Run(sampleDocument(), "info.title")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result != "Petstore" {
		t.Errorf("Expected Petstore, got %v", result)
	}
}

func TestRunNormalizesIntKeys(t *testing.T) {
	result, err := Run(sampleDocument(), `paths."/pets".get.responses."200".description`)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result != "ok" {
		t.Errorf("Expected ok, got %v", result)
	}
}

func TestRunProjection(t *testing.T) {
	result, err := Run(sampleDocument(), "tags[].name")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	names, ok := result.([]interface{})
	if !ok {
		t.Fatalf("Expected a list, got %T", result)
	}
	if len(names) != 2 || names[0] != "pets" || names[1] != "store" {
		t.Errorf("Expected [pets store], got %v", names)
	}
}

func TestRunNumericComparison(t *testing.T) {
	// Int values must compare as numbers after normalization
	result, err := Run(sampleDocument(), "tags[?weight > `2`].name | [0]")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result != "pets" {
		t.Errorf("Expected pets, got %v", result)
	}
}

func TestRunMissingField(t *testing.T) {
	result, err := Run(sampleDocument(), "info.missing")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result != nil {
		t.Errorf("Expected nil for missing field, got %v", result)
	}
}

func TestRunInvalidExpression(t *testing.T) {
	_, err := Run(sampleDocument(), "info.[")
	if err == nil {
		t.Fatal("Expected an error for invalid expression")
	}
	if !strings.Contains(err.Error(), "invalid JMESPath expression") {
		t.Errorf("Expected expression error, got %v", err)
	}
}

func TestFormatYAML(t *testing.T) {
	got, err := FormatYAML(map[string]interface{}{"title": "Petstore"})
	if err != nil {
		t.Fatalf("FormatYAML() error = %v", err)
	}
	if got != "title: Petstore\n" {
		t.Errorf("FormatYAML() = %q", got)
	}

	got, err = FormatYAML(nil)
	if err != nil {
		t.Fatalf("FormatYAML(nil) error = %v", err)
	}
	if got != "null\n" {
		t.Errorf("FormatYAML(nil) = %q", got)
	}
}

func TestFormatJSON(t *testing.T) {
	got, err := FormatJSON([]interface{}{"pets"})
	if err != nil {
		t.Fatalf("FormatJSON() error = %v", err)
	}
	if got != "[\n  \"pets\"\n]" {
		t.Errorf("FormatJSON() = %q", got)
	}

	got, err = FormatJSON(nil)
	if err != nil {
		t.Fatalf("FormatJSON(nil) error = %v", err)
	}
	if got != "null" {
		t.Errorf("FormatJSON(nil) = %q", got)
	}
}
