package tui

import (
	"testing"

	"github.com/studiowebux/oasview/internal/openapi"
)

// testDocument builds a small pet-store document in memory: four
// operations, a reusable Pet schema, and responses with and without
// content.
func testDocument() *openapi.Document {
	pet := map[string]interface{}{"$ref": "#/components/schemas/Pet"}
	return &openapi.Document{
		OpenAPI: "3.0.3",
		Info:    openapi.Info{Title: "Petstore", Version: "1.0.0"},
		Paths: map[string]openapi.PathItem{
			"/pets": {
				Get: &openapi.Operation{
					OperationID: "listPets",
					Summary:     "List pets",
					Responses: map[string]openapi.Response{
						"200": {
							Description: "A list of pets",
							Content: map[string]openapi.MediaType{
								"application/json": {Schema: pet},
							},
						},
						"404": {Description: "Not found"},
					},
				},
				Post: &openapi.Operation{
					OperationID: "createPet",
					Summary:     "Create a pet",
					RequestBody: &openapi.RequestBody{
						Required: true,
						Content: map[string]openapi.MediaType{
							"application/json": {Schema: pet},
							"application/xml":  {Schema: pet},
						},
					},
					Responses: map[string]openapi.Response{
						"201": {
							Description: "Created",
							Content: map[string]openapi.MediaType{
								"application/json": {Schema: pet},
							},
						},
						"400": {Description: "Invalid input"},
					},
				},
			},
			"/pets/{petId}": {
				Get: &openapi.Operation{
					OperationID: "getPet",
					Summary:     "Get a pet by id",
					Responses: map[string]openapi.Response{
						"200": {
							Description: "A pet",
							Content: map[string]openapi.MediaType{
								"application/json": {Schema: pet},
							},
						},
						"404": {Description: "Not found"},
					},
				},
				Delete: &openapi.Operation{
					OperationID: "deletePet",
					Summary:     "Delete a pet",
					Responses: map[string]openapi.Response{
						"204": {Description: "Pet deleted"},
					},
				},
			},
		},
		Components: &openapi.Components{
			Schemas: map[string]map[string]interface{}{
				"Pet": {
					"type": "object",
					"properties": map[string]interface{}{
						"name": map[string]interface{}{"type": "string"},
					},
				},
			},
		},
	}
}

// brokenDocument extends testDocument with a path whose request and
// response schemas reference a component that does not exist.
func brokenDocument() *openapi.Document {
	missing := map[string]interface{}{"$ref": "#/components/schemas/Missing"}
	doc := testDocument()
	doc.Paths["/broken"] = openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Broken response reference",
			Responses: map[string]openapi.Response{
				"200": {
					Description: "Broken",
					Content: map[string]openapi.MediaType{
						"application/json": {Schema: missing},
					},
				},
			},
		},
		Post: &openapi.Operation{
			Summary: "Broken request reference",
			RequestBody: &openapi.RequestBody{
				Content: map[string]openapi.MediaType{
					"application/json": {Schema: missing},
				},
			},
			Responses: map[string]openapi.Response{
				"201": {Description: "Created"},
			},
		},
	}
	return doc
}

// CreateTestModel creates a Model instance for testing with minimal dependencies
func CreateTestModel(t *testing.T) *Model {
	t.Helper()
	return CreateTestModelWithDocument(t, testDocument())
}

// CreateTestModelWithDocument creates a Model over an in-memory document
func CreateTestModelWithDocument(t *testing.T, doc *openapi.Document) *Model {
	t.Helper()

	m, err := assemble(doc, Options{Source: "test.yaml"})
	if err != nil {
		t.Fatalf("Failed to create test model: %v", err)
	}
	return &m
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

// AssertNoError verifies that an error is nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

// AssertError verifies that an error occurred
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Error("Expected error but got nil")
	}
}
