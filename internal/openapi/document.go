package openapi

import (
	"sort"
	"strings"
)

// Document represents a parsed OpenAPI 3.x description. It is immutable
// after loading: the viewer only ever reads it, and a reload installs a
// whole new Document value.
type Document struct {
	OpenAPI    string              `json:"openapi" yaml:"openapi"`
	Info       Info                `json:"info" yaml:"info"`
	Servers    []Server            `json:"servers,omitempty" yaml:"servers,omitempty"`
	Paths      map[string]PathItem `json:"paths" yaml:"paths"`
	Components *Components         `json:"components,omitempty" yaml:"components,omitempty"`
}

// Components holds the document's reusable schema fragments, the targets
// of #/components/schemas references.
type Components struct {
	Schemas map[string]map[string]interface{} `json:"schemas,omitempty" yaml:"schemas,omitempty"`
}

type Info struct {
	Title       string `json:"title" yaml:"title"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type Server struct {
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type PathItem struct {
	Get     *Operation `json:"get,omitempty" yaml:"get,omitempty"`
	Post    *Operation `json:"post,omitempty" yaml:"post,omitempty"`
	Put     *Operation `json:"put,omitempty" yaml:"put,omitempty"`
	Delete  *Operation `json:"delete,omitempty" yaml:"delete,omitempty"`
	Patch   *Operation `json:"patch,omitempty" yaml:"patch,omitempty"`
	Head    *Operation `json:"head,omitempty" yaml:"head,omitempty"`
	Options *Operation `json:"options,omitempty" yaml:"options,omitempty"`
}

type Operation struct {
	OperationID string              `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Summary     string              `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string              `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string            `json:"tags,omitempty" yaml:"tags,omitempty"`
	Deprecated  bool                `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Parameters  []Parameter         `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody *RequestBody        `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   map[string]Response `json:"responses,omitempty" yaml:"responses,omitempty"`
}

type Parameter struct {
	Name        string                 `json:"name" yaml:"name"`
	In          string                 `json:"in" yaml:"in"` // query, path, header, cookie
	Required    bool                   `json:"required,omitempty" yaml:"required,omitempty"`
	Description string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Schema      map[string]interface{} `json:"schema,omitempty" yaml:"schema,omitempty"`
}

type RequestBody struct {
	Description string               `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool                 `json:"required,omitempty" yaml:"required,omitempty"`
	Content     map[string]MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

type MediaType struct {
	Schema  map[string]interface{} `json:"schema,omitempty" yaml:"schema,omitempty"`
	Example interface{}            `json:"example,omitempty" yaml:"example,omitempty"`
}

type Response struct {
	Description string               `json:"description" yaml:"description"`
	Content     map[string]MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// OperationRef identifies one path+method entry of the document together
// with its operation.
type OperationRef struct {
	Path      string
	Method    string
	Operation *Operation
}

// Label returns the navigation line for the operation: method, path, and
// summary when present.
func (r OperationRef) Label() string {
	if r.Operation != nil && r.Operation.Summary != "" {
		return r.Method + " " + r.Path + "  " + r.Operation.Summary
	}
	return r.Method + " " + r.Path
}

// methodRank orders HTTP methods the way the navigation pane lists them.
var methodRank = map[string]int{
	"GET":     0,
	"POST":    1,
	"PUT":     2,
	"PATCH":   3,
	"DELETE":  4,
	"HEAD":    5,
	"OPTIONS": 6,
}

// byMethod maps method names to the path item's operations, nil entries
// included.
func (p PathItem) byMethod() map[string]*Operation {
	return map[string]*Operation{
		"GET":     p.Get,
		"POST":    p.Post,
		"PUT":     p.Put,
		"PATCH":   p.Patch,
		"DELETE":  p.Delete,
		"HEAD":    p.Head,
		"OPTIONS": p.Options,
	}
}

// Operations returns every operation of the document, sorted by path and
// then by method rank. The order is stable across calls so list indexes
// stay meaningful for the lifetime of a loaded document.
func (d *Document) Operations() []OperationRef {
	var refs []OperationRef
	for path, item := range d.Paths {
		for method, op := range item.byMethod() {
			if op == nil {
				continue
			}
			refs = append(refs, OperationRef{Path: path, Method: method, Operation: op})
		}
	}

	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Path != refs[j].Path {
			return refs[i].Path < refs[j].Path
		}
		return methodRank[refs[i].Method] < methodRank[refs[j].Method]
	})

	return refs
}

// OperationAt returns the operation registered for the given path and
// method, or nil when the document has none.
func (d *Document) OperationAt(path, method string) *Operation {
	item, ok := d.Paths[path]
	if !ok {
		return nil
	}
	return item.byMethod()[strings.ToUpper(method)]
}

// MediaTypes returns the request body's content types in sorted order.
func (r *RequestBody) MediaTypes() []string {
	if r == nil {
		return nil
	}
	return sortedKeys(r.Content)
}

// MediaTypes returns the response's content types in sorted order.
func (r *Response) MediaTypes() []string {
	if r == nil {
		return nil
	}
	return sortedKeys(r.Content)
}

// ResponseCodes returns the operation's response status codes in sorted
// order ("200" before "404" before "default").
func (o *Operation) ResponseCodes() []string {
	if o == nil || len(o.Responses) == 0 {
		return nil
	}
	codes := make([]string, 0, len(o.Responses))
	for code := range o.Responses {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func sortedKeys(content map[string]MediaType) []string {
	if len(content) == 0 {
		return nil
	}
	keys := make([]string, 0, len(content))
	for key := range content {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
