package openapi

import (
	"strings"

	"github.com/studiowebux/oasview/internal/oaserr"
)

// maxResolveDepth bounds reference resolution. Cyclic schemas (a schema
// whose reference chain revisits itself) run past the bound and fail with
// a ReferenceResolution error instead of recursing forever.
const maxResolveDepth = 100

// ResolveSchema returns a copy of schema with every internal reference
// expanded against the document's components. The input is never
// modified. A reference to a missing component and a chain deeper than
// maxResolveDepth both fail explicitly; nothing is silently substituted.
//
// anyOf/oneOf branches of type "null" do not contribute alternatives:
// they mark the schema nullable, and a union left with a single branch
// collapses into it. A nil schema resolves to nil.
func (d *Document) ResolveSchema(schema map[string]interface{}) (map[string]interface{}, error) {
	return d.resolve(schema, 0)
}

func (d *Document) resolve(schema map[string]interface{}, depth int) (map[string]interface{}, error) {
	if schema == nil {
		return nil, nil
	}
	if depth > maxResolveDepth {
		return nil, oaserr.ReferenceResolution("schema nesting exceeds %d levels (cyclic reference?)", maxResolveDepth)
	}

	if raw, hasRef := schema["$ref"]; hasRef {
		ref, ok := raw.(string)
		if !ok {
			return nil, oaserr.ReferenceResolution("$ref is not a string: %v", raw)
		}
		target, err := d.lookup(ref)
		if err != nil {
			return nil, err
		}
		return d.resolve(target, depth+1)
	}

	out := make(map[string]interface{}, len(schema))
	for key, value := range schema {
		resolved, err := d.resolveValue(key, value, depth)
		if err != nil {
			return nil, err
		}
		out[key] = resolved
	}

	// Null union branches mark nullability instead of contributing
	// alternatives; a union left with one branch collapses into it.
	for _, key := range []string{"anyOf", "oneOf"} {
		list, ok := out[key].([]interface{})
		if !ok {
			continue
		}

		kept, sawNull := dropNullBranches(list)
		if sawNull {
			out["nullable"] = true
		}

		switch len(kept) {
		case 0:
			delete(out, key)
		case 1:
			branch, ok := kept[0].(map[string]interface{})
			if !ok {
				out[key] = kept
				continue
			}
			delete(out, key)
			for k, v := range branch {
				if _, exists := out[k]; !exists {
					out[k] = v
				}
			}
		default:
			out[key] = kept
		}
	}

	return out, nil
}

// resolveValue resolves the schema-bearing positions of one key. Keys
// that never hold subschemas pass through untouched.
func (d *Document) resolveValue(key string, value interface{}, depth int) (interface{}, error) {
	switch key {
	case "properties", "patternProperties":
		props, ok := value.(map[string]interface{})
		if !ok {
			return value, nil
		}
		out := make(map[string]interface{}, len(props))
		for name, raw := range props {
			sub, ok := raw.(map[string]interface{})
			if !ok {
				out[name] = raw
				continue
			}
			resolved, err := d.resolve(sub, depth+1)
			if err != nil {
				return nil, err
			}
			out[name] = resolved
		}
		return out, nil

	case "items", "additionalProperties", "not":
		sub, ok := value.(map[string]interface{})
		if !ok {
			return value, nil
		}
		return d.resolve(sub, depth+1)

	case "allOf", "anyOf", "oneOf":
		list, ok := value.([]interface{})
		if !ok {
			return value, nil
		}
		out := make([]interface{}, 0, len(list))
		for _, raw := range list {
			sub, ok := raw.(map[string]interface{})
			if !ok {
				out = append(out, raw)
				continue
			}
			resolved, err := d.resolve(sub, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, resolved)
		}
		return out, nil

	default:
		return value, nil
	}
}

// lookup returns the component schema a reference points at. Only
// document-internal #/components/schemas references are supported;
// remote references are out of scope for the viewer.
func (d *Document) lookup(ref string) (map[string]interface{}, error) {
	parts := strings.Split(ref, "/")
	if len(parts) < 4 || parts[0] != "#" || parts[1] != "components" || parts[2] != "schemas" {
		return nil, oaserr.ReferenceResolution("unsupported reference %q", ref)
	}
	name := strings.Join(parts[3:], "/")

	if d.Components == nil || d.Components.Schemas == nil {
		return nil, oaserr.ReferenceResolution("reference %q: document defines no component schemas", ref)
	}
	target, ok := d.Components.Schemas[name]
	if !ok {
		return nil, oaserr.ReferenceResolution("reference %q not found", ref)
	}
	return target, nil
}

func dropNullBranches(list []interface{}) ([]interface{}, bool) {
	kept := make([]interface{}, 0, len(list))
	sawNull := false
	for _, raw := range list {
		if sub, ok := raw.(map[string]interface{}); ok && isNullType(sub) {
			sawNull = true
			continue
		}
		kept = append(kept, raw)
	}
	return kept, sawNull
}

func isNullType(schema map[string]interface{}) bool {
	t, ok := schema["type"].(string)
	return ok && t == "null"
}
